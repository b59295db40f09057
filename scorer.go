package spellchecker

import "strings"

// Score combines a query's language-model likelihood with its accumulated
// edit cost (spec.md §4.8, GLOSSARY "Query score"):
//
//	score = 1.7 * words_NLL(words, LM, smoothing=false) + sum(error_weight)
func Score(candidates []Candidate, lm *LanguageModel) Weight {
	words := make([]string, len(candidates))
	var errSum Weight
	for i, c := range candidates {
		words[i] = strings.ToLower(c.Word)
		errSum += c.ErrorWeight
	}
	return candidateLMFactor*wordsNLL(words, lm, false) + errSum
}

// wordsNLL computes a word sequence's negative log-likelihood under lm
// (spec.md §4.8). The first word uses its unigram weight (or the OOV
// constant when unsmoothed and out of vocabulary). Every subsequent word
// is scored by the bigram NLL of (previous, current) when non-zero;
// otherwise by the current word's unigram weight if in-vocabulary, else
// the OOV constant — but only when the *previous* word was itself
// in-vocabulary. When the previous word was OOV, the current word also
// receives the OOV constant outright, without consulting the bigram table
// (this mirrors the original implementation's lookup on the previous
// word's index and is preserved verbatim; see SPEC_FULL.md §4).
func wordsNLL(words []string, lm *LanguageModel, smoothing bool) Weight {
	if len(words) == 0 {
		return oovConstant(lm, smoothing)
	}

	total := unigramOrOOV(words[0], lm, smoothing)
	for i := 1; i < len(words); i++ {
		prev, cur := words[i-1], words[i]
		if lm.UnigramCount(prev) == 0 {
			total += oovConstant(lm, smoothing)
			continue
		}
		if bw := lm.BigramWeight(prev, cur); bw != 0 {
			total += bw
			continue
		}
		total += unigramOrOOV(cur, lm, smoothing)
	}
	return total
}

func unigramOrOOV(word string, lm *LanguageModel, smoothing bool) Weight {
	if lm.UnigramCount(word) > 0 {
		return lm.UnigramWeight(word)
	}
	return oovConstant(lm, smoothing)
}

func oovConstant(lm *LanguageModel, smoothing bool) Weight {
	if smoothing {
		return lm.OOVWeight()
	}
	return oovWeightUnsmoothed
}
