package spellchecker

// defaultTrieBudget is the limit_weight the word generator hands the trie
// before the length-based bump to 14 (spec.md §4.4).
const defaultTrieBudget = Weight(8)

// WordResult is one rewrite the word generator proposes: a fully
// reconstructed query and the candidate sequence that produced it.
type WordResult struct {
	Query      string
	Candidates []Candidate
}

// WordGenerator runs the beam search of spec.md §4.5 over tokens' per-
// token candidate lists. needs-correction tokens call the trie; every
// other non-delimiter ("estimated") token contributes a singleton of the
// original word. A needs-correction token with no in-vocabulary trie hit
// falls back to a singleton of the input word at cost 0.
func WordGenerator(tokens []Token, lm *LanguageModel, tr *Trie, maxCandidates int) []WordResult {
	var perToken [][]Candidate
	var tokenIdx []int

	for i, t := range tokens {
		word := lowerWord(t.Text)
		switch {
		case t.NeedsCorrection:
			cands := tr.FindCandidates(word, maxCandidates, defaultTrieBudget)
			if len(cands) == 0 {
				cands = []Candidate{NewCandidate(word, lm.UnigramWeight(word), 0)}
			}
			perToken = append(perToken, cands)
			tokenIdx = append(tokenIdx, i)
		case t.IsEstimated():
			perToken = append(perToken, []Candidate{NewCandidate(word, lm.UnigramWeight(word), 0)})
			tokenIdx = append(tokenIdx, i)
		}
	}

	if len(perToken) == 0 {
		return nil
	}
	if len(perToken) == 1 {
		fixWords := map[int]string{tokenIdx[0]: perToken[0][0].Word}
		return []WordResult{{Reconstruct(tokens, fixWords), []Candidate{perToken[0][0]}}}
	}

	const (
		seedWidth   = 5
		expandWidth = 10
		keepWidth   = 3
	)

	first := perToken[0]
	if len(first) > seedWidth {
		first = first[:seedWidth]
	}
	beam := make([]CandidateList, 0, len(first))
	for _, c := range first {
		beam = append(beam, NewCandidateList([]Candidate{c}, lm))
	}

	for _, next := range perToken[1:] {
		if len(next) > expandWidth {
			next = next[:expandWidth]
		}
		expanded := make([]CandidateList, 0, len(beam)*len(next))
		for _, cl := range beam {
			for _, c := range next {
				expanded = append(expanded, cl.Add(c, lm))
			}
		}
		sortByScore(expanded)
		if len(expanded) > keepWidth {
			expanded = expanded[:keepWidth]
		}
		beam = expanded
	}

	results := make([]WordResult, 0, len(beam))
	for _, cl := range beam {
		fixWords := make(map[int]string, len(tokenIdx))
		for ci, ti := range tokenIdx {
			fixWords[ti] = cl.Candidates[ci].Word
		}
		results = append(results, WordResult{Reconstruct(tokens, fixWords), cl.Candidates})
	}
	return results
}

// SplitGeneratorComplex tries inserting a space inside every correctable
// token of query (spec.md §4.6 "Split"). It returns ok=false when no
// token's split improved its local score.
func SplitGeneratorComplex(query string, lm *LanguageModel) (string, []Candidate, bool) {
	tokens := Tokenize(query)
	var newTokens []Token
	var newCL []Candidate
	anySplit := false

	for _, t := range tokens {
		if t.IsDelim || t.IsDigit {
			newTokens = append(newTokens, t)
			continue
		}
		fixTokens, fixCL, split := splitGenerator(t, lm)
		if split {
			anySplit = true
			newTokens = append(newTokens, fixTokens...)
			newCL = append(newCL, fixCL...)
		} else {
			newTokens = append(newTokens, t)
			newCL = append(newCL, NewCandidate(t.Text, 0, 0))
		}
	}
	if !anySplit {
		return "", nil, false
	}
	return Reconstruct(newTokens, nil), newCL, true
}

// splitGenerator considers every interior position of token's surface text
// that doesn't immediately follow an existing space, rescoring the whole
// split against the unsplit token's score and keeping the last position
// that strictly improves it (spec.md §4.6; the original implementation
// compares every candidate against the initial score rather than the
// best-so-far, so the final improving position wins — preserved here).
func splitGenerator(t Token, lm *LanguageModel) ([]Token, []Candidate, bool) {
	text := t.Text
	runes := []rune(text)
	baseCL := []Candidate{NewCandidate(text, 0, 0)}
	baseScore := Score(baseCL, lm)

	fixTokens := []Token{t}
	fixCL := baseCL
	split := false

	for idx := 1; idx < len(runes); idx++ {
		if runes[idx-1] == ' ' {
			continue
		}
		candidate := string(runes[:idx]) + " " + string(runes[idx:])
		candTokens := Tokenize(candidate)
		var candCL []Candidate
		for _, ct := range candTokens {
			if !ct.IsDelim {
				candCL = append(candCL, NewCandidate(ct.Text, 0, 0))
			}
		}
		candScore := Score(candCL, lm)
		if candScore < baseScore {
			split = true
			fixTokens = candTokens
			fixCL = candCL
		}
	}

	if split {
		for i := range fixTokens {
			fixTokens[i].NeedsCorrection = !fixTokens[i].IsDelim
		}
	}
	return fixTokens, fixCL, split
}

// canJoin reports whether a token may be merged across a delimiter
// (spec.md §4.6 "Join"): any non-delimiter token.
func canJoin(t Token) bool { return !t.IsDelim }

// JoinGenerator scans delimiter positions left to right, merging the two
// neighboring tokens whenever doing so strictly lowers the query score
// (spec.md §4.6 "Join").
func JoinGenerator(tokens []Token, lm *LanguageModel) (string, []Candidate) {
	var delimIdx []int
	for i, t := range tokens {
		if t.IsDelim {
			delimIdx = append(delimIdx, i)
		}
	}

	fixTokens := append([]Token(nil), tokens...)
	fixCL := estimatedCandidates(fixTokens)
	if len(fixCL) == 0 {
		return Reconstruct(fixTokens, nil), fixCL
	}
	fixScore := Score(fixCL, lm)

	joinCnt := 0
	for _, idx := range delimIdx {
		li, ri := idx-1-joinCnt, idx+1-joinCnt
		if li < 0 || ri > len(fixTokens)-1 {
			continue
		}
		if !canJoin(fixTokens[li]) || !canJoin(fixTokens[ri]) {
			continue
		}
		joined := Token{Text: fixTokens[li].Text + fixTokens[ri].Text, NeedsCorrection: true}
		candidateTokens := make([]Token, 0, len(fixTokens)-2)
		candidateTokens = append(candidateTokens, fixTokens[:li]...)
		candidateTokens = append(candidateTokens, joined)
		candidateTokens = append(candidateTokens, fixTokens[ri+1:]...)

		candidateCL := estimatedCandidates(candidateTokens)
		candidateScore := Score(candidateCL, lm)
		if candidateScore < fixScore {
			fixTokens = candidateTokens
			fixScore = candidateScore
			fixCL = candidateCL
			joinCnt += 2
		}
	}
	return Reconstruct(fixTokens, nil), fixCL
}

func estimatedCandidates(tokens []Token) []Candidate {
	var out []Candidate
	for _, t := range tokens {
		if t.IsEstimated() {
			out = append(out, NewCandidate(t.Text, 0, 0))
		}
	}
	return out
}

// KeyboardLayoutGenerator translates the whole query across the RU<->EN
// keyboard map (spec.md §4.6).
func KeyboardLayoutGenerator(query string) string {
	return FlipKeyboardLayout(query)
}
