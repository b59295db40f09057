package spellchecker

import (
	"unicode/utf8"

	"github.com/golang/glog"
)

// Corrector ties a LanguageModel, ErrorModel, and Trie together to run the
// rewrite-generator search of spec.md §4.7.
type Corrector struct {
	LM   *LanguageModel
	EM   *ErrorModel
	Trie *Trie
}

// NewCorrector returns a Corrector over an already-built trie.
func NewCorrector(lm *LanguageModel, em *ErrorModel, tr *Trie) *Corrector {
	return &Corrector{LM: lm, EM: em, Trie: tr}
}

// Correct runs the frontier search of spec.md §4.7: starting from
// origRequest, each of iterations rounds expands every live request through
// the word, split, join, and keyboard-layout generators, scoring every
// distinct rewrite exactly once (accumulated_error carries forward from the
// request it was generated from). The lowest-scoring rewrite seen across
// every round wins (spec.md §4.8); on a tie the first one discovered wins,
// matching the original's insertion-ordered lookup.
func (c *Corrector) Correct(origRequest string, iterations, maxCandidates int) string {
	if iterations <= 0 {
		return origRequest
	}
	requests := map[string]bool{origRequest: true}
	scores := make(map[string]Weight)
	accumulatedErrors := make(map[string]Weight)
	var order []string

	record := func(req string, accumulatedError, reqError, penalty Weight) {
		if _, ok := scores[req]; ok {
			return
		}
		accumulatedErrors[req] = accumulatedError + penalty
		scores[req] = accumulatedError + reqError
		order = append(order, req)
	}

	for i := 0; i < iterations; i++ {
		newRequests := make(map[string]bool)
		for req := range requests {
			accumulatedError := accumulatedErrors[req]
			tokens := Tokenize(req)

			needsAny := false
			for _, t := range tokens {
				if t.NeedsCorrection {
					needsAny = true
					break
				}
			}
			if !needsAny {
				if _, ok := scores[req]; !ok {
					scores[req] = 0
					order = append(order, req)
					newRequests[req] = true
				}
				continue
			}

			if fixed, ok := SpecialJoinMatch(req); ok {
				return fixed
			}

			for _, res := range WordGenerator(tokens, c.LM, c.Trie, maxCandidates) {
				if _, ok := scores[res.Query]; ok {
					continue
				}
				var sumError Weight
				for _, cand := range res.Candidates {
					sumError += cand.ErrorWeight
				}
				record(res.Query, accumulatedError, Score(res.Candidates, c.LM), sumError)
				newRequests[res.Query] = true
			}

			if splitQuery, splitCands, ok := SplitGeneratorComplex(req, c.LM); ok {
				if _, exists := scores[splitQuery]; !exists {
					record(splitQuery, accumulatedError, Score(splitCands, c.LM), 1.0)
					newRequests[splitQuery] = true
				}
			}

			joinQuery, joinCands := JoinGenerator(tokens, c.LM)
			if _, exists := scores[joinQuery]; !exists {
				record(joinQuery, accumulatedError, Score(joinCands, c.LM), 1.0)
				newRequests[joinQuery] = true
			}

			klQuery := KeyboardLayoutGenerator(req)
			if _, exists := scores[klQuery]; !exists {
				var klCands []Candidate
				for _, t := range Tokenize(klQuery) {
					if t.IsEstimated() {
						klCands = append(klCands, NewCandidate(lowerWord(t.Text), 0, 0))
					}
				}
				penalty := Weight(utf8.RuneCountInString(klQuery))
				record(klQuery, accumulatedError, Score(klCands, c.LM), penalty)
				newRequests[klQuery] = true
			}
		}
		requests = newRequests
	}

	best := order[0]
	bestScore := scores[best]
	for _, req := range order[1:] {
		if scores[req] < bestScore {
			best = req
			bestScore = scores[req]
		}
	}
	return best
}

// SafeCorrect wraps Correct with panic recovery (spec.md §7): any internal
// failure during the search is logged and the original query is returned
// unchanged rather than surfaced to the caller.
func (c *Corrector) SafeCorrect(origRequest string, iterations, maxCandidates int) (result string) {
	result = origRequest
	defer func() {
		if r := recover(); r != nil {
			glog.Errorf("correct: recovered panic correcting %q: %v", origRequest, r)
			result = origRequest
		}
	}()
	return c.Correct(origRequest, iterations, maxCandidates)
}
