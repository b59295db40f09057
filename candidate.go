package spellchecker

import "sort"

// Candidate is a proposed replacement word (spec.md §3). Total is the
// intra-candidate-list sort key.
type Candidate struct {
	Word        string
	LMWeight    Weight
	ErrorWeight Weight
}

// NewCandidate builds a Candidate; Total is derived, not stored, so it can
// never drift from its inputs.
func NewCandidate(word string, lmWeight, errorWeight Weight) Candidate {
	return Candidate{Word: word, LMWeight: lmWeight, ErrorWeight: errorWeight}
}

// Total is the candidate's combined sort key: 1.7*lm_weight + error_weight
// (spec.md GLOSSARY "Candidate total").
func (c Candidate) Total() Weight {
	return candidateLMFactor*c.LMWeight + c.ErrorWeight
}

// byTotal sorts Candidates ascending by Total, matching spec.md §3's
// Candidate ordering.
type byTotal []Candidate

func (s byTotal) Len() int           { return len(s) }
func (s byTotal) Less(i, j int) bool { return s[i].Total() < s[j].Total() }
func (s byTotal) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

func sortByTotal(c []Candidate) { sort.Stable(byTotal(c)) }

// CandidateList is an ordered sequence of Candidates (one per estimated
// token) plus its cached combined query score (spec.md §3).
//
// Add returns a new CandidateList with cand appended; it never mutates the
// receiver's slice. The prefix Candidates are copied by value into a fresh
// slice (a flat copy of small value structs) and the score is recomputed
// from scratch.
type CandidateList struct {
	Candidates []Candidate
	Score      Weight
}

// NewCandidateList builds a CandidateList and computes its score.
func NewCandidateList(candidates []Candidate, lm *LanguageModel) CandidateList {
	return CandidateList{Candidates: candidates, Score: Score(candidates, lm)}
}

// Add returns a new CandidateList extending cl with cand.
func (cl CandidateList) Add(cand Candidate, lm *LanguageModel) CandidateList {
	next := make([]Candidate, len(cl.Candidates)+1)
	copy(next, cl.Candidates)
	next[len(cl.Candidates)] = cand
	return NewCandidateList(next, lm)
}

// byScore sorts CandidateLists ascending by Score, for beam pruning.
type byScore []CandidateList

func (s byScore) Len() int           { return len(s) }
func (s byScore) Less(i, j int) bool { return s[i].Score < s[j].Score }
func (s byScore) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

func sortByScore(cl []CandidateList) { sort.Stable(byScore(cl)) }
