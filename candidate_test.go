package spellchecker

import "testing"

func TestCandidateTotal(t *testing.T) {
	c := NewCandidate("cat", 2, 1)
	if got, want := c.Total(), Weight(candidateLMFactor*2+1); got != want {
		t.Errorf("Total() = %v; want %v", got, want)
	}
}

func TestCandidateListAddDoesNotMutate(t *testing.T) {
	lm := buildTestLM()
	base := NewCandidateList([]Candidate{NewCandidate("the", lm.UnigramWeight("the"), 0)}, lm)
	extended := base.Add(NewCandidate("cat", lm.UnigramWeight("cat"), 0), lm)

	if len(base.Candidates) != 1 {
		t.Errorf("base.Candidates mutated: len = %d; want 1", len(base.Candidates))
	}
	if len(extended.Candidates) != 2 {
		t.Errorf("extended.Candidates = %d; want 2", len(extended.Candidates))
	}
	if extended.Candidates[0].Word != base.Candidates[0].Word {
		t.Errorf("extended prefix diverged from base: %q != %q", extended.Candidates[0].Word, base.Candidates[0].Word)
	}
}

func TestSortByTotalAscending(t *testing.T) {
	cs := []Candidate{
		NewCandidate("c", 3, 0),
		NewCandidate("a", 1, 0),
		NewCandidate("b", 2, 0),
	}
	sortByTotal(cs)
	for i := 1; i < len(cs); i++ {
		if cs[i-1].Total() > cs[i].Total() {
			t.Errorf("sortByTotal did not sort ascending: %v", cs)
		}
	}
}
