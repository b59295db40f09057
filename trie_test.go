package spellchecker

import "testing"

func buildTestTrie() *Trie {
	lm := NewLanguageModel()
	for _, w := range []string{"cat", "cot", "dog"} {
		lm.UpdateUnigram(w)
	}
	lm.CalcWeights()

	em := NewErrorModel()
	em.update('a', 'o')
	em.update('x', 'y')
	em.CalcWeights()

	tr := NewTrie(lm, em)
	tr.Build()
	return tr
}

func TestTrieFindCandidatesExactMatch(t *testing.T) {
	tr := buildTestTrie()
	cands := tr.FindCandidates("cat", 5, 8)

	words := make(map[string]bool)
	for _, c := range cands {
		words[c.Word] = true
	}
	if !words["cat"] {
		t.Errorf("FindCandidates(cat) = %v; want exact match present", cands)
	}
	if !words["cot"] {
		t.Errorf("FindCandidates(cat) = %v; want substitution candidate cot present", cands)
	}
	if words["dog"] {
		t.Errorf("FindCandidates(cat) = %v; want dog absent (not reachable within budget)", cands)
	}
}

func TestTrieFindCandidatesExactIsCheapest(t *testing.T) {
	tr := buildTestTrie()
	cands := tr.FindCandidates("cat", 5, 8)
	if len(cands) == 0 {
		t.Fatalf("FindCandidates(cat) returned no candidates")
	}
	if cands[0].Word != "cat" {
		t.Errorf("FindCandidates(cat)[0] = %q; want %q (zero-cost exact match sorts first)", cands[0].Word, "cat")
	}
}

func TestTrieLen(t *testing.T) {
	tr := buildTestTrie()
	if tr.Len() != 3 {
		t.Errorf("Len() = %d; want 3", tr.Len())
	}
}
