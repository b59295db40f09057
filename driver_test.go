package spellchecker

import "testing"

func buildTestCorrector() *Corrector {
	lm := NewLanguageModel()
	for i := 0; i < 20; i++ {
		lm.UpdateUnigram("cat")
	}
	lm.CalcWeights()

	em := NewErrorModel()
	em.update('k', 'c')
	em.CalcWeights()

	tr := NewTrie(lm, em)
	tr.Build()
	return NewCorrector(lm, em, tr)
}

func TestCorrectFixesMisspelling(t *testing.T) {
	c := buildTestCorrector()
	if got := c.Correct("kat", 2, 5); got != "cat" {
		t.Errorf("Correct(kat) = %q; want %q", got, "cat")
	}
}

func TestCorrectZeroIterationsReturnsOriginal(t *testing.T) {
	c := buildTestCorrector()
	if got := c.Correct("kat", 0, 5); got != "kat" {
		t.Errorf("Correct(kat, 0 iterations) = %q; want unchanged %q", got, "kat")
	}
}

func TestSafeCorrectRecoversFromPanic(t *testing.T) {
	c := &Corrector{LM: buildTestLM(), EM: NewErrorModel()}
	got := c.SafeCorrect("the cot", 2, 5)
	if got != "the cot" {
		t.Errorf("SafeCorrect with nil trie = %q; want original query %q unchanged", got, "the cot")
	}
}
