package spellchecker

import "testing"

func TestErrorModelWeight(t *testing.T) {
	em := NewErrorModel()
	em.update('a', 'o')
	em.update('a', 'o')
	em.update('a', 'o')
	em.update(emptyChar, 'x')
	em.CalcWeights()

	if w, ok := em.Weight('a', 'o'); !ok || w <= 0 {
		t.Errorf("Weight(a, o) = (%v, %v); want positive weight, ok=true", w, ok)
	}
	if _, ok := em.Weight('q', 'z'); ok {
		t.Errorf("Weight(q, z) ok = true; want false (unobserved edit is not permitted)")
	}
}

func TestErrorModelAlignIdentical(t *testing.T) {
	em := NewErrorModel()
	em.align("abc", "abc")
	if em.total != 0 {
		t.Errorf("align on identical strings recorded %d edits; want 0", em.total)
	}
}

func TestErrorModelAlignDeletion(t *testing.T) {
	em := NewErrorModel()
	em.align("ab", "a")
	if em.count[errKey{'b', emptyChar}] != 1 {
		t.Errorf("align(ab, a) did not record deletion of 'b'; count = %d", em.count[errKey{'b', emptyChar}])
	}
	if em.total != 1 {
		t.Errorf("align(ab, a) recorded %d edits; want 1", em.total)
	}
}

func TestErrorModelAlignSubstitution(t *testing.T) {
	em := NewErrorModel()
	em.align("cat", "cot")
	if em.count[errKey{'a', 'o'}] != 1 {
		t.Errorf("align(cat, cot) did not record substitution a->o; count = %d", em.count[errKey{'a', 'o'}])
	}
	if em.total != 1 {
		t.Errorf("align(cat, cot) recorded %d edits; want 1", em.total)
	}
}

func TestErrorModelGobRoundTrip(t *testing.T) {
	em := NewErrorModel()
	em.align("teh", "the")
	em.CalcWeights()

	data, err := em.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	restored := NewErrorModel()
	if err := restored.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if restored.total != em.total {
		t.Errorf("restored total = %d; want %d", restored.total, em.total)
	}
}
