package spellchecker

import "testing"

func TestIsAlphabetLetter(t *testing.T) {
	for _, c := range []struct {
		r    rune
		want bool
	}{
		{'a', true}, {'z', true}, {'A', true},
		{'ф', true}, {'Ё', true}, {'я', true},
		{'1', false}, {' ', false}, {'-', false},
	} {
		if got := isAlphabetLetter(c.r); got != c.want {
			t.Errorf("isAlphabetLetter(%q) = %v; want %v", c.r, got, c.want)
		}
	}
}

func TestFlipKeyboardLayout(t *testing.T) {
	for _, c := range []struct {
		in, want string
	}{
		{"ghbdtn", "привет"},
		{"привет", "ghbdtn"},
		{"hello", "руддщ"},
		{"123", "123"},
	} {
		if got := FlipKeyboardLayout(c.in); got != c.want {
			t.Errorf("FlipKeyboardLayout(%q) = %q; want %q", c.in, got, c.want)
		}
	}
}
