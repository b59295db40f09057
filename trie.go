package spellchecker

import (
	"container/heap"

	"github.com/golang/glog"
)

// trieNode is one node of the prefix tree (spec.md §3 "Trie node"). A
// terminal node's stored Word equals the concatenation of edges from the
// root; that invariant is only ever established by Trie.add.
type trieNode struct {
	children map[rune]*trieNode

	isTerminal bool
	word       string
	lmWeight   Weight
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[rune]*trieNode)}
}

// Trie is a prefix tree over a LanguageModel's vocabulary, augmented with
// per-node unigram weight, used for the error-model-weighted best-first
// candidate search (spec.md §4.4).
type Trie struct {
	root *trieNode
	lm   *LanguageModel
	em   *ErrorModel
	size int
}

// NewTrie returns an empty Trie bound to lm and em. Call Build to populate
// it from lm's vocabulary.
func NewTrie(lm *LanguageModel, em *ErrorModel) *Trie {
	return &Trie{root: newTrieNode(), lm: lm, em: em}
}

// Build adds every word in lm's vocabulary (spec.md §4.4 "Built from all
// words with positive unigram count").
func (tr *Trie) Build() {
	for _, w := range tr.lm.Vocabulary() {
		tr.add(w)
	}
	if glog.V(1) {
		glog.Infof("trie: built %d words", tr.size)
	}
}

func (tr *Trie) add(word string) {
	node := tr.root
	for _, r := range word {
		next := node.children[r]
		if next == nil {
			next = newTrieNode()
			node.children[r] = next
		}
		node = next
	}
	if !node.isTerminal {
		tr.size++
		node.isTerminal = true
		node.word = word
		node.lmWeight = tr.lm.UnigramWeight(word)
	}
}

// Len returns the number of distinct words in the trie.
func (tr *Trie) Len() int { return tr.size }

const (
	defaultTrieIterCap  = 100000
	longPrefixThreshold = 5
	longPrefixBudget    = 14
	transpositionWeight = Weight(4.0)
)

// transition is one frontier item of the best-first search (spec.md §3
// "Transition"): a trie node, accumulated cost, remaining input suffix,
// and accumulated output string. seq breaks cost ties in insertion order
// (spec.md §9 "Priority queue of heterogeneous transition reasons").
type transition struct {
	node   *trieNode
	cost   Weight
	suffix []rune
	out    []rune
	seq    int
}

type transitionHeap []transition

func (h transitionHeap) Len() int { return len(h) }
func (h transitionHeap) Less(i, j int) bool {
	if h[i].cost != h[j].cost {
		return h[i].cost < h[j].cost
	}
	return h[i].seq < h[j].seq
}
func (h transitionHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *transitionHeap) Push(x any)   { *h = append(*h, x.(transition)) }
func (h *transitionHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// FindCandidates runs the best-first search of spec.md §4.4 and returns up
// to maxCandidates in-vocabulary words within limitWeight's edit-cost
// budget (raised to 14 for prefixes of length >= 5).
func (tr *Trie) FindCandidates(prefix string, maxCandidates int, limitWeight Weight) []Candidate {
	prefixRunes := []rune(prefix)
	limit := limitWeight
	if len(prefixRunes) >= longPrefixThreshold {
		limit = longPrefixBudget
	}

	cache := make(map[string]Candidate)
	var seq int
	nextSeq := func() int { seq++; return seq }

	q := &transitionHeap{{node: tr.root, cost: 0, suffix: prefixRunes, out: nil, seq: nextSeq()}}
	heap.Init(q)

	iters := 0
	for q.Len() > 0 && iters < defaultTrieIterCap {
		iters++
		t := heap.Pop(q).(transition)

		if len(t.suffix) == 0 && t.node.isTerminal {
			word := string(t.out)
			addCandidate(cache, NewCandidate(word, tr.lm.UnigramWeight(word), t.cost), maxCandidates)
		}

		var p rune = emptyChar
		hasP := len(t.suffix) > 0
		if hasP {
			p = t.suffix[0]
		}

		for edge, child := range t.node.children {
			if !isAlphabetLetter(edge) {
				continue
			}

			if hasP && edge == p {
				// match
				push(q, transition{child, t.cost, t.suffix[1:], appendRune(t.out, edge), nextSeq()})
				// duplicate-input letter
				if w, ok := tr.em.Weight(emptyChar, p); ok {
					if cw := t.cost + w; cw < limit {
						push(q, transition{child, cw, t.suffix, appendRune(t.out, p), nextSeq()})
					}
				}
			} else {
				// substitution (includes the p==empty "virtual" case)
				if w, ok := tr.em.Weight(p, edge); ok {
					w = similarSymbolOverride(p, edge, w)
					if cw := t.cost + w; cw < limit {
						push(q, transition{child, cw, suffixTail(t.suffix), appendRune(t.out, edge), nextSeq()})
					}
				}
				// insertion (missing letter in input)
				if w, ok := tr.em.Weight(emptyChar, edge); ok {
					if cw := t.cost + w; cw < limit {
						push(q, transition{child, cw, t.suffix, appendRune(t.out, edge), nextSeq()})
					}
				}
			}

			// transposition
			if hasP && len(t.suffix) >= 2 && edge == t.suffix[1] && edge != p {
				if pNode := child.children[p]; pNode != nil {
					if cw := t.cost + transpositionWeight; cw < limit {
						out2 := appendRune(appendRune(t.out, edge), p)
						push(q, transition{pNode, cw, t.suffix[2:], out2, nextSeq()})
					}
				}
			}
		}

		// deletion (extra letter in input)
		if hasP {
			if w, ok := tr.em.Weight(p, emptyChar); ok {
				if cw := t.cost + w; cw < limit {
					push(q, transition{t.node, cw, t.suffix[1:], t.out, nextSeq()})
				}
			}
		}
	}

	return topCandidates(cache, tr.lm, maxCandidates)
}

func push(q *transitionHeap, t transition) { heap.Push(q, t) }

func suffixTail(s []rune) []rune {
	if len(s) == 0 {
		return s
	}
	return s[1:]
}

func appendRune(out []rune, r rune) []rune {
	next := make([]rune, len(out)+1)
	copy(next, out)
	next[len(out)] = r
	return next
}

// similarSymbolOverride implements spec.md §4.4's cross-script look-alike
// rule: if edge is one of the predefined similar symbols and its mapped
// code point equals p, the substitution weight is overridden to 0.5 in
// place of the error model's weight. The caller only applies it when the
// error model has a weight for (p, edge) at all.
func similarSymbolOverride(p, edge rune, w Weight) Weight {
	if mapped, ok := similarSymbols[edge]; ok && p != emptyChar && mapped == p {
		return similarSymbolWeight
	}
	return w
}

// addCandidate implements the candidate cache of spec.md §4.4.1,
// preserving its capacity bug (spec.md §9): once the cache holds
// maxCandidates+1 entries, further new words are silently dropped rather
// than evicting the worst.
func addCandidate(cache map[string]Candidate, cand Candidate, maxCandidates int) {
	if existing, ok := cache[cand.Word]; ok {
		if cand.ErrorWeight < existing.ErrorWeight {
			existing.ErrorWeight = cand.ErrorWeight
			cache[cand.Word] = existing
		}
		return
	}
	if len(cache) <= maxCandidates {
		cache[cand.Word] = cand
	}
}

// topCandidates filters the cache to in-vocabulary words, sorts by Total
// ascending, and returns the first maxCandidates (spec.md §4.4.1).
func topCandidates(cache map[string]Candidate, lm *LanguageModel, maxCandidates int) []Candidate {
	out := make([]Candidate, 0, len(cache))
	for _, c := range cache {
		if lm.UnigramCount(c.Word) > 0 {
			out = append(out, c)
		}
	}
	sortByTotal(out)
	if len(out) > maxCandidates {
		out = out[:maxCandidates]
	}
	return out
}
