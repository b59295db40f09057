package spellchecker

import (
	"bufio"
	"bytes"
	"encoding/gob"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/golang/glog"
)

// wordRE extracts \w+ runs the way Python's re.findall(r"\w+", ...) does,
// including the Cyrillic letters that make up the Russian half of the
// vocabulary.
var wordRE = regexp.MustCompile(`[0-9A-Za-z_\p{Cyrillic}]+`)

// LanguageModel is a read-only-after-build unigram+bigram frequency store.
// It exposes additive-smoothed and unsmoothed NLL weights (spec.md §3, §4.2).
//
// The zero value is not usable; construct with NewLanguageModel.
type LanguageModel struct {
	alpha float64

	unigramCount map[string]uint64
	bigramCount  map[string]map[string]uint64
	totalTokens  uint64

	unigramWeight map[string]Weight
	bigramWeight  map[string]map[string]Weight
	oovWeight     Weight

	weightsReady bool
}

// NewLanguageModel returns an empty LanguageModel ready for BuildFromFile
// or direct UpdateUnigram/UpdateBigram calls.
func NewLanguageModel() *LanguageModel {
	return NewLanguageModelWithAlpha(unigramAlpha)
}

// NewLanguageModelWithAlpha is NewLanguageModel with an explicit additive
// smoothing constant, for callers wiring a Config.UnigramAlpha override.
func NewLanguageModelWithAlpha(alpha float64) *LanguageModel {
	return &LanguageModel{
		alpha:        alpha,
		unigramCount: make(map[string]uint64),
		bigramCount:  make(map[string]map[string]uint64),
	}
}

// UpdateUnigram increments the count of word by one.
func (lm *LanguageModel) UpdateUnigram(word string) {
	lm.unigramCount[word]++
	lm.totalTokens++
	lm.weightsReady = false
}

// UpdateBigram increments the count of the ordered pair (w1, w2) by one.
func (lm *LanguageModel) UpdateBigram(w1, w2 string) {
	m := lm.bigramCount[w1]
	if m == nil {
		m = make(map[string]uint64)
		lm.bigramCount[w1] = m
	}
	m[w2]++
	lm.weightsReady = false
}

// BuildFromFile ingests a tab-separated corpus (spec.md §4.2, §6): the
// right-hand field of a tab-line (or the whole line when there is no tab)
// is lower-cased and split into \w+ runs; unigram counts and consecutive-
// pair bigram counts are accumulated. Malformed (non-UTF-8) lines are
// skipped with a diagnostic rather than aborting ingestion.
func (lm *LanguageModel) BuildFromFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !utf8.ValidString(line) {
			glog.Warningf("lm: skipping malformed (non-UTF-8) line")
			continue
		}
		line = strings.ToLower(line)
		if idx := strings.IndexByte(line, '\t'); idx >= 0 {
			line = line[idx+1:]
		}
		words := wordRE.FindAllString(line, -1)
		for i, w := range words {
			lm.UpdateUnigram(w)
			if i+1 < len(words) {
				lm.UpdateBigram(w, words[i+1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	lm.CalcWeights()
	return nil
}

// CalcWeights derives the unigram and bigram NLL tables and the smoothed
// out-of-vocabulary default (spec.md §4.2, GLOSSARY). Must be called after
// the last Update*/BuildFromFile call and before any Weight lookup; it is
// idempotent and BuildFromFile calls it automatically.
func (lm *LanguageModel) CalcWeights() {
	n := float64(lm.totalTokens)
	v := float64(len(lm.unigramCount))
	lm.oovWeight = negLog(lm.alpha / (n + lm.alpha*v))

	lm.unigramWeight = make(map[string]Weight, len(lm.unigramCount))
	for w, c := range lm.unigramCount {
		lm.unigramWeight[w] = negLog(float64(c) / (n + lm.alpha))
	}

	lm.bigramWeight = make(map[string]map[string]Weight, len(lm.bigramCount))
	for w1, m := range lm.bigramCount {
		c1 := float64(lm.unigramCount[w1])
		bw := make(map[string]Weight, len(m))
		for w2, c := range m {
			bw[w2] = negLog(float64(c) / c1)
		}
		lm.bigramWeight[w1] = bw
	}
	lm.weightsReady = true
}

// UnigramWeight returns w's unigram NLL, or the smoothed OOV default when w
// was never observed.
func (lm *LanguageModel) UnigramWeight(w string) Weight {
	if wt, ok := lm.unigramWeight[w]; ok {
		return wt
	}
	return lm.oovWeight
}

// OOVWeight returns the smoothed out-of-vocabulary default (spec.md
// GLOSSARY "OOV default (smoothed)").
func (lm *LanguageModel) OOVWeight() Weight {
	return lm.oovWeight
}

// UnigramCount returns the raw observed frequency of w (0 if unseen), for
// presence checks (spec.md §4.2).
func (lm *LanguageModel) UnigramCount(w string) uint64 {
	return lm.unigramCount[w]
}

// BigramWeight returns the NLL of w2 following w1, or 0 (the "fall back to
// unigram" sentinel, spec.md GLOSSARY) when the pair was never observed.
func (lm *LanguageModel) BigramWeight(w1, w2 string) Weight {
	if m, ok := lm.bigramWeight[w1]; ok {
		if wt, ok := m[w2]; ok {
			return wt
		}
	}
	return 0
}

// Vocabulary returns every word with a positive unigram count, the set the
// trie is built from (spec.md §3 "LanguageModel" invariant).
func (lm *LanguageModel) Vocabulary() []string {
	words := make([]string, 0, len(lm.unigramCount))
	for w := range lm.unigramCount {
		words = append(words, w)
	}
	return words
}

// lmGobImage is the serialized shape of a LanguageModel (spec.md §6
// "Persistent artifacts").
type lmGobImage struct {
	Alpha        float64
	UnigramCount map[string]uint64
	BigramCount  map[string]map[string]uint64
	TotalTokens  uint64
}

// MarshalBinary implements encoding.BinaryMarshaler by gob-encoding the raw
// counts; weights are recomputed on load rather than serialized, matching
// kho-fslm's "vocab is the source of truth, derived tables are rebuilt"
// convention.
func (lm *LanguageModel) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	img := lmGobImage{lm.alpha, lm.unigramCount, lm.bigramCount, lm.totalTokens}
	if err := gob.NewEncoder(&buf).Encode(img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The model is
// immediately usable: CalcWeights is invoked before returning.
func (lm *LanguageModel) UnmarshalBinary(data []byte) error {
	var img lmGobImage
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&img); err != nil {
		return err
	}
	lm.alpha = img.Alpha
	lm.unigramCount = img.UnigramCount
	lm.bigramCount = img.BigramCount
	lm.totalTokens = img.TotalTokens
	lm.CalcWeights()
	return nil
}

// LanguageModelFromGob deserializes a LanguageModel written by MarshalBinary. A
// deserialization failure is a model-corrupt error (spec.md §7): the
// caller should treat it as fatal at startup.
func LanguageModelFromGob(r io.Reader) (*LanguageModel, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	lm := NewLanguageModel()
	if err := lm.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return lm, nil
}
