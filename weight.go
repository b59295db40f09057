// Package spellchecker implements a bilingual (Russian/English) noisy-channel
// query spelling corrector: a language model and an error model feed a
// weighted trie search for word candidates, which a beam search and a set of
// rewrite generators combine into a single corrected query.
package spellchecker

import "math"

// Weight is a negative log-likelihood, in nats, used throughout the
// language model, error model, and scorer.
type Weight float64

const (
	// unigramAlpha is the additive-smoothing constant for unseen unigrams.
	unigramAlpha = 1e-5
	// oovWeightUnsmoothed is the flat penalty the scorer uses for an
	// out-of-vocabulary word when smoothing is disabled.
	oovWeightUnsmoothed Weight = 1000
	// candidateLMFactor scales a candidate's language-model weight
	// relative to its accumulated error weight, both in Candidate.Total
	// and in the query scorer.
	candidateLMFactor = 1.7
)

// negLog returns -log(x); x<=0 (probability zero or undefined) maps to
// positive infinity, an impossible weight.
func negLog(x float64) Weight {
	if x <= 0 {
		return Weight(math.Inf(1))
	}
	return Weight(-math.Log(x))
}
