// Package password scores password composition for the settings screen.
// Assessments are advisory data for inline rendering, never errors; the
// backend enforces its own policy when the change request lands.
package password

import (
	"regexp"
	"unicode/utf8"
)

const minLength = 8

var (
	upperPattern  = regexp.MustCompile(`[A-Z]`)
	lowerPattern  = regexp.MustCompile(`[a-z]`)
	numberPattern = regexp.MustCompile(`[0-9]`)
	symbolPattern = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// Rules holds one flag per composition criterion.
type Rules struct {
	Length bool `json:"length"`
	Upper  bool `json:"upper"`
	Lower  bool `json:"lower"`
	Number bool `json:"number"`
	Symbol bool `json:"symbol"`
}

// All reports whether every rule flag is set.
func (r Rules) All() bool {
	return r.Length && r.Upper && r.Lower && r.Number && r.Symbol
}

// Assessment is the result of evaluating one candidate password. It is
// recomputed on every keystroke and never persisted.
type Assessment struct {
	Rules Rules `json:"rules"`
	Score int   `json:"score"`
	Valid bool  `json:"valid"`
}

// StrengthEstimator scores crack resistance on a 0..4 scale. The default
// is the zxcvbn estimator; tests plug in a fixed one.
type StrengthEstimator interface {
	Score(password string) int
}

// StrengthEstimatorFunc adapts a function into a StrengthEstimator.
type StrengthEstimatorFunc func(password string) int

// Score satisfies the StrengthEstimator interface.
func (f StrengthEstimatorFunc) Score(password string) int {
	if f == nil {
		return 0
	}
	return f(password)
}

// Evaluator computes rule flags and delegates the strength score. A
// MinScore of zero reduces Valid to the pure rule-flag check.
type Evaluator struct {
	estimator StrengthEstimator
	minScore  int
}

// NewEvaluator returns an Evaluator with the zxcvbn estimator and a
// minimum score of 3.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		estimator: zxcvbnEstimator{},
		minScore:  3,
	}
}

// WithEstimator replaces the strength estimator.
func (e *Evaluator) WithEstimator(estimator StrengthEstimator) *Evaluator {
	if estimator != nil {
		e.estimator = estimator
	}
	return e
}

// WithMinScore sets the score threshold Valid requires. Values are clamped
// to the estimator's 0..4 range.
func (e *Evaluator) WithMinScore(minScore int) *Evaluator {
	if minScore < 0 {
		minScore = 0
	}
	if minScore > 4 {
		minScore = 4
	}
	e.minScore = minScore
	return e
}

// Evaluate computes every rule flag independently, scores the password,
// and reports validity. It is deterministic and side-effect free.
func (e *Evaluator) Evaluate(pw string) Assessment {
	rules := Rules{
		Length: utf8.RuneCountInString(pw) >= minLength,
		Upper:  upperPattern.MatchString(pw),
		Lower:  lowerPattern.MatchString(pw),
		Number: numberPattern.MatchString(pw),
		Symbol: symbolPattern.MatchString(pw),
	}

	score := e.estimator.Score(pw)
	if score < 0 {
		score = 0
	}
	if score > 4 {
		score = 4
	}

	return Assessment{
		Rules: rules,
		Score: score,
		Valid: rules.All() && score >= e.minScore,
	}
}

// StrengthLabel renders a score as the label the settings screen shows.
func StrengthLabel(score int) string {
	labels := []string{"Very Weak", "Weak", "Fair", "Good", "Strong"}
	if score < 0 || score >= len(labels) {
		return labels[0]
	}
	return labels[score]
}
