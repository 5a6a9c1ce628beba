package password

import (
	"strings"
	"unicode"
)

// Strength labels by score: 0-1 Weak, 2 Fair, 3 Good, 4 Strong.
const (
	LabelWeak   = "Weak"
	LabelFair   = "Fair"
	LabelGood   = "Good"
	LabelStrong = "Strong"
)

// Strength is a deterministic assessment of a password. Feedback lists the
// unmet criteria, or a single affirmative message when there are none.
type Strength struct {
	Score    int      `json:"score"`
	Label    string   `json:"label"`
	Feedback []string `json:"feedback"`
}

// Assess scores a password on a 0-4 scale: +1 for length >= 12 and +1 more
// for >= 16, +1 for three character classes and +1 more for all four, -1 for
// a character repeated three or more times in a row, -1 for a three-character
// ascending alphabetic or numeric run (case-insensitive), clamped to [0,4].
func Assess(password string) Strength {
	score := 0
	var feedback []string

	length := len([]rune(password))
	switch {
	case length >= 16:
		score += 2
	case length >= 12:
		score++
		feedback = append(feedback, "Use 16 characters or more.")
	default:
		feedback = append(feedback, "Use at least 12 characters.")
	}

	classes := countClasses(password)
	switch {
	case classes == 4:
		score += 2
	case classes == 3:
		score++
		feedback = append(feedback, "Use all four character classes.")
	default:
		feedback = append(feedback, "Mix at least three character classes.")
	}

	if hasTripleRepeat(password) {
		score--
		feedback = append(feedback, "Avoid repeating a character three or more times in a row.")
	}

	if hasAscendingRun(password) {
		score--
		feedback = append(feedback, "Avoid ascending sequences like abc or 123.")
	}

	if score < 0 {
		score = 0
	}
	if score > 4 {
		score = 4
	}

	if len(feedback) == 0 {
		feedback = []string{"Password looks strong."}
	}

	return Strength{Score: score, Label: labelFor(score), Feedback: feedback}
}

func labelFor(score int) string {
	switch {
	case score <= 1:
		return LabelWeak
	case score == 2:
		return LabelFair
	case score == 3:
		return LabelGood
	default:
		return LabelStrong
	}
}

// countClasses reports how many of {lower, upper, digit, symbol} appear.
func countClasses(s string) int {
	var lower, upper, digit, symbol bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsNumber(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}

	count := 0
	for _, present := range []bool{lower, upper, digit, symbol} {
		if present {
			count++
		}
	}
	return count
}

// hasTripleRepeat reports whether any character appears three or more times
// consecutively.
func hasTripleRepeat(s string) bool {
	r := []rune(s)
	for i := 2; i < len(r); i++ {
		if r[i] == r[i-1] && r[i] == r[i-2] {
			return true
		}
	}
	return false
}

// hasAscendingRun reports whether a three-character ascending alphabetic or
// numeric run exists, ignoring case.
func hasAscendingRun(s string) bool {
	r := []rune(strings.ToLower(s))
	for i := 0; i+2 < len(r); i++ {
		a, b, c := r[i], r[i+1], r[i+2]
		if b != a+1 || c != a+2 {
			continue
		}
		if (a >= 'a' && c <= 'z') || (a >= '0' && c <= '9') {
			return true
		}
	}
	return false
}
