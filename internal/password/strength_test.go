package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssess(t *testing.T) {
	tests := []struct {
		name          string
		password      string
		expectedScore int
		expectedLabel string
	}{
		{
			name:          "Strong_16CharsAllClasses",
			password:      "aB3!eF7@iJ1#mN5$",
			expectedScore: 4,
			expectedLabel: LabelStrong,
		},
		{
			name:          "Good_16CharsThreeClasses",
			password:      "aB3dE5fG7h1xKm9Q",
			expectedScore: 3,
			expectedLabel: LabelGood,
		},
		{
			name:          "Fair_12CharsThreeClasses",
			password:      "aB3dE5fG7h1x",
			expectedScore: 2,
			expectedLabel: LabelFair,
		},
		{
			name:          "Weak_ShortSingleClass",
			password:      "hello",
			expectedScore: 0,
			expectedLabel: LabelWeak,
		},
		{
			name:          "Weak_AscendingDigits",
			password:      "12345678",
			expectedScore: 0,
			expectedLabel: LabelWeak,
		},
		{
			name:          "Good_StrongWithTripleRepeat",
			password:      "aaaB3!eF7@iJ1#mN",
			expectedScore: 3,
			expectedLabel: LabelGood,
		},
		{
			name:          "Good_StrongWithAscendingRun",
			password:      "abcB3!eF7@iJ1#mN",
			expectedScore: 3,
			expectedLabel: LabelGood,
		},
		{
			name:          "Weak_Empty",
			password:      "",
			expectedScore: 0,
			expectedLabel: LabelWeak,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Assess(tt.password)

			assert.Equal(t, tt.expectedScore, got.Score)
			assert.Equal(t, tt.expectedLabel, got.Label)
			assert.NotEmpty(t, got.Feedback)
		})
	}
}

func TestAssess_AffirmativeFeedback(t *testing.T) {
	got := Assess("aB3!eF7@iJ1#mN5$")

	assert.Equal(t, 4, got.Score)
	assert.Equal(t, []string{"Password looks strong."}, got.Feedback)
}

func TestAssess_FeedbackListsUnmetCriteria(t *testing.T) {
	got := Assess("abc")

	assert.Equal(t, LabelWeak, got.Label)
	assert.Contains(t, got.Feedback, "Use at least 12 characters.")
	assert.Contains(t, got.Feedback, "Mix at least three character classes.")
	assert.Contains(t, got.Feedback, "Avoid ascending sequences like abc or 123.")
}

func TestAssess_Deterministic(t *testing.T) {
	first := Assess("aB3dE5fG7h1x")
	second := Assess("aB3dE5fG7h1x")

	assert.Equal(t, first, second)
}

func TestAssess_GeneratedPasswordScoresStrong(t *testing.T) {
	// A 16-character draw over all four classes scores 4 unless the random
	// fill produced a repeat or an ascending run, both of which are
	// legitimate deductions.
	got, err := Generate(DefaultPolicy())
	assert.NoError(t, err)

	strength := Assess(got)
	assert.GreaterOrEqual(t, strength.Score, 2)
}

func TestCountClasses(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "AllFour", input: "aB3!", expected: 4},
		{name: "Three", input: "aB3", expected: 3},
		{name: "Two", input: "ab12", expected: 2},
		{name: "One", input: "abcd", expected: 1},
		{name: "Empty", input: "", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, countClasses(tt.input))
		})
	}
}

func TestHasTripleRepeat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "Triple", input: "xaaay", expected: true},
		{name: "Quad", input: "aaaa", expected: true},
		{name: "Double", input: "aab", expected: false},
		{name: "NonConsecutive", input: "aba ab", expected: false},
		{name: "Empty", input: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, hasTripleRepeat(tt.input))
		})
	}
}

func TestHasAscendingRun(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "Alphabetic", input: "xabcx", expected: true},
		{name: "AlphabeticUppercase", input: "xABCx", expected: true},
		{name: "Numeric", input: "x123x", expected: true},
		{name: "MixedCase", input: "aBc", expected: true},
		{name: "Descending", input: "cba321", expected: false},
		{name: "Broken", input: "acebdf", expected: false},
		{name: "AlnumBoundary", input: "yz0", expected: false},
		{name: "Empty", input: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, hasAscendingRun(tt.input))
		})
	}
}
