package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func questionsWithKeys(keys ...string) []Question {
	qs := make([]Question, len(keys))
	for i, k := range keys {
		qs[i] = Question{ID: uint(i + 1), CorrectAnswer: k}
	}
	return qs
}

func TestScore_UnansweredCountsWrong(t *testing.T) {
	qs := questionsWithKeys("A", "B", "C")
	res := score(qs, map[uint]string{1: "A", 2: "C"})

	assert.Equal(t, 1, res.Correct)
	assert.Equal(t, 2, res.Wrong)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 33, res.Percent)
}

func TestScore_PercentRoundsHalfUp(t *testing.T) {
	testCases := []struct {
		name    string
		keys    []string
		answers map[uint]string
		percent int
	}{
		{
			name:    "all correct",
			keys:    []string{"A", "A"},
			answers: map[uint]string{1: "A", 2: "A"},
			percent: 100,
		},
		{
			name:    "none answered",
			keys:    []string{"A", "B"},
			answers: map[uint]string{},
			percent: 0,
		},
		{
			name:    "one third rounds down",
			keys:    []string{"A", "A", "A"},
			answers: map[uint]string{1: "A"},
			percent: 33,
		},
		{
			name:    "two thirds rounds up",
			keys:    []string{"A", "A", "A"},
			answers: map[uint]string{1: "A", 2: "A"},
			percent: 67,
		},
		{
			name:    "exact half rounds up",
			keys:    []string{"A", "A", "A", "A", "A", "A", "A", "A"},
			answers: map[uint]string{1: "A"}, // 12.5%
			percent: 13,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := score(questionsWithKeys(tc.keys...), tc.answers)
			assert.Equal(t, tc.percent, res.Percent)
		})
	}
}

func TestScore_SnapshotsAnswers(t *testing.T) {
	qs := questionsWithKeys("A")
	answers := map[uint]string{1: "A"}
	res := score(qs, answers)

	answers[1] = "D"
	assert.Equal(t, "A", res.Answers[1], "result must hold its own copy of the answer map")
}
