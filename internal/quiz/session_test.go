package quiz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQuiz(durationMinutes int) Quiz {
	return Quiz{ID: 1, CourseID: 10, Title: "CS101 Midterm Review", DurationMinutes: durationMinutes, TotalQuestions: 3}
}

func testQuestions() []Question {
	return []Question{
		{ID: 1, QuizID: 1, Text: "Q1", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d", CorrectAnswer: "A"},
		{ID: 2, QuizID: 1, Text: "Q2", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d", CorrectAnswer: "B"},
		{ID: 3, QuizID: 1, Text: "Q3", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d", CorrectAnswer: "C"},
	}
}

func TestNewSession_NoQuestions(t *testing.T) {
	s, err := NewSession(testQuiz(10), nil, time.Now())
	assert.ErrorIs(t, err, ErrNoQuestions)
	assert.Nil(t, s)

	s, err = NewSession(testQuiz(10), []Question{}, time.Now())
	assert.ErrorIs(t, err, ErrNoQuestions)
	assert.Nil(t, s)
}

func TestNewSession_InitialState(t *testing.T) {
	s, err := NewSession(testQuiz(2), testQuestions(), time.Now())
	require.NoError(t, err)

	assert.Equal(t, StateInProgress, s.State())
	index, count := s.Position()
	assert.Equal(t, 0, index)
	assert.Equal(t, 3, count)
	assert.Equal(t, 120, s.Remaining())
	assert.Empty(t, s.Selections())
}

func TestNavigation_ClampsAtBoundaries(t *testing.T) {
	s, err := NewSession(testQuiz(10), testQuestions(), time.Now())
	require.NoError(t, err)

	// Cannot go before the first question.
	s.Previous()
	s.Previous()
	index, _ := s.Position()
	assert.Equal(t, 0, index)

	// Cannot go past the last question, no matter how often Next is called.
	for i := 0; i < 10; i++ {
		s.Next()
	}
	index, count := s.Position()
	assert.Equal(t, count-1, index)
	assert.Equal(t, "Q3", s.Current().Text)

	s.Previous()
	index, _ = s.Position()
	assert.Equal(t, 1, index)
	assert.Equal(t, "Q2", s.Current().Text)
}

func TestNavigation_RandomWalkStaysInBounds(t *testing.T) {
	s, err := NewSession(testQuiz(10), testQuestions(), time.Now())
	require.NoError(t, err)

	moves := []func(){s.Next, s.Next, s.Previous, s.Next, s.Next, s.Next, s.Previous, s.Previous, s.Previous, s.Previous, s.Next}
	for _, move := range moves {
		move()
		index, count := s.Position()
		assert.GreaterOrEqual(t, index, 0)
		assert.Less(t, index, count)
	}
}

func TestSelectAnswer_OverwriteAndIdempotence(t *testing.T) {
	s, err := NewSession(testQuiz(10), testQuestions(), time.Now())
	require.NoError(t, err)

	s.SelectAnswer(1, "A")
	s.SelectAnswer(1, "A")
	label, ok := s.SelectedAnswer(1)
	require.True(t, ok)
	assert.Equal(t, "A", label)
	assert.Len(t, s.Selections(), 1)

	// Changing one's mind overwrites without touching other selections.
	s.SelectAnswer(2, "C")
	s.SelectAnswer(1, "D")
	assert.Equal(t, map[uint]string{1: "D", 2: "C"}, s.Selections())
}

func TestSelectAnswer_DefensiveNoOps(t *testing.T) {
	s, err := NewSession(testQuiz(10), testQuestions(), time.Now())
	require.NoError(t, err)

	s.SelectAnswer(1, "E")  // invalid label
	s.SelectAnswer(1, "a")  // labels are upper-case only
	s.SelectAnswer(1, "")   // empty label
	s.SelectAnswer(99, "A") // question not in this quiz
	assert.Empty(t, s.Selections())
}

func TestTick_CountsDownAndFiresOnce(t *testing.T) {
	s, err := NewSession(testQuiz(1), testQuestions(), time.Now())
	require.NoError(t, err)
	require.Equal(t, 60, s.Remaining())

	fired := 0
	for i := 0; i < 60; i++ {
		if s.Tick() {
			fired++
		}
	}
	assert.Equal(t, 0, s.Remaining())
	assert.Equal(t, 1, fired, "expiry must trigger exactly once")

	// A 61st tick neither goes negative nor fires again.
	assert.False(t, s.Tick())
	assert.Equal(t, 0, s.Remaining())
}

func TestTick_StopsAfterSubmit(t *testing.T) {
	s, err := NewSession(testQuiz(1), testQuestions(), time.Now())
	require.NoError(t, err)

	s.Tick()
	_, first := s.Submit(time.Now())
	require.True(t, first)

	// A late tick after submission must not move the clock.
	assert.False(t, s.Tick())
	assert.Equal(t, 59, s.Remaining())
}

func TestSubmit_FirstCallerWins(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	s, err := NewSession(testQuiz(10), testQuestions(), start)
	require.NoError(t, err)

	s.SelectAnswer(1, "A")
	s.SelectAnswer(2, "C")

	res, first := s.Submit(start.Add(95 * time.Second))
	require.True(t, first)
	assert.Equal(t, StateSubmitted, s.State())
	assert.Equal(t, 1, res.Correct)
	assert.Equal(t, 2, res.Wrong)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 33, res.Percent)
	assert.Equal(t, 95, res.TimeTakenSeconds)

	// Simulates the manual-click vs timer-expiry race: the loser must get the
	// same result back and know it was not the first.
	again, first := s.Submit(start.Add(200 * time.Second))
	assert.False(t, first)
	assert.Equal(t, res, again)

	stored, ok := s.Result()
	require.True(t, ok)
	assert.Equal(t, res, stored)
}

func TestSubmit_FreezesNavigationAndAnswers(t *testing.T) {
	s, err := NewSession(testQuiz(10), testQuestions(), time.Now())
	require.NoError(t, err)

	s.SelectAnswer(1, "A")
	_, first := s.Submit(time.Now())
	require.True(t, first)

	s.SelectAnswer(2, "B")
	s.Next()
	index, _ := s.Position()
	assert.Equal(t, 0, index)
	assert.Equal(t, map[uint]string{1: "A"}, s.Selections())
}

func TestSession_EndToEnd(t *testing.T) {
	questions := []Question{
		{ID: 1, QuizID: 7, Text: "Q1", CorrectAnswer: "B"},
		{ID: 2, QuizID: 7, Text: "Q2", CorrectAnswer: "A"},
	}
	start := time.Now()
	s, err := NewSession(Quiz{ID: 7, Title: "Networks", DurationMinutes: 5, TotalQuestions: 2}, questions, start)
	require.NoError(t, err)

	s.SelectAnswer(s.Current().ID, "B")
	s.Next()
	s.SelectAnswer(s.Current().ID, "D")

	res, first := s.Submit(start.Add(40 * time.Second))
	require.True(t, first)
	assert.Equal(t, 1, res.Correct)
	assert.Equal(t, 1, res.Wrong)
	assert.Equal(t, 50, res.Percent)
	assert.Equal(t, map[uint]string{1: "B", 2: "D"}, res.Answers)
}
