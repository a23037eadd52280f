package service

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/easylearn/easylearn/internal/dto"
	"github.com/easylearn/easylearn/internal/model"
	"github.com/easylearn/easylearn/internal/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLoader serves a fixed quiz definition in place of the database-backed
// QuizService.
type fakeLoader struct {
	def       quiz.Quiz
	questions []quiz.Question
	err       error
}

func (f *fakeLoader) GetAvailableQuizzes(uint) ([]dto.QuizSummaryDTO, error) {
	return nil, nil
}

func (f *fakeLoader) GetUserSubmissions(uint) ([]dto.SubmissionSummaryDTO, error) {
	return nil, nil
}

func (f *fakeLoader) LoadQuiz(quizID uint) (quiz.Quiz, []quiz.Question, error) {
	if f.err != nil {
		return quiz.Quiz{}, nil, f.err
	}
	return f.def, f.questions, nil
}

type fakeSubmissionRepo struct {
	mu         sync.Mutex
	created    []model.QuizSubmission
	failCreate bool
}

func (f *fakeSubmissionRepo) Create(sub *model.QuizSubmission) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate {
		return errors.New("connection refused")
	}
	f.created = append(f.created, *sub)
	return nil
}

func (f *fakeSubmissionRepo) FindByUserID(userID uint) ([]model.QuizSubmission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.QuizSubmission(nil), f.created...), nil
}

func (f *fakeSubmissionRepo) CountByUserID(userID uint) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.created)), nil
}

func twoQuestionLoader() *fakeLoader {
	return &fakeLoader{
		def: quiz.Quiz{ID: 7, CourseID: 3, Title: "Networks Quiz", DurationMinutes: 1, TotalQuestions: 2},
		questions: []quiz.Question{
			{ID: 1, QuizID: 7, Text: "Q1", CorrectAnswer: "B"},
			{ID: 2, QuizID: 7, Text: "Q2", CorrectAnswer: "A"},
		},
	}
}

func TestSessionService_StartFailsWithoutQuestions(t *testing.T) {
	loader := &fakeLoader{err: fmt.Errorf("quiz 9: %w", quiz.ErrNoQuestions)}
	svc := NewSessionService(loader, &fakeSubmissionRepo{})

	state, err := svc.Start(42, 9)
	assert.ErrorIs(t, err, quiz.ErrNoQuestions)
	assert.Nil(t, state)

	// No partial session may exist after a failed load.
	_, err = svc.State(42)
	assert.ErrorIs(t, err, quiz.ErrNoActiveSession)
}

func TestSessionService_StartFailsOnUnknownQuiz(t *testing.T) {
	loader := &fakeLoader{err: fmt.Errorf("quiz 9: %w", quiz.ErrQuizNotFound)}
	svc := NewSessionService(loader, &fakeSubmissionRepo{})

	_, err := svc.Start(42, 9)
	assert.ErrorIs(t, err, quiz.ErrQuizNotFound)
}

func TestSessionService_SingleActiveSessionPerUser(t *testing.T) {
	svc := NewSessionService(twoQuestionLoader(), &fakeSubmissionRepo{})

	_, err := svc.Start(42, 7)
	require.NoError(t, err)

	_, err = svc.Start(42, 7)
	assert.ErrorIs(t, err, quiz.ErrSessionActive)

	// A different user is unaffected.
	_, err = svc.Start(43, 7)
	assert.NoError(t, err)
}

func TestSessionService_AnswerNavigateSubmit(t *testing.T) {
	repo := &fakeSubmissionRepo{}
	svc := NewSessionService(twoQuestionLoader(), repo)

	state, err := svc.Start(42, 7)
	require.NoError(t, err)
	require.NotNil(t, state.Question)
	assert.Equal(t, "in_progress", state.State)
	assert.Equal(t, 0, state.Position)
	assert.Equal(t, 2, state.TotalQuestions)
	assert.Equal(t, 60, state.RemainingSeconds)

	state, err = svc.SelectAnswer(42, dto.SelectAnswerRequest{QuestionID: state.Question.ID, Label: "B"})
	require.NoError(t, err)
	assert.Equal(t, "B", state.SelectedAnswer)

	state, err = svc.Navigate(42, "next")
	require.NoError(t, err)
	assert.Equal(t, 1, state.Position)
	require.NotNil(t, state.Question)

	_, err = svc.SelectAnswer(42, dto.SelectAnswerRequest{QuestionID: state.Question.ID, Label: "D"})
	require.NoError(t, err)

	result, err := svc.Submit(42)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Correct)
	assert.Equal(t, 1, result.Wrong)
	assert.Equal(t, 50, result.Percent)
	assert.True(t, result.Saved)

	require.Len(t, repo.created, 1)
	sub := repo.created[0]
	assert.Equal(t, uint(7), sub.QuizID)
	assert.Equal(t, uint(42), sub.UserID)
	assert.Equal(t, 1, sub.Score)
	assert.Equal(t, 2, sub.TotalQuestions)
	assert.Equal(t, model.AnswerMap{1: "B", 2: "D"}, sub.Answers)
}

func TestSessionService_DoubleSubmitPersistsOnce(t *testing.T) {
	repo := &fakeSubmissionRepo{}
	svc := NewSessionService(twoQuestionLoader(), repo)

	_, err := svc.Start(42, 7)
	require.NoError(t, err)

	// Two concurrent submits model the manual click racing timer expiry at
	// remaining=0.
	var wg sync.WaitGroup
	results := make([]*dto.SessionResultDTO, 2)
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx], errs[idx] = svc.Submit(42)
		}(i)
	}
	wg.Wait()
	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	assert.Len(t, repo.created, 1, "exactly one submission row")
	assert.Equal(t, results[0], results[1], "both callers see the same result")
}

func TestSessionService_PersistenceFailureKeepsScore(t *testing.T) {
	repo := &fakeSubmissionRepo{failCreate: true}
	svc := NewSessionService(twoQuestionLoader(), repo)

	state, err := svc.Start(42, 7)
	require.NoError(t, err)
	_, err = svc.SelectAnswer(42, dto.SelectAnswerRequest{QuestionID: state.Question.ID, Label: "B"})
	require.NoError(t, err)

	result, err := svc.Submit(42)
	require.NoError(t, err, "a failed write is reported, not raised")
	assert.False(t, result.Saved)
	assert.NotEmpty(t, result.SaveError)
	assert.Equal(t, 1, result.Correct)
	assert.Equal(t, 50, result.Percent)

	// The session stays submitted; no retry, no duplicate scoring.
	again, err := svc.Submit(42)
	require.NoError(t, err)
	assert.Equal(t, result, again)
	assert.Empty(t, repo.created)
}

func TestSessionService_AutoSubmitOnExpiry(t *testing.T) {
	repo := &fakeSubmissionRepo{}
	svc := NewSessionService(twoQuestionLoader(), repo, WithTickInterval(time.Millisecond))

	state, err := svc.Start(42, 7)
	require.NoError(t, err)
	_, err = svc.SelectAnswer(42, dto.SelectAnswerRequest{QuestionID: state.Question.ID, Label: "B"})
	require.NoError(t, err)

	// 60 fast ticks drain the 1-minute countdown and fire the auto-submit.
	require.Eventually(t, func() bool {
		repo.mu.Lock()
		defer repo.mu.Unlock()
		return len(repo.created) == 1
	}, 5*time.Second, 5*time.Millisecond)

	state, err = svc.State(42)
	require.NoError(t, err)
	assert.Equal(t, "submitted", state.State)
	assert.Equal(t, 0, state.RemainingSeconds)
	require.NotNil(t, state.Result)
	assert.Equal(t, 1, state.Result.Correct)
	assert.True(t, state.Result.Saved)

	// Give any stray tick a chance to misfire, then confirm it did not.
	time.Sleep(20 * time.Millisecond)
	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.Len(t, repo.created, 1, "expiry must not double-fire submission")
}

func TestSessionService_StartAllowedAfterSubmission(t *testing.T) {
	svc := NewSessionService(twoQuestionLoader(), &fakeSubmissionRepo{})

	_, err := svc.Start(42, 7)
	require.NoError(t, err)
	_, err = svc.Submit(42)
	require.NoError(t, err)

	_, err = svc.Start(42, 7)
	assert.NoError(t, err, "a submitted session must not block a new attempt")
}

func TestSessionService_OperationsWithoutSession(t *testing.T) {
	svc := NewSessionService(twoQuestionLoader(), &fakeSubmissionRepo{})

	_, err := svc.State(42)
	assert.ErrorIs(t, err, quiz.ErrNoActiveSession)
	_, err = svc.SelectAnswer(42, dto.SelectAnswerRequest{QuestionID: 1, Label: "A"})
	assert.ErrorIs(t, err, quiz.ErrNoActiveSession)
	_, err = svc.Navigate(42, "next")
	assert.ErrorIs(t, err, quiz.ErrNoActiveSession)
	_, err = svc.Submit(42)
	assert.ErrorIs(t, err, quiz.ErrNoActiveSession)
}
