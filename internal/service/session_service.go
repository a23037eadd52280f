package service

import (
	"sync"
	"time"

	"github.com/easylearn/easylearn/internal/dto"
	"github.com/easylearn/easylearn/internal/model"
	"github.com/easylearn/easylearn/internal/quiz"
	"github.com/easylearn/easylearn/internal/repository"
	"github.com/rs/zerolog/log"
)

// SessionService owns every live quiz attempt: one per user, with the
// countdown goroutine, the auto-submit wiring and the submission write.
type SessionService interface {
	Start(userID, quizID uint) (*dto.SessionStateDTO, error)
	State(userID uint) (*dto.SessionStateDTO, error)
	SelectAnswer(userID uint, req dto.SelectAnswerRequest) (*dto.SessionStateDTO, error)
	Navigate(userID uint, direction string) (*dto.SessionStateDTO, error)
	Submit(userID uint) (*dto.SessionResultDTO, error)
}

type SessionOption func(*sessionService)

// WithTickInterval overrides the 1-second countdown granularity; tests use it
// to run the clock fast.
func WithTickInterval(d time.Duration) SessionOption {
	return func(s *sessionService) { s.tickInterval = d }
}

type sessionService struct {
	loader         QuizService
	submissionRepo repository.SubmissionRepository
	tickInterval   time.Duration

	mu       sync.RWMutex
	sessions map[uint]*activeSession
}

// activeSession pairs the state machine with its clock goroutine. done is
// closed exactly once, when the session leaves InProgress; that cancels the
// clock before any persistence happens, so no tick can land after submission.
type activeSession struct {
	userID  uint
	session *quiz.Session
	done    chan struct{}
	halt    sync.Once

	// submitMu serialises the manual-submit vs timer-expiry race so the loser
	// observes the winner's fully built result.
	submitMu sync.Mutex
	result   *dto.SessionResultDTO
}

func NewSessionService(loader QuizService, submissionRepo repository.SubmissionRepository, opts ...SessionOption) SessionService {
	s := &sessionService{
		loader:         loader,
		submissionRepo: submissionRepo,
		tickInterval:   time.Second,
		sessions:       make(map[uint]*activeSession),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads the quiz and opens a session for the user. A session still in
// progress blocks a new one; a submitted leftover is replaced. A failed load
// leaves the user with no session at all.
func (s *sessionService) Start(userID, quizID uint) (*dto.SessionStateDTO, error) {
	s.mu.RLock()
	current, ok := s.sessions[userID]
	s.mu.RUnlock()
	if ok && current.session.State() == quiz.StateInProgress {
		return nil, quiz.ErrSessionActive
	}

	def, questions, err := s.loader.LoadQuiz(quizID)
	if err != nil {
		return nil, err
	}
	sess, err := quiz.NewSession(def, questions, time.Now())
	if err != nil {
		return nil, err
	}

	active := &activeSession{userID: userID, session: sess, done: make(chan struct{})}

	s.mu.Lock()
	if current, ok := s.sessions[userID]; ok && current.session.State() == quiz.StateInProgress {
		s.mu.Unlock()
		return nil, quiz.ErrSessionActive
	}
	s.sessions[userID] = active
	s.mu.Unlock()

	go s.runClock(active)

	log.Info().Uint("userID", userID).Uint("quizID", quizID).Int("questions", len(questions)).Msg("Quiz session started")
	return s.stateDTO(active), nil
}

func (s *sessionService) State(userID uint) (*dto.SessionStateDTO, error) {
	active, err := s.lookup(userID)
	if err != nil {
		return nil, err
	}
	return s.stateDTO(active), nil
}

// SelectAnswer records the user's choice. Stale question ids and bad labels
// are absorbed by the state machine as no-ops.
func (s *sessionService) SelectAnswer(userID uint, req dto.SelectAnswerRequest) (*dto.SessionStateDTO, error) {
	active, err := s.lookup(userID)
	if err != nil {
		return nil, err
	}
	active.session.SelectAnswer(req.QuestionID, req.Label)
	return s.stateDTO(active), nil
}

func (s *sessionService) Navigate(userID uint, direction string) (*dto.SessionStateDTO, error) {
	active, err := s.lookup(userID)
	if err != nil {
		return nil, err
	}
	switch direction {
	case "next":
		active.session.Next()
	case "previous":
		active.session.Previous()
	}
	return s.stateDTO(active), nil
}

// Submit finishes the session on behalf of the user. Racing the timer is
// safe: whichever path runs second gets the first one's result.
func (s *sessionService) Submit(userID uint) (*dto.SessionResultDTO, error) {
	active, err := s.lookup(userID)
	if err != nil {
		return nil, err
	}
	return s.finish(active), nil
}

func (s *sessionService) lookup(userID uint) (*activeSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	active, ok := s.sessions[userID]
	if !ok {
		return nil, quiz.ErrNoActiveSession
	}
	return active, nil
}

// runClock drives the countdown at 1-second granularity until the session
// expires or done is closed.
func (s *sessionService) runClock(active *activeSession) {
	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if active.session.Tick() {
				log.Info().Uint("userID", active.userID).Uint("quizID", active.session.Quiz().ID).Msg("Quiz time expired, auto-submitting")
				s.finish(active)
				return
			}
		case <-active.done:
			return
		}
	}
}

// finish submits, cancels the clock and persists -- in that order. The state
// machine's first-caller-wins guard plus submitMu guarantee exactly one
// scoring pass and at most one submission row per session. A failed write is
// reported on the result but never discards the locally computed score.
func (s *sessionService) finish(active *activeSession) *dto.SessionResultDTO {
	active.submitMu.Lock()
	defer active.submitMu.Unlock()

	res, first := active.session.Submit(time.Now())
	active.halt.Do(func() { close(active.done) })
	if !first {
		return active.result
	}

	out := &dto.SessionResultDTO{
		QuizID:           res.QuizID,
		Score:            res.Correct,
		Correct:          res.Correct,
		Wrong:            res.Wrong,
		TotalQuestions:   res.Total,
		Percent:          res.Percent,
		TimeTakenSeconds: res.TimeTakenSeconds,
	}

	submission := &model.QuizSubmission{
		QuizID:           res.QuizID,
		UserID:           active.userID,
		Score:            res.Correct,
		TotalQuestions:   res.Total,
		TimeTakenSeconds: res.TimeTakenSeconds,
		Answers:          model.AnswerMap(res.Answers),
	}
	if err := s.submissionRepo.Create(submission); err != nil {
		log.Error().Err(err).Uint("userID", active.userID).Uint("quizID", res.QuizID).Msg("Failed to persist quiz submission")
		out.SaveError = "failed to save submission"
	} else {
		out.Saved = true
		log.Info().Uint("userID", active.userID).Uint("quizID", res.QuizID).Int("score", res.Correct).Int("percent", res.Percent).Msg("Quiz submission saved")
	}

	active.result = out
	return out
}

func (s *sessionService) stateDTO(active *activeSession) *dto.SessionStateDTO {
	sess := active.session
	state := sess.State()
	index, count := sess.Position()

	out := &dto.SessionStateDTO{
		QuizID:           sess.Quiz().ID,
		QuizTitle:        sess.Quiz().Title,
		State:            state.String(),
		Position:         index,
		TotalQuestions:   count,
		RemainingSeconds: sess.Remaining(),
		Selections:       sess.Selections(),
	}

	if state == quiz.StateInProgress {
		q := sess.Current()
		out.Question = &dto.SessionQuestionDTO{
			ID:           q.ID,
			QuestionText: q.Text,
			OptionA:      q.OptionA,
			OptionB:      q.OptionB,
			OptionC:      q.OptionC,
			OptionD:      q.OptionD,
		}
		if label, ok := sess.SelectedAnswer(q.ID); ok {
			out.SelectedAnswer = label
		}
	} else {
		active.submitMu.Lock()
		out.Result = active.result
		active.submitMu.Unlock()
	}
	return out
}
