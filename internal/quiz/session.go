package quiz

import (
	"math"
	"sync"
	"time"
)

// State is the lifecycle of one quiz attempt.
type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateInProgress:
		return "in_progress"
	case StateSubmitted:
		return "submitted"
	default:
		return "not_started"
	}
}

// Session is one user's attempt at one quiz: current position, accumulated
// answers and the countdown. All mutations go through the mutex so the timer
// goroutine and request handlers never race. There is no transition back out
// of StateSubmitted.
type Session struct {
	mu        sync.Mutex
	quiz      Quiz
	questions []Question
	known     map[uint]struct{}
	index     int
	answers   map[uint]string
	remaining int
	startedAt time.Time
	state     State
	expired   bool
	result    *Result
}

// NewSession starts an attempt at quiz with the given question set, in fetch
// order. It fails with ErrNoQuestions on an empty set; no session exists then.
func NewSession(q Quiz, questions []Question, now time.Time) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	known := make(map[uint]struct{}, len(questions))
	for _, qs := range questions {
		known[qs.ID] = struct{}{}
	}
	return &Session{
		quiz:      q,
		questions: questions,
		known:     known,
		answers:   make(map[uint]string),
		remaining: q.DurationMinutes * 60,
		startedAt: now,
		state:     StateInProgress,
	}, nil
}

// SelectAnswer records label for the given question, overwriting any earlier
// choice. Unknown question ids, invalid labels and submitted sessions are
// defensive no-ops: the UI should never produce them, but the state machine
// does not trust that.
func (s *Session) SelectAnswer(questionID uint, label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateInProgress || !ValidLabel(label) {
		return
	}
	if _, ok := s.known[questionID]; !ok {
		return
	}
	s.answers[questionID] = label
}

// Next advances to the following question; a no-op on the last one.
func (s *Session) Next() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateInProgress && s.index < len(s.questions)-1 {
		s.index++
	}
}

// Previous moves back one question; a no-op on the first one.
func (s *Session) Previous() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateInProgress && s.index > 0 {
		s.index--
	}
}

// Tick counts one second off the clock. It returns true exactly once, on the
// tick that reaches zero; that is the auto-submit trigger. Remaining time
// never goes negative and stops moving once the session is submitted.
func (s *Session) Tick() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateInProgress || s.remaining <= 0 {
		return false
	}
	s.remaining--
	if s.remaining == 0 && !s.expired {
		s.expired = true
		return true
	}
	return false
}

// Submit closes the attempt and scores it. The first caller wins: it gets the
// freshly computed Result and first=true. Any later call (a manual click
// racing the timer, or vice versa) gets the same Result with first=false, so
// the caller knows not to persist a duplicate submission.
func (s *Session) Submit(now time.Time) (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateSubmitted {
		return *s.result, false
	}
	s.state = StateSubmitted

	res := score(s.questions, s.answers)
	res.QuizID = s.quiz.ID
	res.TimeTakenSeconds = int(math.Round(now.Sub(s.startedAt).Seconds()))
	s.result = &res
	return res, true
}

// State returns the session's lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Quiz returns the immutable quiz definition this session runs against.
func (s *Session) Quiz() Quiz {
	return s.quiz
}

// Position returns the 0-based current index and the question count.
func (s *Session) Position() (index, count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index, len(s.questions)
}

// Current returns the question at the current position.
func (s *Session) Current() Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.questions[s.index]
}

// Remaining returns the seconds left on the countdown.
func (s *Session) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remaining
}

// SelectedAnswer returns the stored label for a question, if any.
func (s *Session) SelectedAnswer(questionID uint) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	label, ok := s.answers[questionID]
	return label, ok
}

// Selections returns a copy of the full answer map.
func (s *Session) Selections() map[uint]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[uint]string, len(s.answers))
	for id, label := range s.answers {
		out[id] = label
	}
	return out
}

// Result returns the computed outcome once the session is submitted.
func (s *Session) Result() (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return Result{}, false
	}
	return *s.result, true
}
