package quiz

import "errors"

var (
	// ErrQuizNotFound is returned by the loader when the quiz id does not resolve.
	ErrQuizNotFound = errors.New("quiz not found")

	// ErrNoQuestions is returned when a quiz has zero questions; a session must
	// not be created in that case.
	ErrNoQuestions = errors.New("quiz has no questions")

	// ErrNoActiveSession is returned for session operations when the user has
	// no session in progress.
	ErrNoActiveSession = errors.New("no active quiz session")

	// ErrSessionActive is returned when starting a quiz while another session
	// is still in progress.
	ErrSessionActive = errors.New("another quiz session is already in progress")
)
