package dto

import "time"

// QuizSummaryDTO is one card on the quiz selection screen. CourseCode and
// CourseName are a read-only projection of the owning course.
type QuizSummaryDTO struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	CourseID        uint      `json:"course_id"`
	CourseCode      string    `json:"course_code,omitempty"`
	CourseName      string    `json:"course_name,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	TotalQuestions  int       `json:"total_questions"`
	CreatedAt       time.Time `json:"created_at"`
}

// SessionQuestionDTO is the current question as shown to the taker; the
// correct answer never leaves the server while a session is in progress.
type SessionQuestionDTO struct {
	ID           uint   `json:"id"`
	QuestionText string `json:"question_text"`
	OptionA      string `json:"option_a"`
	OptionB      string `json:"option_b"`
	OptionC      string `json:"option_c"`
	OptionD      string `json:"option_d"`
}

// SessionStateDTO is the full read model of an active session.
type SessionStateDTO struct {
	QuizID           uint                `json:"quiz_id"`
	QuizTitle        string              `json:"quiz_title"`
	State            string              `json:"state"`
	Position         int                 `json:"position"` // 0-based
	TotalQuestions   int                 `json:"total_questions"`
	RemainingSeconds int                 `json:"remaining_seconds"`
	Question         *SessionQuestionDTO `json:"question,omitempty"`
	SelectedAnswer   string              `json:"selected_answer,omitempty"`
	Selections       map[uint]string     `json:"selections"`
	Result           *SessionResultDTO   `json:"result,omitempty"`
}

type SelectAnswerRequest struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	Label      string `json:"label" binding:"required,oneof=A B C D"`
}

type NavigateRequest struct {
	Direction string `json:"direction" binding:"required,oneof=next previous"`
}

// SessionResultDTO is the locally computed outcome of a submitted session.
// Saved reports whether the submission record reached the database; the score
// itself is valid either way.
type SessionResultDTO struct {
	QuizID           uint   `json:"quiz_id"`
	Score            int    `json:"score"`
	Correct          int    `json:"correct"`
	Wrong            int    `json:"wrong"`
	TotalQuestions   int    `json:"total_questions"`
	Percent          int    `json:"percent"`
	TimeTakenSeconds int    `json:"time_taken_seconds"`
	Saved            bool   `json:"saved"`
	SaveError        string `json:"save_error,omitempty"`
}

// SubmissionSummaryDTO is one row of a user's submission history.
type SubmissionSummaryDTO struct {
	ID               uint      `json:"id"`
	QuizID           uint      `json:"quiz_id"`
	QuizTitle        string    `json:"quiz_title,omitempty"`
	Score            int       `json:"score"`
	TotalQuestions   int       `json:"total_questions"`
	Percent          int       `json:"percent"`
	TimeTakenSeconds int       `json:"time_taken_seconds"`
	CreatedAt        time.Time `json:"created_at"`
}
