package dto

// CreateQuizRequest is for admins creating a quiz for a course.
type CreateQuizRequest struct {
	CourseID        uint   `json:"course_id" binding:"required"`
	Title           string `json:"title" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=1"`
	TotalQuestions  int    `json:"total_questions" binding:"required,min=1"`
}

// CreateQuestionRequest adds one multiple-choice question to an existing quiz.
type CreateQuestionRequest struct {
	QuestionText  string `json:"question_text" binding:"required"`
	OptionA       string `json:"option_a" binding:"required"`
	OptionB       string `json:"option_b" binding:"required"`
	OptionC       string `json:"option_c" binding:"required"`
	OptionD       string `json:"option_d" binding:"required"`
	CorrectAnswer string `json:"correct_answer" binding:"required,oneof=A B C D"`
}

// UploadBookForm is the multipart form for e-book uploads. The PDF is
// required, the cover image optional.
type UploadBookForm struct {
	ProgramID   uint   `form:"program_id" binding:"required"`
	Title       string `form:"title" binding:"required"`
	Author      string `form:"author"`
	Description string `form:"description"`
}

// UploadResourceForm is the multipart form for course resource uploads.
type UploadResourceForm struct {
	CourseID uint   `form:"course_id" binding:"required"`
	Title    string `form:"title" binding:"required"`
	Type     string `form:"type" binding:"required,oneof=lecture_note slides past_question assignment"`
}

type SetAdminRequest struct {
	IsAdmin *bool `json:"is_admin" binding:"required"`
}

// QuestionAdminDTO includes the correct answer; it is only ever returned on
// admin routes.
type QuestionAdminDTO struct {
	ID            uint   `json:"id"`
	QuizID        uint   `json:"quiz_id"`
	QuestionText  string `json:"question_text"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectAnswer string `json:"correct_answer"`
}
