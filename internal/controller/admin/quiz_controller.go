package admin

import (
	"net/http"
	"strconv"

	"github.com/easylearn/easylearn/internal/dto"
	"github.com/easylearn/easylearn/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	adminService service.AdminService
}

func NewQuizController(adminService service.AdminService) *QuizController {
	return &QuizController{adminService: adminService}
}

// CreateQuiz godoc
// @Summary Create a quiz for a course
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param quiz body dto.CreateQuizRequest true "Quiz details"
// @Success 201 {object} dto.QuizSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or unknown course"
// @Router /admin/quizzes [post]
func (ctrl *QuizController) CreateQuiz(c *gin.Context) {
	var req dto.CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	quiz, err := ctrl.adminService.CreateQuiz(req)
	if err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Failed to create quiz")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, quiz)
}

// AddQuestion godoc
// @Summary Add a question to a quiz
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param quiz_id path int true "Quiz ID"
// @Param question body dto.CreateQuestionRequest true "Question with options A-D and the correct label"
// @Success 201 {object} dto.QuestionAdminDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or unknown quiz"
// @Router /admin/quizzes/{quiz_id}/questions [post]
func (ctrl *QuizController) AddQuestion(c *gin.Context) {
	quizID, err := strconv.ParseUint(c.Param("quiz_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid quiz ID format"})
		return
	}

	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	question, err := ctrl.adminService.AddQuestion(uint(quizID), req)
	if err != nil {
		log.Error().Err(err).Uint64("quizID", quizID).Msg("Failed to add question")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, question)
}

// ListQuizzes godoc
// @Summary List all quizzes with their course
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.QuizSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/quizzes [get]
func (ctrl *QuizController) ListQuizzes(c *gin.Context) {
	quizzes, err := ctrl.adminService.ListQuizzes()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list quizzes")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve quizzes"})
		return
	}
	c.JSON(http.StatusOK, quizzes)
}

// ListQuestions godoc
// @Summary List a quiz's questions including correct answers
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {array} dto.QuestionAdminDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid quiz ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/quizzes/{quiz_id}/questions [get]
func (ctrl *QuizController) ListQuestions(c *gin.Context) {
	quizID, err := strconv.ParseUint(c.Param("quiz_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid quiz ID format"})
		return
	}

	questions, err := ctrl.adminService.ListQuestions(uint(quizID))
	if err != nil {
		log.Error().Err(err).Uint64("quizID", quizID).Msg("Failed to list questions")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve questions"})
		return
	}
	c.JSON(http.StatusOK, questions)
}

// DeleteQuiz godoc
// @Summary Delete a quiz and its questions
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param quiz_id path int true "Quiz ID"
// @Success 204 "Deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid quiz ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/quizzes/{quiz_id} [delete]
func (ctrl *QuizController) DeleteQuiz(c *gin.Context) {
	quizID, err := strconv.ParseUint(c.Param("quiz_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid quiz ID format"})
		return
	}

	if err := ctrl.adminService.DeleteQuiz(uint(quizID)); err != nil {
		log.Error().Err(err).Uint64("quizID", quizID).Msg("Failed to delete quiz")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to delete quiz"})
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteQuestion godoc
// @Summary Delete a single question
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param question_id path int true "Question ID"
// @Success 204 "Deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid question ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions/{question_id} [delete]
func (ctrl *QuizController) DeleteQuestion(c *gin.Context) {
	questionID, err := strconv.ParseUint(c.Param("question_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid question ID format"})
		return
	}

	if err := ctrl.adminService.DeleteQuestion(uint(questionID)); err != nil {
		log.Error().Err(err).Uint64("questionID", questionID).Msg("Failed to delete question")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to delete question"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ListCourses godoc
// @Summary List all courses across programs
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.CourseResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/courses [get]
func (ctrl *QuizController) ListCourses(c *gin.Context) {
	courses, err := ctrl.adminService.ListCourses()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list courses")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve courses"})
		return
	}
	c.JSON(http.StatusOK, courses)
}
