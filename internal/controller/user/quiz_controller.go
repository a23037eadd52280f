package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/easylearn/easylearn/internal/controller"
	"github.com/easylearn/easylearn/internal/dto"
	"github.com/easylearn/easylearn/internal/quiz"
	"github.com/easylearn/easylearn/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	quizService    service.QuizService
	sessionService service.SessionService
}

func NewQuizController(quizService service.QuizService, sessionService service.SessionService) *QuizController {
	return &QuizController{quizService: quizService, sessionService: sessionService}
}

// GetAvailableQuizzes godoc
// @Summary List quizzes for the user's program courses
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.QuizSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes [get]
func (ctrl *QuizController) GetAvailableQuizzes(c *gin.Context) {
	quizzes, err := ctrl.quizService.GetAvailableQuizzes(controller.UserID(c))
	if err != nil {
		log.Error().Err(err).Msg("Failed to list available quizzes")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve quizzes"})
		return
	}
	c.JSON(http.StatusOK, quizzes)
}

// StartSession godoc
// @Summary Start a quiz session
// @Description Loads the quiz and its questions and opens the user's single active session
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param quiz_id path int true "Quiz ID"
// @Success 201 {object} dto.SessionStateDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid quiz ID format"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 409 {object} dto.ErrorResponse "Another session is in progress"
// @Failure 422 {object} dto.ErrorResponse "Quiz has no questions"
// @Router /quizzes/{quiz_id}/session [post]
func (ctrl *QuizController) StartSession(c *gin.Context) {
	quizID, err := strconv.ParseUint(c.Param("quiz_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid quiz ID format"})
		return
	}

	state, err := ctrl.sessionService.Start(controller.UserID(c), uint(quizID))
	if err != nil {
		ctrl.sessionError(c, err)
		return
	}
	c.JSON(http.StatusCreated, state)
}

// GetSessionState godoc
// @Summary Get the current session state
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SessionStateDTO
// @Failure 404 {object} dto.ErrorResponse "No active session"
// @Router /session [get]
func (ctrl *QuizController) GetSessionState(c *gin.Context) {
	state, err := ctrl.sessionService.State(controller.UserID(c))
	if err != nil {
		ctrl.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// SelectAnswer godoc
// @Summary Record an answer for a question in the active session
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param answer body dto.SelectAnswerRequest true "Question ID and label A-D"
// @Success 200 {object} dto.SessionStateDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "No active session"
// @Router /session/answers [post]
func (ctrl *QuizController) SelectAnswer(c *gin.Context) {
	var req dto.SelectAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	state, err := ctrl.sessionService.SelectAnswer(controller.UserID(c), req)
	if err != nil {
		ctrl.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// Navigate godoc
// @Summary Move to the next or previous question
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param direction body dto.NavigateRequest true "next or previous"
// @Success 200 {object} dto.SessionStateDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "No active session"
// @Router /session/navigate [post]
func (ctrl *QuizController) Navigate(c *gin.Context) {
	var req dto.NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	state, err := ctrl.sessionService.Navigate(controller.UserID(c), req.Direction)
	if err != nil {
		ctrl.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// SubmitSession godoc
// @Summary Submit the active session and get the score
// @Description Scores the attempt locally; a failed submission write is flagged on the result but does not void the score
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SessionResultDTO
// @Failure 404 {object} dto.ErrorResponse "No active session"
// @Router /session/submit [post]
func (ctrl *QuizController) SubmitSession(c *gin.Context) {
	result, err := ctrl.sessionService.Submit(controller.UserID(c))
	if err != nil {
		ctrl.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetMySubmissions godoc
// @Summary List the user's past quiz submissions
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.SubmissionSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /my-submissions [get]
func (ctrl *QuizController) GetMySubmissions(c *gin.Context) {
	history, err := ctrl.quizService.GetUserSubmissions(controller.UserID(c))
	if err != nil {
		log.Error().Err(err).Msg("Failed to list submissions")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve submissions"})
		return
	}
	c.JSON(http.StatusOK, history)
}

func (ctrl *QuizController) sessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, quiz.ErrQuizNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Quiz not found"})
	case errors.Is(err, quiz.ErrNoQuestions):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: "This quiz has no questions yet"})
	case errors.Is(err, quiz.ErrSessionActive):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "Another quiz session is already in progress"})
	case errors.Is(err, quiz.ErrNoActiveSession):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "No active quiz session"})
	default:
		log.Error().Err(err).Msg("Quiz session operation failed")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Quiz session operation failed"})
	}
}
