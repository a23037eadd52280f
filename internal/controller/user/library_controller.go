package user

import (
	"net/http"
	"strconv"

	"github.com/easylearn/easylearn/internal/controller"
	"github.com/easylearn/easylearn/internal/dto"
	"github.com/easylearn/easylearn/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// LibraryController serves the read side of the portal: books, courses,
// resources and the dashboard. Everything is scoped to the caller's program.
type LibraryController struct {
	authService      service.AuthService
	libraryService   service.LibraryService
	dashboardService service.DashboardService
}

func NewLibraryController(
	authService service.AuthService,
	libraryService service.LibraryService,
	dashboardService service.DashboardService,
) *LibraryController {
	return &LibraryController{
		authService:      authService,
		libraryService:   libraryService,
		dashboardService: dashboardService,
	}
}

// GetBooks godoc
// @Summary List e-books for the user's program
// @Tags library
// @Produce json
// @Security BearerAuth
// @Param search query string false "Filter by title or author"
// @Success 200 {array} dto.BookResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /books [get]
func (ctrl *LibraryController) GetBooks(c *gin.Context) {
	profile, err := ctrl.authService.GetProfile(controller.UserID(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "User not found"})
		return
	}

	books, err := ctrl.libraryService.GetBooks(profile.ProgramID, c.Query("search"))
	if err != nil {
		log.Error().Err(err).Msg("Failed to list books")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve books"})
		return
	}
	c.JSON(http.StatusOK, books)
}

// GetCourses godoc
// @Summary List courses of the user's program
// @Tags library
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.CourseResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (ctrl *LibraryController) GetCourses(c *gin.Context) {
	profile, err := ctrl.authService.GetProfile(controller.UserID(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "User not found"})
		return
	}

	courses, err := ctrl.libraryService.GetCourses(profile.ProgramID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list courses")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve courses"})
		return
	}
	c.JSON(http.StatusOK, courses)
}

// GetResources godoc
// @Summary List course resources for the user's program
// @Tags library
// @Produce json
// @Security BearerAuth
// @Param course_id query int false "Limit to one course"
// @Param type query string false "lecture_note, slides, past_question or assignment"
// @Success 200 {array} dto.ResourceResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /resources [get]
func (ctrl *LibraryController) GetResources(c *gin.Context) {
	profile, err := ctrl.authService.GetProfile(controller.UserID(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "User not found"})
		return
	}

	courseID, _ := strconv.ParseUint(c.Query("course_id"), 10, 32)
	resources, err := ctrl.libraryService.GetResources(profile.ProgramID, uint(courseID), c.Query("type"))
	if err != nil {
		log.Error().Err(err).Msg("Failed to list resources")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve resources"})
		return
	}
	c.JSON(http.StatusOK, resources)
}

// GetDashboard godoc
// @Summary Dashboard counters and recent items for the user
// @Tags library
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DashboardDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /dashboard [get]
func (ctrl *LibraryController) GetDashboard(c *gin.Context) {
	dashboard, err := ctrl.dashboardService.GetDashboard(controller.UserID(c))
	if err != nil {
		log.Error().Err(err).Msg("Failed to build dashboard")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve dashboard"})
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
