package admin

import (
	"net/http"
	"strconv"

	"github.com/easylearn/easylearn/internal/dto"
	"github.com/easylearn/easylearn/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type UserController struct {
	adminService service.AdminService
}

func NewUserController(adminService service.AdminService) *UserController {
	return &UserController{adminService: adminService}
}

// ListUsers godoc
// @Summary List all registered users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.UserResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/users [get]
func (ctrl *UserController) ListUsers(c *gin.Context) {
	users, err := ctrl.adminService.ListUsers()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list users")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// SetAdmin godoc
// @Summary Grant or revoke a user's admin flag
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user_id path int true "User ID"
// @Param flag body dto.SetAdminRequest true "Admin flag"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or unknown user"
// @Router /admin/users/{user_id}/admin [put]
func (ctrl *UserController) SetAdmin(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid user ID format"})
		return
	}

	var req dto.SetAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := ctrl.adminService.SetAdmin(uint(userID), *req.IsAdmin)
	if err != nil {
		log.Error().Err(err).Uint64("userID", userID).Msg("Failed to update admin flag")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}
