package user

import (
	"errors"
	"net/http"

	"github.com/easylearn/easylearn/internal/controller"
	"github.com/easylearn/easylearn/internal/dto"
	"github.com/easylearn/easylearn/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// SignUp godoc
// @Summary Register a new student account
// @Description Creates the user profile and returns a signed token
// @Tags auth
// @Accept json
// @Produce json
// @Param account body dto.SignUpRequest true "Account details"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/signup [post]
func (ctrl *AuthController) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := ctrl.authService.SignUp(req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "Email already registered"})
			return
		}
		log.Error().Err(err).Str("email", req.Email).Msg("SignUp failed")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create account"})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// SignIn godoc
// @Summary Sign in with email, school ID or phone
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.SignInRequest true "Identifier and password"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/signin [post]
func (ctrl *AuthController) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := ctrl.authService.SignIn(req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid credentials"})
			return
		}
		log.Error().Err(err).Msg("SignIn failed")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to sign in"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Me godoc
// @Summary Get the authenticated user's profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthenticated"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /auth/me [get]
func (ctrl *AuthController) Me(c *gin.Context) {
	resp, err := ctrl.authService.GetProfile(controller.UserID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "User not found"})
		return
	}
	c.JSON(http.StatusOK, resp)
}
