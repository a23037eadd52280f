package controller

import (
	"net/http"
	"strings"

	"github.com/easylearn/easylearn/internal/dto"
	"github.com/easylearn/easylearn/internal/service"
	"github.com/gin-gonic/gin"
)

const (
	ctxUserIDKey  = "userID"
	ctxIsAdminKey = "isAdmin"
)

// AuthRequired validates the bearer token and stores the caller's identity on
// the request context.
func AuthRequired(authSvc service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Missing or malformed Authorization header"})
			return
		}
		claims, err := authSvc.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid or expired token"})
			return
		}
		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxIsAdminKey, claims.IsAdmin)
		c.Next()
	}
}

// AdminRequired must run after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(ctxIsAdminKey) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: "Admin access required"})
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user's id set by AuthRequired.
func UserID(c *gin.Context) uint {
	v, ok := c.Get(ctxUserIDKey)
	if !ok {
		return 0
	}
	id, _ := v.(uint)
	return id
}
