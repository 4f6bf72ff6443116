package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/HPainhas/DevConnector/pkg/apperror"
	"github.com/HPainhas/DevConnector/pkg/auth"
	"github.com/HPainhas/DevConnector/pkg/logger"
)

const (
	GinContextKeyUserID = "userID"
)

// AuthMiddleware validates the bearer token and stores the authenticated
// user id on the gin context. Handlers read it back explicitly through
// GetUserIDFromGinContext, never from the raw request.
func AuthMiddleware(jwtSvc *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "No token, authorization denied"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Token is not valid"})
			return
		}

		claims, err := jwtSvc.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Token is not valid"})
			return
		}

		c.Set(GinContextKeyUserID, claims.UserID)

		c.Next()
	}
}

func GetUserIDFromGinContext(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(GinContextKeyUserID)
	if !ok {
		return uuid.Nil, false
	}
	userID, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil, false
	}
	return userID, true
}

// ErrorMiddleware drains errors pushed through c.Error and renders the
// uniform JSON shapes: validation failures as {"errors": [...]}, known
// categories as {"msg": ...}, everything else as a generic 500. Internal
// detail is logged, never returned.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := apperror.ToHTTPStatus(err)

		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			log.Error("Unhandled error", err, zap.String("path", c.FullPath()))
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
			return
		}

		if status >= http.StatusInternalServerError {
			log.Error(appErr.Message, appErr.Err,
				zap.String("path", c.FullPath()),
				zap.String("details", appErr.Details))
		}

		switch {
		case len(appErr.Fields) > 0:
			c.JSON(status, gin.H{"errors": appErr.Fields})
		case errors.Is(err, apperror.ErrUpstream):
			c.JSON(status, gin.H{"msg": appErr.Message})
		case status >= http.StatusInternalServerError:
			c.JSON(status, gin.H{"msg": "Server Error"})
		default:
			c.JSON(status, gin.H{"msg": appErr.Message})
		}
	}
}
