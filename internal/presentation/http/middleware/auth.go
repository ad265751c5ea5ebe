package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/bizdesk-api/internal/presentation/http/dto/response"
	"github.com/sangkips/bizdesk-api/pkg/identity"
	"github.com/sangkips/bizdesk-api/pkg/logger"
)

const callerKey = "caller"

// AuthMiddleware verifies the bearer token and stores the caller in the
// context. Requests without a valid token never reach a handler.
func AuthMiddleware(verifier identity.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, err := identity.Authenticate(c.Request.Context(), verifier, c.GetHeader("Authorization"))
		if err != nil {
			response.AbortWithError(c, err)
			return
		}

		c.Set(callerKey, caller)
		c.Request = c.Request.WithContext(logger.WithCallerID(c.Request.Context(), caller.ID()))

		c.Next()
	}
}

// GetCaller returns the verified caller, or nil on unauthenticated routes
func GetCaller(c *gin.Context) *identity.Caller {
	value, exists := c.Get(callerKey)
	if !exists {
		return nil
	}
	caller, _ := value.(*identity.Caller)
	return caller
}
