package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/bizdesk-api/pkg/apperror"
	"github.com/sangkips/bizdesk-api/pkg/logger"
	"go.uber.org/zap"
)

// MessageResponse is returned by endpoints that have nothing else to say
type MessageResponse struct {
	Message string `json:"message"`
}

// OK sends the payload as-is with 200
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created sends the payload as-is with 201
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// List wraps items under the collection name, e.g. {"klanten": [...]}
func List[T any](c *gin.Context, collection string, items []T) {
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, gin.H{collection: items})
}

// Message sends {"message": msg} with 200
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Message: message})
}

// Error sends a flat {"error": msg} body. Errors that are not AppErrors are
// logged and reported as a generic 500.
func Error(c *gin.Context, err error) {
	appErr := apperror.GetAppError(err)
	if appErr.Code >= http.StatusInternalServerError {
		logger.FromContext(c.Request.Context()).Error("request failed",
			zap.Error(err),
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
		)
	}
	c.JSON(appErr.Code, appErr)
}

// ErrorWithCode sends an error response with a specific status code
func ErrorWithCode(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, apperror.NewAppError(statusCode, message))
}

// AbortWithError writes the error and stops the handler chain
func AbortWithError(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}

// BindError reports a request body that failed to decode or validate
func BindError(c *gin.Context, err error) {
	ErrorWithCode(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
}
