package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/bizdesk-api/internal/presentation/http/dto/response"
	"github.com/sangkips/bizdesk-api/pkg/logger"
	"go.uber.org/zap"
)

const maxErrorReportBytes = 16 << 10

// ErrorReportHandler accepts error reports from the frontend and logs them
type ErrorReportHandler struct{}

func NewErrorReportHandler() *ErrorReportHandler {
	return &ErrorReportHandler{}
}

// Report handles POST /errors. It always answers 202; oversized bodies are
// truncated before logging.
func (h *ErrorReportHandler) Report(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxErrorReportBytes+1))
	truncated := len(body) > maxErrorReportBytes
	if truncated {
		body = body[:maxErrorReportBytes]
	}

	fields := []zap.Field{
		zap.String("user_agent", c.Request.UserAgent()),
		zap.String("client_ip", c.ClientIP()),
		zap.Bool("truncated", truncated),
	}
	if err != nil {
		fields = append(fields, zap.NamedError("read_error", err))
	}
	if !truncated && json.Valid(body) {
		fields = append(fields, zap.Any("report", json.RawMessage(body)))
	} else {
		fields = append(fields, zap.ByteString("report", body))
	}
	logger.FromContext(c.Request.Context()).Warn("client error report", fields...)

	c.JSON(http.StatusAccepted, response.AcceptedResponse{OK: true})
}
