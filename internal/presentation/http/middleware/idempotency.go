package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/bizdesk-api/internal/domain/entity"
	"github.com/sangkips/bizdesk-api/internal/domain/repository"
	"github.com/sangkips/bizdesk-api/internal/presentation/http/dto/response"
	"github.com/sangkips/bizdesk-api/pkg/apperror"
	"github.com/sangkips/bizdesk-api/pkg/logger"
	"go.uber.org/zap"
)

const (
	// IdempotencyKeyHeader is the HTTP header for idempotency keys
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyKeyTTL is how long keys are valid
	IdempotencyKeyTTL = 24 * time.Hour

	idempotencyReplayedHeader = "X-Idempotency-Replayed"
	maxIdempotencyKeyLength   = 255
)

// IdempotencyConfig holds configuration for the idempotency middleware
type IdempotencyConfig struct {
	Repo repository.IdempotencyRepository
	Now  func() time.Time
}

// responseWriter wraps gin.ResponseWriter to capture the response body
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// ErrIdempotencyKeyReused is returned when a key is sent to a different route
// than the one it was first used on.
var ErrIdempotencyKeyReused = apperror.NewAppError(http.StatusUnprocessableEntity, "Idempotency-Key already used for another endpoint")

// Idempotency replays the first successful response to a POST carrying the
// same Idempotency-Key for the same caller and endpoint. It must run after
// AuthMiddleware.
func Idempotency(config IdempotencyConfig) gin.HandlerFunc {
	now := config.Now
	if now == nil {
		now = time.Now
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		caller := GetCaller(c)
		if key == "" || len(key) > maxIdempotencyKeyLength || caller == nil {
			c.Next()
			return
		}

		endpoint := c.Request.Method + " " + c.FullPath()
		ctx := c.Request.Context()
		existing, err := config.Repo.GetByKey(ctx, key, caller.ID())
		if err != nil {
			logger.FromContext(ctx).Warn("idempotency lookup failed", zap.Error(err))
			c.Next()
			return
		}

		if existing != nil && now().Before(existing.ExpiresAt) {
			if existing.Endpoint != endpoint {
				response.AbortWithError(c, ErrIdempotencyKeyReused)
				return
			}
			c.Header(idempotencyReplayedHeader, "true")
			c.Data(existing.ResponseCode, "application/json; charset=utf-8", []byte(existing.ResponseBody))
			c.Abort()
			return
		}

		blw := &responseWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = blw

		c.Next()

		// Failures are not stored so the client can retry them.
		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			return
		}
		ikey := &entity.IdempotencyKey{
			Key:          key,
			UserID:       caller.ID(),
			Endpoint:     endpoint,
			ResponseCode: status,
			ResponseBody: blw.body.String(),
			ExpiresAt:    now().Add(IdempotencyKeyTTL),
		}
		if err := config.Repo.Create(ctx, ikey); err != nil {
			logger.FromContext(ctx).Warn("idempotency store failed", zap.Error(err))
		}
	}
}
