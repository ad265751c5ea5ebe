package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/bizdesk-api/internal/domain/repository"
	"github.com/sangkips/bizdesk-api/internal/presentation/http/dto/request"
	"github.com/sangkips/bizdesk-api/internal/presentation/http/dto/response"
	"github.com/sangkips/bizdesk-api/pkg/apperror"
)

// pathID parses the :id segment. A malformed id cannot name a stored
// document, so it is reported as not found.
func pathID(c *gin.Context, resource string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.NewNotFoundError(resource))
		return uuid.Nil, false
	}
	return id, true
}

// listOptions reads ?orderBy=&direction= for list endpoints
func listOptions(c *gin.Context) (repository.ListOptions, bool) {
	var q request.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.NewBadRequestError("direction must be asc or desc"))
		return repository.ListOptions{}, false
	}
	return q.Options(), true
}
