package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/bizdesk-api/internal/application/service"
	"github.com/sangkips/bizdesk-api/internal/presentation/http/dto/request"
	"github.com/sangkips/bizdesk-api/internal/presentation/http/dto/response"
	"github.com/sangkips/bizdesk-api/internal/presentation/http/middleware"
)

// FileHandler handles file upload endpoints
type FileHandler struct {
	fileService *service.FileService
}

// NewFileHandler creates a new file handler
func NewFileHandler(fileService *service.FileService) *FileHandler {
	return &FileHandler{fileService: fileService}
}

// Upload handles POST /files/upload
func (h *FileHandler) Upload(c *gin.Context) {
	var req request.UploadFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	file, err := h.fileService.Upload(c.Request.Context(), middleware.GetCaller(c), &service.UploadFileInput{
		Name:        req.Name,
		ContentType: req.ContentType,
		Data:        req.Data,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, response.NewFileResponse(file))
}

// List handles GET /files
func (h *FileHandler) List(c *gin.Context) {
	opts, ok := listOptions(c)
	if !ok {
		return
	}

	files, err := h.fileService.ListFiles(c.Request.Context(), middleware.GetCaller(c), opts)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, "files", response.NewFileResponses(files))
}

// Get handles GET /files/:id
func (h *FileHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "File")
	if !ok {
		return
	}

	file, err := h.fileService.GetFile(c.Request.Context(), middleware.GetCaller(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, response.NewFileResponse(file))
}

// Delete handles DELETE /files/:id
func (h *FileHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "File")
	if !ok {
		return
	}

	if err := h.fileService.DeleteFile(c.Request.Context(), middleware.GetCaller(c), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "File deleted")
}
