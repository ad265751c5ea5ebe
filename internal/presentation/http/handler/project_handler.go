package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/bizdesk-api/internal/application/service"
	"github.com/sangkips/bizdesk-api/internal/presentation/http/dto/request"
	"github.com/sangkips/bizdesk-api/internal/presentation/http/dto/response"
	"github.com/sangkips/bizdesk-api/internal/presentation/http/middleware"
)

type ProjectHandler struct {
	projectService *service.ProjectService
}

func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) List(c *gin.Context) {
	opts, ok := listOptions(c)
	if !ok {
		return
	}

	projects, err := h.projectService.ListProjects(c.Request.Context(), middleware.GetCaller(c), opts)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, "projecten", projects)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "Project")
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(c.Request.Context(), middleware.GetCaller(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, project)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req request.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), middleware.GetCaller(c), &service.CreateProjectInput{
		Name:        req.Name,
		ClientID:    req.ClientID,
		Description: req.Description,
		Status:      req.Status,
		StartDate:   req.StartDate.Ptr(),
		EndDate:     req.EndDate.Ptr(),
		Budget:      req.Budget,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, project)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "Project")
	if !ok {
		return
	}

	var req request.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), middleware.GetCaller(c), &service.UpdateProjectInput{
		ID:          id,
		Name:        req.Name,
		ClientID:    req.ClientID,
		Description: req.Description,
		Status:      req.Status,
		StartDate:   req.StartDate.Ptr(),
		EndDate:     req.EndDate.Ptr(),
		Budget:      req.Budget,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, project)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "Project")
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), middleware.GetCaller(c), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Project deleted")
}
