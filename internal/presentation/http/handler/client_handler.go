package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/bizdesk-api/internal/application/service"
	"github.com/sangkips/bizdesk-api/internal/presentation/http/dto/request"
	"github.com/sangkips/bizdesk-api/internal/presentation/http/dto/response"
	"github.com/sangkips/bizdesk-api/internal/presentation/http/middleware"
)

// ClientHandler handles client ("klant") endpoints
type ClientHandler struct {
	clientService *service.ClientService
}

// NewClientHandler creates a new client handler
func NewClientHandler(clientService *service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// List handles GET /klanten
func (h *ClientHandler) List(c *gin.Context) {
	opts, ok := listOptions(c)
	if !ok {
		return
	}

	clients, err := h.clientService.ListClients(c.Request.Context(), middleware.GetCaller(c), opts)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, "klanten", clients)
}

// Get handles GET /klanten/:id
func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "Klant")
	if !ok {
		return
	}

	client, err := h.clientService.GetClient(c.Request.Context(), middleware.GetCaller(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, client)
}

// Create handles POST /klanten
func (h *ClientHandler) Create(c *gin.Context) {
	var req request.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), middleware.GetCaller(c), &service.CreateClientInput{
		Name:    req.Name,
		Company: req.Company,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Type:    req.Type,
		Status:  req.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, client)
}

// Update handles PUT /klanten/:id
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "Klant")
	if !ok {
		return
	}

	var req request.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	client, err := h.clientService.UpdateClient(c.Request.Context(), middleware.GetCaller(c), &service.UpdateClientInput{
		ID:      id,
		Name:    req.Name,
		Company: req.Company,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Type:    req.Type,
		Status:  req.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, client)
}

// Delete handles DELETE /klanten/:id
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "Klant")
	if !ok {
		return
	}

	if err := h.clientService.DeleteClient(c.Request.Context(), middleware.GetCaller(c), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Klant deleted")
}
