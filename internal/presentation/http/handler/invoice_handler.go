package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/bizdesk-api/internal/application/service"
	"github.com/sangkips/bizdesk-api/internal/presentation/http/dto/request"
	"github.com/sangkips/bizdesk-api/internal/presentation/http/dto/response"
	"github.com/sangkips/bizdesk-api/internal/presentation/http/middleware"
)

// InvoiceHandler handles invoice ("factuur") endpoints
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// List handles GET /facturen
func (h *InvoiceHandler) List(c *gin.Context) {
	opts, ok := listOptions(c)
	if !ok {
		return
	}

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context(), middleware.GetCaller(c), opts)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, "facturen", invoices)
}

// Get handles GET /facturen/:id
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "Factuur")
	if !ok {
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), middleware.GetCaller(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, invoice)
}

// Create handles POST /facturen
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), middleware.GetCaller(c), &service.CreateInvoiceInput{
		Number:     req.Number,
		ClientID:   req.ClientID,
		ClientName: req.ClientName,
		QuoteID:    req.QuoteID,
		IssueDate:  req.IssueDate.Ptr(),
		DueDate:    req.DueDate.Ptr(),
		Lines:      request.LineItems(req.Lines),
		VATRate:    req.VATRate,
		Status:     req.Status,
		Notes:      req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, invoice)
}

// Update handles PUT /facturen/:id
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "Factuur")
	if !ok {
		return
	}

	var req request.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	invoice, err := h.invoiceService.UpdateInvoice(c.Request.Context(), middleware.GetCaller(c), &service.UpdateInvoiceInput{
		ID:         id,
		Number:     req.Number,
		ClientID:   req.ClientID,
		ClientName: req.ClientName,
		QuoteID:    req.QuoteID,
		IssueDate:  req.IssueDate.Ptr(),
		DueDate:    req.DueDate.Ptr(),
		Lines:      request.LineItems(req.Lines),
		VATRate:    req.VATRate,
		Status:     req.Status,
		Notes:      req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, invoice)
}

// Delete handles DELETE /facturen/:id
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "Factuur")
	if !ok {
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), middleware.GetCaller(c), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Factuur deleted")
}
