package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/bizdesk-api/internal/application/service"
	"github.com/sangkips/bizdesk-api/internal/presentation/http/dto/request"
	"github.com/sangkips/bizdesk-api/internal/presentation/http/dto/response"
	"github.com/sangkips/bizdesk-api/internal/presentation/http/middleware"
)

// QuoteHandler handles quote ("offerte") endpoints
type QuoteHandler struct {
	quoteService *service.QuoteService
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(quoteService *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

// List handles GET /offertes
func (h *QuoteHandler) List(c *gin.Context) {
	opts, ok := listOptions(c)
	if !ok {
		return
	}

	quotes, err := h.quoteService.ListQuotes(c.Request.Context(), middleware.GetCaller(c), opts)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, "offertes", quotes)
}

// Get handles GET /offertes/:id
func (h *QuoteHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "Offerte")
	if !ok {
		return
	}

	quote, err := h.quoteService.GetQuote(c.Request.Context(), middleware.GetCaller(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, quote)
}

// Create handles POST /offertes
func (h *QuoteHandler) Create(c *gin.Context) {
	var req request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	quote, err := h.quoteService.CreateQuote(c.Request.Context(), middleware.GetCaller(c), &service.CreateQuoteInput{
		Number:      req.Number,
		ClientID:    req.ClientID,
		ClientName:  req.ClientName,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date.Ptr(),
		ValidUntil:  req.ValidUntil.Ptr(),
		Lines:       request.LineItems(req.Lines),
		VATRate:     req.VATRate,
		Status:      req.Status,
		Notes:       req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, quote)
}

// Update handles PUT /offertes/:id
func (h *QuoteHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "Offerte")
	if !ok {
		return
	}

	var req request.UpdateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	quote, err := h.quoteService.UpdateQuote(c.Request.Context(), middleware.GetCaller(c), &service.UpdateQuoteInput{
		ID:           id,
		Number:       req.Number,
		ClientID:     req.ClientID,
		ClientName:   req.ClientName,
		Title:        req.Title,
		Description:  req.Description,
		Date:         req.Date.Ptr(),
		ValidUntil:   req.ValidUntil.Ptr(),
		Lines:        request.LineItems(req.Lines),
		VATRate:      req.VATRate,
		Status:       req.Status,
		StatusReason: req.StatusReason,
		Notes:        req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, quote)
}

// ChangeStatus handles POST /offertes/:id/status
func (h *QuoteHandler) ChangeStatus(c *gin.Context) {
	id, ok := pathID(c, "Offerte")
	if !ok {
		return
	}

	var req request.QuoteStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	quote, err := h.quoteService.ChangeQuoteStatus(c.Request.Context(), middleware.GetCaller(c), id, req.Status, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, quote)
}

// Delete handles DELETE /offertes/:id
func (h *QuoteHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "Offerte")
	if !ok {
		return
	}

	if err := h.quoteService.DeleteQuote(c.Request.Context(), middleware.GetCaller(c), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Offerte deleted")
}
