package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/bizdesk-api/internal/application/service"
	"github.com/sangkips/bizdesk-api/internal/presentation/http/dto/request"
	"github.com/sangkips/bizdesk-api/internal/presentation/http/dto/response"
	"github.com/sangkips/bizdesk-api/internal/presentation/http/middleware"
)

// AIHandler handles the quote assistant endpoints
type AIHandler struct {
	aiService *service.AIService
}

// NewAIHandler creates a new AI handler
func NewAIHandler(aiService *service.AIService) *AIHandler {
	return &AIHandler{aiService: aiService}
}

// AnalyzeQuote handles POST /ai/offerte-analyse
func (h *AIHandler) AnalyzeQuote(c *gin.Context) {
	var req request.AnalyzeQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.aiService.AnalyzeQuote(c.Request.Context(), middleware.GetCaller(c), req.QuoteID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, response.NewAnalysisResponse(result))
}

// Feedback handles POST /ai/feedback
func (h *AIHandler) Feedback(c *gin.Context) {
	var req request.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	feedback, err := h.aiService.SubmitFeedback(c.Request.Context(), middleware.GetCaller(c), &service.FeedbackInput{
		QuoteID: req.QuoteID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, feedback)
}
