package request

import "github.com/google/uuid"

// UploadFileRequest carries a base64 encoded file. Data URLs are accepted.
type UploadFileRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	ContentType string `json:"contentType" binding:"required,max=255"`
	Data        string `json:"data" binding:"required"`
}

type CheckoutRequest struct {
	PlanID string `json:"planId"`
}

type PortalRequest struct {
	ReturnURL string `json:"returnUrl"`
}

// AnalyzeQuoteRequest asks for an AI assessment of one quote
type AnalyzeQuoteRequest struct {
	QuoteID uuid.UUID `json:"offerteId" binding:"required"`
}

// FeedbackRequest rates an AI assessment
type FeedbackRequest struct {
	QuoteID uuid.UUID `json:"offerteId" binding:"required"`
	Rating  int       `json:"beoordeling" binding:"required,min=1,max=5"`
	Comment *string   `json:"opmerking" binding:"omitempty,max=2000"`
}
