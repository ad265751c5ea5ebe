package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/bizdesk-api/internal/application/service"
	"github.com/sangkips/bizdesk-api/internal/domain/entity"
	"github.com/sangkips/bizdesk-api/internal/domain/enum"
)

// FileResponse is the public view of an uploaded file
type FileResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewFileResponse(f *entity.File) FileResponse {
	return FileResponse{
		ID:          f.ID,
		Name:        f.Name,
		ContentType: f.ContentType,
		Size:        f.Size,
		URL:         f.URL,
		CreatedAt:   f.CreatedAt,
	}
}

func NewFileResponses(files []entity.File) []FileResponse {
	out := make([]FileResponse, 0, len(files))
	for i := range files {
		out = append(out, NewFileResponse(&files[i]))
	}
	return out
}

// SessionResponse is a checkout or portal session the browser redirects to
type SessionResponse struct {
	ID   string `json:"id"`
	URL  string `json:"url"`
	Mode string `json:"mode"`
}

func NewSessionResponse(r *service.SessionResult) SessionResponse {
	return SessionResponse{ID: r.ID, URL: r.URL, Mode: r.Mode}
}

type CancelResponse struct {
	Status            enum.SubscriptionStatus `json:"status"`
	CancelAtPeriodEnd bool                    `json:"cancelAtPeriodEnd"`
	Mode              string                  `json:"mode"`
}

func NewCancelResponse(r *service.CancelResult) CancelResponse {
	return CancelResponse{Status: r.Status, CancelAtPeriodEnd: r.CancelAtPeriodEnd, Mode: r.Mode}
}

// WebhookResponse acknowledges a verified webhook delivery
type WebhookResponse struct {
	Received bool   `json:"received"`
	Type     string `json:"type"`
	Ignored  bool   `json:"ignored,omitempty"`
}

func NewWebhookResponse(r *service.WebhookResult) WebhookResponse {
	return WebhookResponse{Received: true, Type: r.EventType, Ignored: r.Ignored}
}

type AnalysisResponse struct {
	QuoteID        uuid.UUID `json:"offerteId"`
	Rationale      string    `json:"aiOnderbouwing"`
	WinProbability float64   `json:"aiWinkans"`
	Mode           string    `json:"mode"`
}

func NewAnalysisResponse(r *service.AnalysisResult) AnalysisResponse {
	return AnalysisResponse{
		QuoteID:        r.QuoteID,
		Rationale:      r.Rationale,
		WinProbability: r.WinProbability,
		Mode:           r.Mode,
	}
}

// AcceptedResponse acknowledges fire-and-forget submissions
type AcceptedResponse struct {
	OK bool `json:"ok"`
}
