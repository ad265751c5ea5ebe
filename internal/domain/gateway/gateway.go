// Package gateway declares the external services the application calls out
// to. Each has a live implementation and a stub selected once at startup.
package gateway

import (
	"context"
	"time"

	"github.com/sangkips/bizdesk-api/internal/domain/entity"
)

// Session is a hosted page at the payment provider the user is sent to
type Session struct {
	ID  string
	URL string
}

// CheckoutRequest describes a subscription checkout for one tenant
type CheckoutRequest struct {
	UserID     string
	Email      string
	CustomerID string
	PlanID     string
	PriceID    string
	SuccessURL string
	CancelURL  string
}

// PaymentProvider creates checkout and portal sessions and changes
// subscriptions at the payment provider.
type PaymentProvider interface {
	Mode() string
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*Session, error)
	CreatePortalSession(ctx context.Context, customerID, returnURL string) (*Session, error)
	CancelAtPeriodEnd(ctx context.Context, subscriptionID string) error
}

// BillingEvent is a verified webhook event reduced to what billing needs
type BillingEvent struct {
	ID                string
	Type              string
	UserID            string
	CustomerID        string
	SubscriptionID    string
	PlanID            string
	Status            string
	CancelAtPeriodEnd bool
	CurrentPeriodEnd  *time.Time
}

// WebhookVerifier authenticates and decodes a raw webhook delivery
type WebhookVerifier interface {
	Verify(payload []byte, signatureHeader string) (*BillingEvent, error)
}

// ObjectStore keeps uploaded bytes under a key
type ObjectStore interface {
	Mode() string
	// Put stores data and returns the public URL of the object.
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// QuoteAnalysis is the advisor's view on a quote's chance of being accepted
type QuoteAnalysis struct {
	Rationale      string
	WinProbability float64
}

// QuoteAdvisor asks a generative model about a quote
type QuoteAdvisor interface {
	Mode() string
	AnalyzeQuote(ctx context.Context, quote *entity.Quote) (*QuoteAnalysis, error)
}
