package payment

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/sangkips/bizdesk-api/internal/domain/gateway"
	"github.com/sangkips/bizdesk-api/pkg/apperror"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
)

const (
	metadataUserID = "userId"
	metadataPlanID = "planId"
)

// Webhook event types billing reacts to
const (
	EventCheckoutCompleted   = "checkout.session.completed"
	EventSubscriptionCreated = "customer.subscription.created"
	EventSubscriptionUpdated = "customer.subscription.updated"
	EventSubscriptionDeleted = "customer.subscription.deleted"
)

var (
	ErrInvalidSignature = apperror.NewBadRequestError("Invalid webhook signature")
	ErrInvalidPayload   = apperror.NewBadRequestError("Invalid webhook payload")
)

// WebhookVerifier checks the Stripe-Signature header of a delivery
type WebhookVerifier struct {
	secret    string
	tolerance time.Duration
}

// NewWebhookVerifier creates a verifier. A zero tolerance falls back to
// webhook.DefaultTolerance.
func NewWebhookVerifier(secret string, tolerance time.Duration) *WebhookVerifier {
	return &WebhookVerifier{secret: secret, tolerance: tolerance}
}

// Verify authenticates payload and decodes it into a billing event.
func (v *WebhookVerifier) Verify(payload []byte, signatureHeader string) (*gateway.BillingEvent, error) {
	if v.secret == "" || strings.TrimSpace(signatureHeader) == "" {
		return nil, ErrInvalidSignature
	}

	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, v.secret, webhook.ConstructEventOptions{
		Tolerance:                v.tolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		if isSignatureError(err) {
			return nil, ErrInvalidSignature
		}
		return nil, ErrInvalidPayload
	}
	return toBillingEvent(&event)
}

func isSignatureError(err error) bool {
	return errors.Is(err, webhook.ErrNotSigned) ||
		errors.Is(err, webhook.ErrInvalidHeader) ||
		errors.Is(err, webhook.ErrNoValidSignature) ||
		errors.Is(err, webhook.ErrTooOld)
}

func toBillingEvent(event *stripe.Event) (*gateway.BillingEvent, error) {
	if strings.TrimSpace(event.ID) == "" || strings.TrimSpace(string(event.Type)) == "" {
		return nil, ErrInvalidPayload
	}

	out := &gateway.BillingEvent{ID: event.ID, Type: string(event.Type)}
	switch out.Type {
	case EventCheckoutCompleted:
		var session stripe.CheckoutSession
		if err := decodeObject(event, &session); err != nil {
			return nil, err
		}
		out.UserID = session.ClientReferenceID
		if out.UserID == "" {
			out.UserID = session.Metadata[metadataUserID]
		}
		if session.Customer != nil {
			out.CustomerID = session.Customer.ID
		}
		if session.Subscription != nil {
			out.SubscriptionID = session.Subscription.ID
		}
		out.PlanID = session.Metadata[metadataPlanID]
	case EventSubscriptionCreated, EventSubscriptionUpdated, EventSubscriptionDeleted:
		var sub stripe.Subscription
		if err := decodeObject(event, &sub); err != nil {
			return nil, err
		}
		out.UserID = sub.Metadata[metadataUserID]
		if sub.Customer != nil {
			out.CustomerID = sub.Customer.ID
		}
		out.SubscriptionID = sub.ID
		out.PlanID = sub.Metadata[metadataPlanID]
		out.Status = string(sub.Status)
		out.CancelAtPeriodEnd = sub.CancelAtPeriodEnd
		if sub.CurrentPeriodEnd > 0 {
			end := time.Unix(sub.CurrentPeriodEnd, 0).UTC()
			out.CurrentPeriodEnd = &end
		}
	}
	return out, nil
}

func decodeObject(event *stripe.Event, v any) error {
	if event.Data == nil || len(event.Data.Raw) == 0 {
		return ErrInvalidPayload
	}
	if err := json.Unmarshal(event.Data.Raw, v); err != nil {
		return ErrInvalidPayload
	}
	return nil
}
