package service

import (
	"context"
	"net/url"
	"strings"

	"github.com/sangkips/bizdesk-api/internal/config"
	"github.com/sangkips/bizdesk-api/internal/domain/entity"
	"github.com/sangkips/bizdesk-api/internal/domain/enum"
	"github.com/sangkips/bizdesk-api/internal/domain/gateway"
	"github.com/sangkips/bizdesk-api/internal/domain/repository"
	"github.com/sangkips/bizdesk-api/internal/infrastructure/payment"
	"github.com/sangkips/bizdesk-api/pkg/apperror"
	"github.com/sangkips/bizdesk-api/pkg/identity"
	"go.uber.org/zap"
)

// BillingOptions carries the plan catalogue and redirect URLs
type BillingOptions struct {
	// Plans maps public plan ids to payment-provider price ids.
	Plans           map[string]string
	SuccessURL      string
	CancelURL       string
	PortalReturnURL string
}

// BillingService handles subscriptions through the payment provider
type BillingService struct {
	subs     repository.SubscriptionRepository
	provider gateway.PaymentProvider
	webhooks gateway.WebhookVerifier
	opts     BillingOptions
	clock    Clock
	log      *zap.Logger
}

// NewBillingService creates a new billing service
func NewBillingService(
	subs repository.SubscriptionRepository,
	provider gateway.PaymentProvider,
	webhooks gateway.WebhookVerifier,
	opts BillingOptions,
	clock Clock,
	log *zap.Logger,
) *BillingService {
	return &BillingService{
		subs:     subs,
		provider: provider,
		webhooks: webhooks,
		opts:     opts,
		clock:    clock,
		log:      log,
	}
}

// SessionResult is a created checkout or portal session
type SessionResult struct {
	ID   string
	URL  string
	Mode string
}

// CancelResult is the subscription state after a cancel request
type CancelResult struct {
	Status            enum.SubscriptionStatus
	CancelAtPeriodEnd bool
	Mode              string
}

// WebhookResult tells the provider what happened to a delivery
type WebhookResult struct {
	EventType string
	Ignored   bool
}

// Mode reports whether billing talks to the real provider
func (s *BillingService) Mode() string {
	return s.provider.Mode()
}

// Checkout starts a subscription checkout for planID
func (s *BillingService) Checkout(ctx context.Context, caller *identity.Caller, planID string) (*SessionResult, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	planID = strings.TrimSpace(planID)
	if planID == "" {
		return nil, apperror.NewBadRequestError("planId is required")
	}
	priceID, ok := s.opts.Plans[planID]
	if !ok {
		return nil, apperror.NewBadRequestError("Unknown plan: " + planID)
	}

	sub, err := s.subs.GetByUserID(ctx, caller.ID())
	if err != nil {
		return nil, err
	}
	req := gateway.CheckoutRequest{
		UserID:     caller.ID(),
		Email:      caller.Email(),
		PlanID:     planID,
		PriceID:    priceID,
		SuccessURL: s.opts.SuccessURL,
		CancelURL:  s.opts.CancelURL,
	}
	if sub != nil && sub.StripeCustomerID != nil {
		req.CustomerID = *sub.StripeCustomerID
	}

	session, err := s.provider.CreateCheckoutSession(ctx, req)
	if err != nil {
		return nil, err
	}
	return &SessionResult{ID: session.ID, URL: session.URL, Mode: s.provider.Mode()}, nil
}

// Portal opens the provider's self-service billing portal
func (s *BillingService) Portal(ctx context.Context, caller *identity.Caller, returnURL string) (*SessionResult, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	returnURL = strings.TrimSpace(returnURL)
	if returnURL == "" {
		returnURL = s.opts.PortalReturnURL
	} else if !isHTTPURL(returnURL) {
		return nil, apperror.NewBadRequestError("returnUrl must be an absolute http(s) URL")
	}

	sub, err := s.subs.GetByUserID(ctx, caller.ID())
	if err != nil {
		return nil, err
	}
	var customerID string
	if sub != nil && sub.StripeCustomerID != nil {
		customerID = *sub.StripeCustomerID
	}
	if customerID == "" && s.provider.Mode() != config.ModeStub {
		return nil, apperror.NewBadRequestError("No billing customer for this account")
	}

	session, err := s.provider.CreatePortalSession(ctx, customerID, returnURL)
	if err != nil {
		return nil, err
	}
	return &SessionResult{ID: session.ID, URL: session.URL, Mode: s.provider.Mode()}, nil
}

// Cancel cancels the caller's subscription at the end of the current period
func (s *BillingService) Cancel(ctx context.Context, caller *identity.Caller) (*CancelResult, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	sub, err := s.subs.GetByUserID(ctx, caller.ID())
	if err != nil {
		return nil, err
	}
	if sub == nil || sub.StripeSubscriptionID == nil || sub.Status == enum.SubscriptionStatusCanceled || sub.Status == enum.SubscriptionStatusNone {
		return nil, apperror.NewBadRequestError("No active subscription")
	}

	if !sub.CancelAtPeriodEnd {
		if err := s.provider.CancelAtPeriodEnd(ctx, *sub.StripeSubscriptionID); err != nil {
			return nil, err
		}
		sub.CancelAtPeriodEnd = true
		sub.Status = enum.SubscriptionStatusCanceling
		sub.UpdatedAt = s.clock.now()
		if err := s.subs.Save(ctx, sub); err != nil {
			return nil, err
		}
	}

	return &CancelResult{Status: sub.Status, CancelAtPeriodEnd: sub.CancelAtPeriodEnd, Mode: s.provider.Mode()}, nil
}

// GetSubscription returns the caller's billing state; tenants that never
// subscribed get status none.
func (s *BillingService) GetSubscription(ctx context.Context, caller *identity.Caller) (*entity.Subscription, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	sub, err := s.subs.GetByUserID(ctx, caller.ID())
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return &entity.Subscription{UserID: caller.ID(), Status: enum.SubscriptionStatusNone}, nil
	}
	return sub, nil
}

// HandleWebhook verifies a delivery and applies it. Any verification failure
// is returned before state is touched.
func (s *BillingService) HandleWebhook(ctx context.Context, payload []byte, signature string) (*WebhookResult, error) {
	event, err := s.webhooks.Verify(payload, signature)
	if err != nil {
		return nil, err
	}
	log := s.log.With(zap.String("event_id", event.ID), zap.String("event_type", event.Type))

	switch event.Type {
	case payment.EventCheckoutCompleted,
		payment.EventSubscriptionCreated,
		payment.EventSubscriptionUpdated,
		payment.EventSubscriptionDeleted:
	default:
		log.Debug("ignoring webhook event")
		return &WebhookResult{EventType: event.Type, Ignored: true}, nil
	}

	sub, err := s.findSubscription(ctx, event)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		log.Warn("webhook event does not match any tenant")
		return &WebhookResult{EventType: event.Type, Ignored: true}, nil
	}
	if sub.LastEventID != nil && *sub.LastEventID == event.ID {
		log.Info("duplicate webhook event")
		return &WebhookResult{EventType: event.Type}, nil
	}

	applyBillingEvent(sub, event)
	sub.LastEventID = &event.ID
	sub.UpdatedAt = s.clock.now()
	if err := s.subs.Save(ctx, sub); err != nil {
		return nil, err
	}

	log.Info("subscription updated", zap.String("user_id", sub.UserID), zap.String("status", string(sub.Status)))
	return &WebhookResult{EventType: event.Type}, nil
}

// findSubscription locates the tenant an event belongs to, creating a fresh
// row when the event names a tenant that has none yet.
func (s *BillingService) findSubscription(ctx context.Context, event *gateway.BillingEvent) (*entity.Subscription, error) {
	lookups := []func() (*entity.Subscription, error){
		func() (*entity.Subscription, error) { return s.subs.GetBySubscriptionID(ctx, event.SubscriptionID) },
		func() (*entity.Subscription, error) { return s.subs.GetByUserID(ctx, event.UserID) },
		func() (*entity.Subscription, error) { return s.subs.GetByCustomerID(ctx, event.CustomerID) },
	}
	for _, lookup := range lookups {
		sub, err := lookup()
		if err != nil {
			return nil, err
		}
		if sub != nil {
			return sub, nil
		}
	}
	if event.UserID == "" {
		return nil, nil
	}
	return &entity.Subscription{UserID: event.UserID, Status: enum.SubscriptionStatusNone}, nil
}

func applyBillingEvent(sub *entity.Subscription, event *gateway.BillingEvent) {
	if event.CustomerID != "" {
		sub.StripeCustomerID = &event.CustomerID
	}
	if event.SubscriptionID != "" {
		sub.StripeSubscriptionID = &event.SubscriptionID
	}
	if event.PlanID != "" {
		sub.PlanID = &event.PlanID
	}

	switch event.Type {
	case payment.EventCheckoutCompleted:
		if sub.Status == enum.SubscriptionStatusNone || sub.Status == enum.SubscriptionStatusCanceled {
			sub.Status = enum.SubscriptionStatusActive
		}
		sub.CancelAtPeriodEnd = false
	case payment.EventSubscriptionDeleted:
		sub.Status = enum.SubscriptionStatusCanceled
		sub.CancelAtPeriodEnd = false
		sub.CurrentPeriodEnd = event.CurrentPeriodEnd
	default:
		status := enum.ParseSubscriptionStatus(event.Status)
		if event.CancelAtPeriodEnd && (status == enum.SubscriptionStatusActive || status == enum.SubscriptionStatusTrialing) {
			status = enum.SubscriptionStatusCanceling
		}
		sub.Status = status
		sub.CancelAtPeriodEnd = event.CancelAtPeriodEnd
		sub.CurrentPeriodEnd = event.CurrentPeriodEnd
	}
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
