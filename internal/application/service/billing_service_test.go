package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sangkips/bizdesk-api/internal/config"
	"github.com/sangkips/bizdesk-api/internal/domain/enum"
	"github.com/sangkips/bizdesk-api/internal/domain/gateway"
	"github.com/sangkips/bizdesk-api/internal/infrastructure/payment"
	infraRepo "github.com/sangkips/bizdesk-api/internal/infrastructure/repository"
	"github.com/sangkips/bizdesk-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap/zaptest"
)

const webhookSecret = "whsec_service_test"

type fakeProvider struct {
	mode      string
	checkouts []gateway.CheckoutRequest
	canceled  []string
	err       error
}

func (p *fakeProvider) Mode() string {
	return p.mode
}

func (p *fakeProvider) CreateCheckoutSession(_ context.Context, req gateway.CheckoutRequest) (*gateway.Session, error) {
	if p.err != nil {
		return nil, p.err
	}
	p.checkouts = append(p.checkouts, req)
	return &gateway.Session{ID: "cs_test_1", URL: "https://checkout.example/cs_test_1"}, nil
}

func (p *fakeProvider) CreatePortalSession(_ context.Context, customerID, returnURL string) (*gateway.Session, error) {
	return &gateway.Session{ID: "bps_" + customerID, URL: returnURL}, nil
}

func (p *fakeProvider) CancelAtPeriodEnd(_ context.Context, subscriptionID string) error {
	p.canceled = append(p.canceled, subscriptionID)
	return p.err
}

type billingFixture struct {
	svc      *BillingService
	provider *fakeProvider
	clock    *testClock
}

func newBillingFixture(t *testing.T, mode string) *billingFixture {
	clock := newTestClock()
	provider := &fakeProvider{mode: mode}
	svc := NewBillingService(
		infraRepo.NewSubscriptionRepository(newTestDB(t)),
		provider,
		payment.NewWebhookVerifier(webhookSecret, 5*time.Minute),
		BillingOptions{
			Plans:           map[string]string{"pro": "price_pro"},
			SuccessURL:      "https://app.example/billing/success",
			CancelURL:       "https://app.example/billing",
			PortalReturnURL: "https://app.example/billing",
		},
		clock.Now,
		zaptest.NewLogger(t),
	)
	return &billingFixture{svc: svc, provider: provider, clock: clock}
}

// signedHeader signs payload at the wall clock; Stripe checks freshness
// against time.Now, not the fixture clock.
func signedHeader(secret string, payload []byte) string {
	return webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload: payload,
		Secret:  secret,
	}).Header
}

func (f *billingFixture) deliver(t *testing.T, payload string) (*WebhookResult, error) {
	t.Helper()
	header := signedHeader(webhookSecret, []byte(payload))
	return f.svc.HandleWebhook(context.Background(), []byte(payload), header)
}

func TestCheckoutValidatesPlan(t *testing.T) {
	f := newBillingFixture(t, config.ModeLive)
	alice := callerFor(t, "alice")

	_, err := f.svc.Checkout(context.Background(), alice, "")
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
	_, err = f.svc.Checkout(context.Background(), alice, "enterprise")
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
	assert.Empty(t, f.provider.checkouts)

	session, err := f.svc.Checkout(context.Background(), alice, "pro")
	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", session.ID)
	assert.Equal(t, config.ModeLive, session.Mode)
	require.Len(t, f.provider.checkouts, 1)
	assert.Equal(t, "price_pro", f.provider.checkouts[0].PriceID)
	assert.Equal(t, "alice", f.provider.checkouts[0].UserID)
	assert.Equal(t, "alice@example.com", f.provider.checkouts[0].Email)
}

func TestCheckoutProviderFailure(t *testing.T) {
	f := newBillingFixture(t, config.ModeLive)
	f.provider.err = errors.New("stripe down")

	_, err := f.svc.Checkout(context.Background(), callerFor(t, "alice"), "pro")
	require.Error(t, err)
	assert.Equal(t, 500, apperror.GetAppError(err).Code)
}

func TestWebhookLifecycle(t *testing.T) {
	f := newBillingFixture(t, config.ModeLive)
	alice := callerFor(t, "alice")
	ctx := context.Background()

	_, err := f.deliver(t, `{"id":"evt_1","type":"checkout.session.completed","data":{"object":{"id":"cs_1","customer":"cus_1","subscription":"sub_1","client_reference_id":"alice","metadata":{"planId":"pro"}}}}`)
	require.NoError(t, err)

	sub, err := f.svc.GetSubscription(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, enum.SubscriptionStatusActive, sub.Status)
	require.NotNil(t, sub.StripeCustomerID)
	assert.Equal(t, "cus_1", *sub.StripeCustomerID)
	require.NotNil(t, sub.PlanID)
	assert.Equal(t, "pro", *sub.PlanID)

	portal, err := f.svc.Portal(ctx, alice, "")
	require.NoError(t, err)
	assert.Equal(t, "bps_cus_1", portal.ID)

	canceled, err := f.svc.Cancel(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, enum.SubscriptionStatusCanceling, canceled.Status)
	assert.True(t, canceled.CancelAtPeriodEnd)
	assert.Equal(t, []string{"sub_1"}, f.provider.canceled)

	_, err = f.deliver(t, `{"id":"evt_2","type":"customer.subscription.deleted","data":{"object":{"id":"sub_1","customer":"cus_1","status":"canceled"}}}`)
	require.NoError(t, err)

	sub, err = f.svc.GetSubscription(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, enum.SubscriptionStatusCanceled, sub.Status)

	_, err = f.svc.Cancel(ctx, alice)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestWebhookTamperedSignatureChangesNothing(t *testing.T) {
	f := newBillingFixture(t, config.ModeLive)
	alice := callerFor(t, "alice")
	ctx := context.Background()

	payload := `{"id":"evt_1","type":"customer.subscription.updated","data":{"object":{"id":"sub_1","customer":"cus_1","status":"active","metadata":{"userId":"alice"}}}}`
	header := signedHeader("whsec_attacker", []byte(payload))

	_, err := f.svc.HandleWebhook(ctx, []byte(payload), header)
	assert.ErrorIs(t, err, payment.ErrInvalidSignature)

	_, err = f.svc.HandleWebhook(ctx, []byte(payload), "")
	assert.ErrorIs(t, err, payment.ErrInvalidSignature)

	sub, err := f.svc.GetSubscription(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, enum.SubscriptionStatusNone, sub.Status)
	assert.Nil(t, sub.StripeSubscriptionID)
}

func TestWebhookIgnoresUnknownEventsAndTenants(t *testing.T) {
	f := newBillingFixture(t, config.ModeLive)

	res, err := f.deliver(t, `{"id":"evt_1","type":"invoice.paid","data":{"object":{}}}`)
	require.NoError(t, err)
	assert.True(t, res.Ignored)

	res, err = f.deliver(t, `{"id":"evt_2","type":"customer.subscription.updated","data":{"object":{"id":"sub_x","customer":"cus_x","status":"active"}}}`)
	require.NoError(t, err)
	assert.True(t, res.Ignored)
}

func TestWebhookSubscriptionUpdateCancelAtPeriodEnd(t *testing.T) {
	f := newBillingFixture(t, config.ModeLive)
	alice := callerFor(t, "alice")

	_, err := f.deliver(t, `{"id":"evt_1","type":"customer.subscription.created","data":{"object":{"id":"sub_1","customer":"cus_1","status":"trialing","current_period_end":1718900000,"metadata":{"userId":"alice","planId":"pro"}}}}`)
	require.NoError(t, err)
	_, err = f.deliver(t, `{"id":"evt_2","type":"customer.subscription.updated","data":{"object":{"id":"sub_1","customer":"cus_1","status":"active","cancel_at_period_end":true,"current_period_end":1718900000}}}`)
	require.NoError(t, err)

	sub, err := f.svc.GetSubscription(context.Background(), alice)
	require.NoError(t, err)
	assert.Equal(t, enum.SubscriptionStatusCanceling, sub.Status)
	assert.True(t, sub.CancelAtPeriodEnd)
	require.NotNil(t, sub.CurrentPeriodEnd)
	assert.Equal(t, int64(1718900000), sub.CurrentPeriodEnd.Unix())
}

func TestPortalRequiresCustomerInLiveMode(t *testing.T) {
	live := newBillingFixture(t, config.ModeLive)
	_, err := live.svc.Portal(context.Background(), callerFor(t, "alice"), "")
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	_, err = live.svc.Portal(context.Background(), callerFor(t, "alice"), "javascript:alert(1)")
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	stub := newBillingFixture(t, config.ModeStub)
	session, err := stub.svc.Portal(context.Background(), callerFor(t, "alice"), "https://app.example/back")
	require.NoError(t, err)
	assert.Equal(t, "https://app.example/back", session.URL)
	assert.Equal(t, config.ModeStub, session.Mode)
}
