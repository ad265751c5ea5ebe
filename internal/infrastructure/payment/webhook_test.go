package payment

import (
	"context"
	"testing"
	"time"

	"github.com/sangkips/bizdesk-api/internal/domain/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76/webhook"
)

const testSecret = "whsec_test"

func signedHeader(secret string, at time.Time, payload []byte) string {
	return webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    secret,
		Timestamp: at,
	}).Header
}

func TestWebhookVerifierAcceptsValidSignature(t *testing.T) {
	v := NewWebhookVerifier(testSecret, 5*time.Minute)

	payload := []byte(`{"id":"evt_1","object":"event","type":"customer.subscription.updated","data":{"object":{"id":"sub_1","object":"subscription","customer":"cus_1","status":"active","cancel_at_period_end":true,"current_period_end":1700600000,"metadata":{"userId":"alice","planId":"pro"}}}}`)
	event, err := v.Verify(payload, signedHeader(testSecret, time.Now(), payload))
	require.NoError(t, err)

	assert.Equal(t, "evt_1", event.ID)
	assert.Equal(t, EventSubscriptionUpdated, event.Type)
	assert.Equal(t, "alice", event.UserID)
	assert.Equal(t, "cus_1", event.CustomerID)
	assert.Equal(t, "sub_1", event.SubscriptionID)
	assert.Equal(t, "pro", event.PlanID)
	assert.Equal(t, "active", event.Status)
	assert.True(t, event.CancelAtPeriodEnd)
	require.NotNil(t, event.CurrentPeriodEnd)
	assert.Equal(t, int64(1700600000), event.CurrentPeriodEnd.Unix())
}

func TestWebhookVerifierCheckoutCompleted(t *testing.T) {
	v := NewWebhookVerifier(testSecret, 0)

	payload := []byte(`{"id":"evt_2","object":"event","type":"checkout.session.completed","data":{"object":{"id":"cs_1","object":"checkout.session","customer":"cus_9","subscription":"sub_9","client_reference_id":"bob","metadata":{"planId":"starter"}}}}`)
	event, err := v.Verify(payload, signedHeader(testSecret, time.Now(), payload))
	require.NoError(t, err)
	assert.Equal(t, "bob", event.UserID)
	assert.Equal(t, "cus_9", event.CustomerID)
	assert.Equal(t, "sub_9", event.SubscriptionID)
	assert.Equal(t, "starter", event.PlanID)
}

func TestWebhookVerifierRejects(t *testing.T) {
	now := time.Now()
	v := NewWebhookVerifier(testSecret, 5*time.Minute)
	payload := []byte(`{"id":"evt_1","object":"event","type":"invoice.paid","data":{"object":{}}}`)
	valid := signedHeader(testSecret, now, payload)

	tests := []struct {
		name    string
		payload []byte
		header  string
		want    error
	}{
		{name: "missing header", payload: payload, header: "", want: ErrInvalidSignature},
		{name: "garbage header", payload: payload, header: "nonsense", want: ErrInvalidSignature},
		{name: "wrong secret", payload: payload, header: signedHeader("other", now, payload), want: ErrInvalidSignature},
		{name: "tampered payload", payload: []byte(`{"id":"evt_1","object":"event","type":"invoice.paid","data":{"object":{"x":1}}}`), header: valid, want: ErrInvalidSignature},
		{name: "stale", payload: payload, header: signedHeader(testSecret, now.Add(-time.Hour), payload), want: ErrInvalidSignature},
		{name: "unparsable", payload: []byte(`not json`), header: signedHeader(testSecret, now, []byte(`not json`)), want: ErrInvalidPayload},
		{name: "no event id", payload: []byte(`{"type":"x"}`), header: signedHeader(testSecret, now, []byte(`{"type":"x"}`)), want: ErrInvalidPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := v.Verify(tt.payload, tt.header)
			assert.Nil(t, event)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestWebhookVerifierWithoutSecret(t *testing.T) {
	v := NewWebhookVerifier("", 0)
	payload := []byte(`{"id":"evt_1","type":"x"}`)
	_, err := v.Verify(payload, signedHeader("", time.Now(), payload))
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestStubProviderCheckout(t *testing.T) {
	p := NewStubProvider()
	s, err := p.CreateCheckoutSession(context.Background(), gateway.CheckoutRequest{
		UserID:     "alice",
		PlanID:     "pro",
		PriceID:    "price_pro",
		SuccessURL: "https://app.example/billing?x=1",
	})
	require.NoError(t, err)
	assert.Contains(t, s.ID, "cs_stub_")
	assert.Contains(t, s.URL, "session_id="+s.ID)
	assert.Contains(t, s.URL, "x=1")
}
