package payment

import (
	"context"
	"net/url"

	"github.com/google/uuid"
	"github.com/sangkips/bizdesk-api/internal/config"
	"github.com/sangkips/bizdesk-api/internal/domain/gateway"
)

// StubProvider answers with synthetic sessions and never calls Stripe
type StubProvider struct{}

// NewStubProvider creates the stub provider
func NewStubProvider() *StubProvider {
	return &StubProvider{}
}

func (p *StubProvider) Mode() string {
	return config.ModeStub
}

func (p *StubProvider) CreateCheckoutSession(_ context.Context, req gateway.CheckoutRequest) (*gateway.Session, error) {
	id := "cs_stub_" + uuid.NewString()
	return &gateway.Session{ID: id, URL: withQuery(req.SuccessURL, "session_id", id)}, nil
}

func (p *StubProvider) CreatePortalSession(_ context.Context, _ string, returnURL string) (*gateway.Session, error) {
	return &gateway.Session{ID: "bps_stub_" + uuid.NewString(), URL: returnURL}, nil
}

func (p *StubProvider) CancelAtPeriodEnd(context.Context, string) error {
	return nil
}

func withQuery(raw, key, value string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	q.Set(key, value)
	u.RawQuery = q.Encode()
	return u.String()
}
