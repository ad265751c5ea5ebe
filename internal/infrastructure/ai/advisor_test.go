package ai

import (
	"context"
	"testing"
	"time"

	"github.com/sangkips/bizdesk-api/internal/domain/entity"
	"github.com/sangkips/bizdesk-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnalysis(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    float64
		wantErr bool
	}{
		{name: "plain json", raw: `{"onderbouwing":"Goede prijs.","winkans":72}`, want: 72},
		{name: "fenced", raw: "```json\n{\"onderbouwing\":\"Goede prijs.\",\"winkans\":40}\n```", want: 40},
		{name: "clamped high", raw: `{"onderbouwing":"Zeker.","winkans":140}`, want: 100},
		{name: "clamped low", raw: `{"onderbouwing":"Kansloos.","winkans":-3}`, want: 0},
		{name: "no rationale", raw: `{"winkans":50}`, wantErr: true},
		{name: "not json", raw: `De kans is groot.`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAnalysis(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.WinProbability)
			assert.NotEmpty(t, got.Rationale)
		})
	}
}

func TestStubAdvisorIsDeterministic(t *testing.T) {
	desc := "Renovatie badkamer"
	q := &entity.Quote{
		Number:      "O2024-123456",
		Title:       "Badkamer",
		Description: &desc,
		Date:        time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Lines: []entity.LineItem{
			{Description: "Tegels", Quantity: 20, UnitPrice: 25},
		},
		Total:  605,
		Status: enum.QuoteStatusSent,
	}

	a := NewStubAdvisor()
	first, err := a.AnalyzeQuote(context.Background(), q)
	require.NoError(t, err)
	second, err := a.AnalyzeQuote(context.Background(), q)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 75.0, first.WinProbability)
	assert.Contains(t, first.Rationale, "verzonden")
}

func TestStubAdvisorClosedQuotes(t *testing.T) {
	a := NewStubAdvisor()

	won, err := a.AnalyzeQuote(context.Background(), &entity.Quote{Status: enum.QuoteStatusAccepted, Total: 50000})
	require.NoError(t, err)
	assert.Equal(t, 100.0, won.WinProbability)

	lost, err := a.AnalyzeQuote(context.Background(), &entity.Quote{Status: enum.QuoteStatusRejected})
	require.NoError(t, err)
	assert.Equal(t, 0.0, lost.WinProbability)
}

func TestBuildQuotePrompt(t *testing.T) {
	q := &entity.Quote{
		Number:     "O2024-000001",
		Title:      "Website",
		ClientName: "Jansen BV",
		Date:       time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		Lines:      []entity.LineItem{{Description: "Ontwerp", Quantity: 1, UnitPrice: 1500}},
		Subtotal:   1500,
		VATRate:    21,
		VATAmount:  315,
		Total:      1815,
	}
	prompt := buildQuotePrompt(q)
	assert.Contains(t, prompt, "O2024-000001")
	assert.Contains(t, prompt, "Jansen BV")
	assert.Contains(t, prompt, "Ontwerp: 1 x EUR 1500.00")
	assert.Contains(t, prompt, "Totaal: EUR 1815.00")
}
