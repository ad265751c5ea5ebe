package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/sangkips/bizdesk-api/internal/config"
	"github.com/sangkips/bizdesk-api/internal/domain/entity"
	"github.com/sangkips/bizdesk-api/internal/domain/enum"
	"github.com/sangkips/bizdesk-api/internal/domain/gateway"
)

// StubAdvisor scores quotes with a fixed heuristic and never calls a model.
// The same quote always gets the same answer.
type StubAdvisor struct{}

// NewStubAdvisor creates the stub advisor
func NewStubAdvisor() *StubAdvisor {
	return &StubAdvisor{}
}

func (a *StubAdvisor) Mode() string {
	return config.ModeStub
}

func (a *StubAdvisor) AnalyzeQuote(_ context.Context, q *entity.Quote) (*gateway.QuoteAnalysis, error) {
	score := 50.0
	var reasons []string

	switch {
	case q.Total >= 10000:
		score -= 15
		reasons = append(reasons, "het totaalbedrag is hoog")
	case q.Total > 0 && q.Total < 1000:
		score += 10
		reasons = append(reasons, "het totaalbedrag is laag")
	}
	if q.Description != nil && strings.TrimSpace(*q.Description) != "" {
		score += 5
		reasons = append(reasons, "de offerte heeft een omschrijving")
	}
	if len(q.Lines) >= 3 {
		score += 5
		reasons = append(reasons, "de regels zijn gespecificeerd")
	}
	switch q.Status {
	case enum.QuoteStatusSent:
		score += 10
		reasons = append(reasons, "de offerte is verzonden")
	case enum.QuoteStatusAccepted:
		score = 100
	case enum.QuoteStatusRejected, enum.QuoteStatusExpired:
		score = 0
	}

	score = clampProbability(score)
	rationale := "Geen bijzonderheden gevonden."
	if len(reasons) > 0 {
		rationale = "Inschatting op basis van: " + strings.Join(reasons, "; ") + "."
	}
	return &gateway.QuoteAnalysis{
		Rationale:      fmt.Sprintf("%s Geschatte winkans %.0f%%.", rationale, score),
		WinProbability: score,
	}, nil
}
