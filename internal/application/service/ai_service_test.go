package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sangkips/bizdesk-api/internal/config"
	"github.com/sangkips/bizdesk-api/internal/domain/entity"
	"github.com/sangkips/bizdesk-api/internal/infrastructure/ai"
	infraRepo "github.com/sangkips/bizdesk-api/internal/infrastructure/repository"
	"github.com/sangkips/bizdesk-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAIFixture(t *testing.T) (*AIService, *QuoteService) {
	clock := newTestClock()
	db := newTestDB(t)
	quotes := quoteStore(db, clock)
	feedback := infraRepo.NewTenantStore[entity.AIFeedback](db, infraRepo.CollectionConfig{Resource: "Feedback"}, clock.Now)
	return NewAIService(quotes, feedback, ai.NewStubAdvisor()), NewQuoteService(quotes, clock.Now)
}

func TestAnalyzeQuoteStoresResult(t *testing.T) {
	svc, quotes := newAIFixture(t)
	alice := callerFor(t, "alice")
	ctx := context.Background()

	quote, err := quotes.CreateQuote(ctx, alice, &CreateQuoteInput{
		Title: "Onderhoud",
		Lines: []entity.LineItem{{Description: "Uren", Quantity: 5, UnitPrice: 60}},
	})
	require.NoError(t, err)

	result, err := svc.AnalyzeQuote(ctx, alice, quote.ID)
	require.NoError(t, err)
	assert.Equal(t, config.ModeStub, result.Mode)
	assert.NotEmpty(t, result.Rationale)

	stored, err := quotes.GetQuote(ctx, alice, quote.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.AIRationale)
	require.NotNil(t, stored.AIWinProbability)
	assert.Equal(t, result.Rationale, *stored.AIRationale)
	assert.Equal(t, result.WinProbability, *stored.AIWinProbability)
}

func TestAnalyzeQuoteOtherTenant(t *testing.T) {
	svc, quotes := newAIFixture(t)
	ctx := context.Background()

	quote, err := quotes.CreateQuote(ctx, callerFor(t, "alice"), &CreateQuoteInput{Title: "Privé"})
	require.NoError(t, err)

	_, err = svc.AnalyzeQuote(ctx, callerFor(t, "bob"), quote.ID)
	assert.True(t, apperror.IsNotFound(err))
	_, err = svc.AnalyzeQuote(ctx, callerFor(t, "bob"), uuid.Nil)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestSubmitFeedback(t *testing.T) {
	svc, quotes := newAIFixture(t)
	alice := callerFor(t, "alice")
	ctx := context.Background()

	quote, err := quotes.CreateQuote(ctx, alice, &CreateQuoteInput{Title: "Verbouwing"})
	require.NoError(t, err)
	_, err = svc.AnalyzeQuote(ctx, alice, quote.ID)
	require.NoError(t, err)

	feedback, err := svc.SubmitFeedback(ctx, alice, &FeedbackInput{QuoteID: quote.ID, Rating: 4, Comment: strPtr("Klopt aardig")})
	require.NoError(t, err)
	assert.Equal(t, "alice", feedback.UserID)
	assert.Equal(t, quote.ID, feedback.QuoteID)
	assert.NotNil(t, feedback.Rationale)

	for _, rating := range []int{0, 6} {
		_, err = svc.SubmitFeedback(ctx, alice, &FeedbackInput{QuoteID: quote.ID, Rating: rating})
		assert.Equal(t, 400, apperror.GetAppError(err).Code)
	}

	_, err = svc.SubmitFeedback(ctx, callerFor(t, "bob"), &FeedbackInput{QuoteID: quote.ID, Rating: 5})
	assert.True(t, apperror.IsNotFound(err))
}
