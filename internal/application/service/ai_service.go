package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/bizdesk-api/internal/domain/entity"
	"github.com/sangkips/bizdesk-api/internal/domain/gateway"
	"github.com/sangkips/bizdesk-api/internal/domain/repository"
	"github.com/sangkips/bizdesk-api/pkg/apperror"
	"github.com/sangkips/bizdesk-api/pkg/identity"
)

// AIService runs quote analyses and records feedback on them
type AIService struct {
	quotes   repository.Accessor[entity.Quote]
	feedback repository.Accessor[entity.AIFeedback]
	advisor  gateway.QuoteAdvisor
}

// NewAIService creates a new AI service
func NewAIService(quotes repository.Accessor[entity.Quote], feedback repository.Accessor[entity.AIFeedback], advisor gateway.QuoteAdvisor) *AIService {
	return &AIService{quotes: quotes, feedback: feedback, advisor: advisor}
}

// AnalysisResult is an analysis stored on a quote
type AnalysisResult struct {
	QuoteID        uuid.UUID
	Rationale      string
	WinProbability float64
	Mode           string
}

// AnalyzeQuote asks the advisor about one of the caller's quotes and stores
// the answer on it.
func (s *AIService) AnalyzeQuote(ctx context.Context, caller *identity.Caller, quoteID uuid.UUID) (*AnalysisResult, error) {
	if quoteID == uuid.Nil {
		return nil, apperror.NewBadRequestError("offerteId is required")
	}
	quotes := s.quotes.For(caller)
	quote, err := quotes.Get(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	analysis, err := s.advisor.AnalyzeQuote(ctx, quote)
	if err != nil {
		return nil, err
	}

	quote.AIRationale = &analysis.Rationale
	quote.AIWinProbability = &analysis.WinProbability
	if err := quotes.Update(ctx, quote); err != nil {
		return nil, err
	}

	return &AnalysisResult{
		QuoteID:        quote.ID,
		Rationale:      analysis.Rationale,
		WinProbability: analysis.WinProbability,
		Mode:           s.advisor.Mode(),
	}, nil
}

// FeedbackInput represents the user's verdict on an analysis
type FeedbackInput struct {
	QuoteID uuid.UUID
	Rating  int
	Comment *string
}

// SubmitFeedback stores feedback on the analysis of one of the caller's quotes
func (s *AIService) SubmitFeedback(ctx context.Context, caller *identity.Caller, input *FeedbackInput) (*entity.AIFeedback, error) {
	if input.QuoteID == uuid.Nil {
		return nil, apperror.NewBadRequestError("offerteId is required")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, apperror.NewBadRequestError("beoordeling must be between 1 and 5")
	}

	quote, err := s.quotes.For(caller).Get(ctx, input.QuoteID)
	if err != nil {
		return nil, err
	}

	feedback := &entity.AIFeedback{
		QuoteID:        quote.ID,
		Rating:         input.Rating,
		Comment:        input.Comment,
		Rationale:      quote.AIRationale,
		WinProbability: quote.AIWinProbability,
	}
	if err := s.feedback.For(caller).Create(ctx, feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}
