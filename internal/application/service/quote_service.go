package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/bizdesk-api/internal/domain/entity"
	"github.com/sangkips/bizdesk-api/internal/domain/enum"
	"github.com/sangkips/bizdesk-api/internal/domain/repository"
	"github.com/sangkips/bizdesk-api/pkg/apperror"
	"github.com/sangkips/bizdesk-api/pkg/identity"
)

// QuoteNumberPrefix starts every generated quote number
const QuoteNumberPrefix = "O"

// QuoteService handles quote-related operations
type QuoteService struct {
	quotes repository.Accessor[entity.Quote]
	clock  Clock
}

// NewQuoteService creates a new quote service
func NewQuoteService(quotes repository.Accessor[entity.Quote], clock Clock) *QuoteService {
	return &QuoteService{quotes: quotes, clock: clock}
}

// CreateQuoteInput represents the create quote input
type CreateQuoteInput struct {
	Number      string
	ClientID    *uuid.UUID
	ClientName  string
	Title       string
	Description *string
	Date        *time.Time
	ValidUntil  *time.Time
	Lines       []entity.LineItem
	VATRate     *float64
	Status      enum.QuoteStatus
	Notes       *string
}

// CreateQuote creates a new quote. The number is generated when not given and
// the totals are always derived from the lines.
func (s *QuoteService) CreateQuote(ctx context.Context, caller *identity.Caller, input *CreateQuoteInput) (*entity.Quote, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	now := s.clock.now()

	quote := &entity.Quote{
		Number:        input.Number,
		ClientID:      input.ClientID,
		ClientName:    input.ClientName,
		Title:         input.Title,
		Description:   input.Description,
		ValidUntil:    input.ValidUntil,
		Lines:         input.Lines,
		VATRate:       DefaultVATRate,
		Status:        input.Status,
		StatusHistory: []entity.StatusChange{},
		Notes:         input.Notes,
	}
	if strings.TrimSpace(quote.Number) == "" {
		quote.Number = documentNumber(QuoteNumberPrefix, now)
	}
	if quote.Lines == nil {
		quote.Lines = []entity.LineItem{}
	}
	if input.Date != nil {
		quote.Date = input.Date.UTC()
	} else {
		quote.Date = now
	}
	if input.VATRate != nil {
		quote.VATRate = *input.VATRate
	}
	if quote.Status == "" {
		quote.Status = enum.QuoteStatusDraft
	}

	if !quote.Status.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid quote status")
	}
	if err := validateLines(quote.Lines); err != nil {
		return nil, err
	}
	if err := validateVATRate(quote.VATRate); err != nil {
		return nil, err
	}
	applyQuoteTotals(quote)

	if err := s.quotes.For(caller).Create(ctx, quote); err != nil {
		return nil, err
	}
	return quote, nil
}

// GetQuote retrieves a quote by ID
func (s *QuoteService) GetQuote(ctx context.Context, caller *identity.Caller, id uuid.UUID) (*entity.Quote, error) {
	return s.quotes.For(caller).Get(ctx, id)
}

// ListQuotes lists the caller's quotes
func (s *QuoteService) ListQuotes(ctx context.Context, caller *identity.Caller, opts repository.ListOptions) ([]entity.Quote, error) {
	return s.quotes.For(caller).List(ctx, opts)
}

// UpdateQuoteInput represents the update quote input. Nil fields are left as
// stored; a status change is appended to the status history.
type UpdateQuoteInput struct {
	ID           uuid.UUID
	Number       *string
	ClientID     *uuid.UUID
	ClientName   *string
	Title        *string
	Description  *string
	Date         *time.Time
	ValidUntil   *time.Time
	Lines        []entity.LineItem
	VATRate      *float64
	Status       *enum.QuoteStatus
	StatusReason *string
	Notes        *string
}

// UpdateQuote updates a quote
func (s *QuoteService) UpdateQuote(ctx context.Context, caller *identity.Caller, input *UpdateQuoteInput) (*entity.Quote, error) {
	quotes := s.quotes.For(caller)
	quote, err := quotes.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Number != nil && strings.TrimSpace(*input.Number) != "" {
		quote.Number = *input.Number
	}
	if input.ClientID != nil {
		quote.ClientID = input.ClientID
	}
	if input.ClientName != nil {
		quote.ClientName = *input.ClientName
	}
	if input.Title != nil {
		if *input.Title == "" {
			return nil, apperror.NewBadRequestError("titel must not be empty")
		}
		quote.Title = *input.Title
	}
	if input.Description != nil {
		quote.Description = input.Description
	}
	if input.Date != nil {
		quote.Date = input.Date.UTC()
	}
	if input.ValidUntil != nil {
		quote.ValidUntil = input.ValidUntil
	}
	if input.Lines != nil {
		if err := validateLines(input.Lines); err != nil {
			return nil, err
		}
		quote.Lines = input.Lines
	}
	if input.VATRate != nil {
		if err := validateVATRate(*input.VATRate); err != nil {
			return nil, err
		}
		quote.VATRate = *input.VATRate
	}
	if input.Notes != nil {
		quote.Notes = input.Notes
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid quote status")
		}
		quote.Transition(*input.Status, caller.ID(), s.clock.now(), input.StatusReason)
	}
	applyQuoteTotals(quote)

	if err := quotes.Update(ctx, quote); err != nil {
		return nil, err
	}
	return quote, nil
}

// ChangeQuoteStatus moves a quote to status and records who did it and why.
// Setting the current status again changes nothing.
func (s *QuoteService) ChangeQuoteStatus(ctx context.Context, caller *identity.Caller, id uuid.UUID, status enum.QuoteStatus, reason *string) (*entity.Quote, error) {
	if !status.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid quote status")
	}

	quotes := s.quotes.For(caller)
	quote, err := quotes.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !quote.Transition(status, caller.ID(), s.clock.now(), reason) {
		return quote, nil
	}

	if err := quotes.Update(ctx, quote); err != nil {
		return nil, err
	}
	return quote, nil
}

// DeleteQuote deletes a quote
func (s *QuoteService) DeleteQuote(ctx context.Context, caller *identity.Caller, id uuid.UUID) error {
	return s.quotes.For(caller).Delete(ctx, id)
}

func applyQuoteTotals(q *entity.Quote) {
	t := computeTotals(q.Lines, q.VATRate)
	q.Subtotal = t.subtotal
	q.VATAmount = t.vatAmount
	q.Total = t.total
}
