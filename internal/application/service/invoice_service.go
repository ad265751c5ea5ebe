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

// InvoiceNumberPrefix starts every generated invoice number
const InvoiceNumberPrefix = "F"

// InvoiceService handles invoice-related operations
type InvoiceService struct {
	invoices repository.Accessor[entity.Invoice]
	clock    Clock
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(invoices repository.Accessor[entity.Invoice], clock Clock) *InvoiceService {
	return &InvoiceService{invoices: invoices, clock: clock}
}

// CreateInvoiceInput represents the create invoice input
type CreateInvoiceInput struct {
	Number     string
	ClientID   *uuid.UUID
	ClientName string
	QuoteID    *uuid.UUID
	IssueDate  *time.Time
	DueDate    *time.Time
	Lines      []entity.LineItem
	VATRate    *float64
	Status     enum.InvoiceStatus
	Notes      *string
}

// CreateInvoice creates a new invoice
func (s *InvoiceService) CreateInvoice(ctx context.Context, caller *identity.Caller, input *CreateInvoiceInput) (*entity.Invoice, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	now := s.clock.now()

	invoice := &entity.Invoice{
		Number:     input.Number,
		ClientID:   input.ClientID,
		ClientName: input.ClientName,
		QuoteID:    input.QuoteID,
		DueDate:    input.DueDate,
		Lines:      input.Lines,
		VATRate:    DefaultVATRate,
		Status:     input.Status,
		Notes:      input.Notes,
	}
	if strings.TrimSpace(invoice.Number) == "" {
		invoice.Number = documentNumber(InvoiceNumberPrefix, now)
	}
	if invoice.Lines == nil {
		invoice.Lines = []entity.LineItem{}
	}
	if input.IssueDate != nil {
		invoice.IssueDate = input.IssueDate.UTC()
	} else {
		invoice.IssueDate = now
	}
	if input.VATRate != nil {
		invoice.VATRate = *input.VATRate
	}
	if invoice.Status == "" {
		invoice.Status = enum.InvoiceStatusDraft
	}

	if err := validateInvoiceStatus(invoice.Status); err != nil {
		return nil, err
	}
	if invoice.Status == enum.InvoiceStatusOverdue {
		invoice.Status = enum.InvoiceStatusOpen
	}
	if err := validateLines(invoice.Lines); err != nil {
		return nil, err
	}
	if err := validateVATRate(invoice.VATRate); err != nil {
		return nil, err
	}
	if invoice.Status == enum.InvoiceStatusPaid {
		invoice.PaidAt = &now
	}
	applyInvoiceTotals(invoice)

	if err := s.invoices.For(caller).Create(ctx, invoice); err != nil {
		return nil, err
	}
	return s.present(invoice), nil
}

// GetInvoice retrieves an invoice by ID
func (s *InvoiceService) GetInvoice(ctx context.Context, caller *identity.Caller, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoices.For(caller).Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.present(invoice), nil
}

// ListInvoices lists the caller's invoices
func (s *InvoiceService) ListInvoices(ctx context.Context, caller *identity.Caller, opts repository.ListOptions) ([]entity.Invoice, error) {
	invoices, err := s.invoices.For(caller).List(ctx, opts)
	if err != nil {
		return nil, err
	}
	for i := range invoices {
		s.present(&invoices[i])
	}
	return invoices, nil
}

// UpdateInvoiceInput represents the update invoice input. Nil fields are left
// as stored.
type UpdateInvoiceInput struct {
	ID         uuid.UUID
	Number     *string
	ClientID   *uuid.UUID
	ClientName *string
	QuoteID    *uuid.UUID
	IssueDate  *time.Time
	DueDate    *time.Time
	Lines      []entity.LineItem
	VATRate    *float64
	Status     *enum.InvoiceStatus
	Notes      *string
}

// UpdateInvoice updates an invoice. The first move to betaald stamps the
// payment time, which is kept from then on.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, caller *identity.Caller, input *UpdateInvoiceInput) (*entity.Invoice, error) {
	invoices := s.invoices.For(caller)
	invoice, err := invoices.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Number != nil && strings.TrimSpace(*input.Number) != "" {
		invoice.Number = *input.Number
	}
	if input.ClientID != nil {
		invoice.ClientID = input.ClientID
	}
	if input.ClientName != nil {
		invoice.ClientName = *input.ClientName
	}
	if input.QuoteID != nil {
		invoice.QuoteID = input.QuoteID
	}
	if input.IssueDate != nil {
		invoice.IssueDate = input.IssueDate.UTC()
	}
	if input.DueDate != nil {
		invoice.DueDate = input.DueDate
	}
	if input.Lines != nil {
		if err := validateLines(input.Lines); err != nil {
			return nil, err
		}
		invoice.Lines = input.Lines
	}
	if input.VATRate != nil {
		if err := validateVATRate(*input.VATRate); err != nil {
			return nil, err
		}
		invoice.VATRate = *input.VATRate
	}
	if input.Notes != nil {
		invoice.Notes = input.Notes
	}
	if input.Status != nil {
		status := *input.Status
		if err := validateInvoiceStatus(status); err != nil {
			return nil, err
		}
		// overtijd is derived on read; echoing it back keeps the invoice open
		if status == enum.InvoiceStatusOverdue {
			status = enum.InvoiceStatusOpen
		}
		if status == enum.InvoiceStatusPaid && invoice.PaidAt == nil {
			paidAt := s.clock.now()
			invoice.PaidAt = &paidAt
		}
		invoice.Status = status
	}
	applyInvoiceTotals(invoice)

	if err := invoices.Update(ctx, invoice); err != nil {
		return nil, err
	}
	return s.present(invoice), nil
}

// DeleteInvoice deletes an invoice
func (s *InvoiceService) DeleteInvoice(ctx context.Context, caller *identity.Caller, id uuid.UUID) error {
	return s.invoices.For(caller).Delete(ctx, id)
}

// present reports an open invoice past its due date as overtijd
func (s *InvoiceService) present(invoice *entity.Invoice) *entity.Invoice {
	if invoice.IsOverdue(s.clock.now()) {
		invoice.Status = enum.InvoiceStatusOverdue
	}
	return invoice
}

func validateInvoiceStatus(status enum.InvoiceStatus) error {
	if !status.IsValid() {
		return apperror.NewBadRequestError("Invalid invoice status")
	}
	return nil
}

func applyInvoiceTotals(inv *entity.Invoice) {
	t := computeTotals(inv.Lines, inv.VATRate)
	inv.Subtotal = t.subtotal
	inv.VATAmount = t.vatAmount
	inv.Total = t.total
}
