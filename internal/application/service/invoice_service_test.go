package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/sangkips/bizdesk-api/internal/domain/entity"
	"github.com/sangkips/bizdesk-api/internal/domain/enum"
	domainRepo "github.com/sangkips/bizdesk-api/internal/domain/repository"
	infraRepo "github.com/sangkips/bizdesk-api/internal/infrastructure/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInvoiceService(t *testing.T) (*InvoiceService, *testClock) {
	clock := newTestClock()
	store := infraRepo.NewTenantStore[entity.Invoice](newTestDB(t), infraRepo.CollectionConfig{
		Resource:  "Factuur",
		Orderable: map[string]string{"factuurdatum": "issue_date"},
	}, clock.Now)
	return NewInvoiceService(store, clock.Now), clock
}

func TestCreateInvoiceDefaults(t *testing.T) {
	svc, _ := newInvoiceService(t)
	alice := callerFor(t, "alice")

	invoice, err := svc.CreateInvoice(context.Background(), alice, &CreateInvoiceInput{
		ClientName: "Jansen BV",
		Lines:      []entity.LineItem{{Description: "Advies", Quantity: 4, UnitPrice: 95}},
		VATRate:    func() *float64 { v := 9.0; return &v }(),
	})
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^F2024-\d{6}$`), invoice.Number)
	assert.Equal(t, enum.InvoiceStatusDraft, invoice.Status)
	assert.Equal(t, 380.0, invoice.Subtotal)
	assert.Equal(t, 34.2, invoice.VATAmount)
	assert.Equal(t, 414.2, invoice.Total)
	assert.Nil(t, invoice.PaidAt)
}

func TestUpdateInvoicePaidStampsPaymentTime(t *testing.T) {
	svc, clock := newInvoiceService(t)
	alice := callerFor(t, "alice")
	ctx := context.Background()

	invoice, err := svc.CreateInvoice(ctx, alice, &CreateInvoiceInput{ClientName: "Jansen BV"})
	require.NoError(t, err)

	clock.Advance(24 * time.Hour)
	paid := enum.InvoiceStatusPaid
	updated, err := svc.UpdateInvoice(ctx, alice, &UpdateInvoiceInput{ID: invoice.ID, Status: &paid})
	require.NoError(t, err)
	require.NotNil(t, updated.PaidAt)
	assert.True(t, updated.PaidAt.Equal(clock.Now()))
	paidAt := *updated.PaidAt

	// Repeating the update keeps the original payment time
	clock.Advance(time.Hour)
	again, err := svc.UpdateInvoice(ctx, alice, &UpdateInvoiceInput{ID: invoice.ID, Status: &paid})
	require.NoError(t, err)
	assert.True(t, again.PaidAt.Equal(paidAt))

	// Reopening and paying again keeps the first payment time
	clock.Advance(time.Hour)
	open := enum.InvoiceStatusOpen
	reopened, err := svc.UpdateInvoice(ctx, alice, &UpdateInvoiceInput{ID: invoice.ID, Status: &open})
	require.NoError(t, err)
	assert.Equal(t, enum.InvoiceStatusOpen, reopened.Status)
	require.NotNil(t, reopened.PaidAt)
	assert.True(t, reopened.PaidAt.Equal(paidAt))

	clock.Advance(time.Hour)
	repaid, err := svc.UpdateInvoice(ctx, alice, &UpdateInvoiceInput{ID: invoice.ID, Status: &paid})
	require.NoError(t, err)
	require.NotNil(t, repaid.PaidAt)
	assert.True(t, repaid.PaidAt.Equal(paidAt))
}

func TestInvoicePaymentTimeTruncated(t *testing.T) {
	svc, clock := newInvoiceService(t)
	clock.t = clock.t.Add(987654321 * time.Nanosecond)
	alice := callerFor(t, "alice")
	ctx := context.Background()

	invoice, err := svc.CreateInvoice(ctx, alice, &CreateInvoiceInput{ClientName: "Jansen BV", Status: enum.InvoiceStatusPaid})
	require.NoError(t, err)
	require.NotNil(t, invoice.PaidAt)
	assert.Zero(t, invoice.IssueDate.Nanosecond()%1000)
	assert.Zero(t, invoice.PaidAt.Nanosecond()%1000)

	got, err := svc.GetInvoice(ctx, alice, invoice.ID)
	require.NoError(t, err)
	assert.True(t, got.IssueDate.Equal(invoice.IssueDate))
	assert.True(t, got.PaidAt.Equal(*invoice.PaidAt))
}

func TestInvoiceReportedOverdue(t *testing.T) {
	svc, clock := newInvoiceService(t)
	alice := callerFor(t, "alice")
	ctx := context.Background()

	due := clock.Now().Add(14 * 24 * time.Hour)
	invoice, err := svc.CreateInvoice(ctx, alice, &CreateInvoiceInput{
		ClientName: "Jansen BV",
		DueDate:    &due,
		Status:     enum.InvoiceStatusOpen,
	})
	require.NoError(t, err)
	assert.Equal(t, enum.InvoiceStatusOpen, invoice.Status)

	clock.Advance(15 * 24 * time.Hour)
	got, err := svc.GetInvoice(ctx, alice, invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.InvoiceStatusOverdue, got.Status)

	list, err := svc.ListInvoices(ctx, alice, domainRepo.ListOptions{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, enum.InvoiceStatusOverdue, list[0].Status)

	// Paying an overdue invoice clears the derived status
	paid := enum.InvoiceStatusPaid
	updated, err := svc.UpdateInvoice(ctx, alice, &UpdateInvoiceInput{ID: invoice.ID, Status: &paid})
	require.NoError(t, err)
	assert.Equal(t, enum.InvoiceStatusPaid, updated.Status)
}
