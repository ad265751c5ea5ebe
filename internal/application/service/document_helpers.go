package service

import (
	"fmt"
	"math"
	"time"

	"github.com/sangkips/bizdesk-api/internal/domain/entity"
	"github.com/sangkips/bizdesk-api/pkg/apperror"
	"github.com/sangkips/bizdesk-api/pkg/identity"
)

// DefaultVATRate is the Dutch standard BTW rate applied when none is given
const DefaultVATRate = 21.0

// Clock returns the server time used to stamp documents
type Clock func() time.Time

// now is truncated to microseconds, the finest precision postgres keeps, so
// stamped fields read back as written.
func (c Clock) now() time.Time {
	if c == nil {
		return time.Now().UTC().Truncate(time.Microsecond)
	}
	return c().UTC().Truncate(time.Microsecond)
}

// documentNumber builds a human-readable number such as O2024-123456 from the
// year and the last six digits of the millisecond timestamp.
func documentNumber(prefix string, now time.Time) string {
	return fmt.Sprintf("%s%d-%06d", prefix, now.Year(), now.UnixMilli()%1_000_000)
}

type totals struct {
	subtotal  float64
	vatAmount float64
	total     float64
}

func computeTotals(lines []entity.LineItem, vatRate float64) totals {
	var subtotal float64
	for _, line := range lines {
		subtotal += line.Amount()
	}
	subtotal = roundCents(subtotal)
	vat := roundCents(subtotal * vatRate / 100)
	return totals{subtotal: subtotal, vatAmount: vat, total: roundCents(subtotal + vat)}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func validateLines(lines []entity.LineItem) error {
	for i, line := range lines {
		if line.Description == "" {
			return apperror.NewBadRequestError(fmt.Sprintf("Line %d: omschrijving is required", i+1))
		}
		if line.Quantity < 0 || line.UnitPrice < 0 {
			return apperror.NewBadRequestError(fmt.Sprintf("Line %d: aantal and prijs must not be negative", i+1))
		}
	}
	return nil
}

func validateVATRate(rate float64) error {
	if rate < 0 || rate > 100 {
		return apperror.NewBadRequestError("btwPercentage must be between 0 and 100")
	}
	return nil
}

func requireCaller(caller *identity.Caller) error {
	if caller == nil {
		return apperror.ErrUnauthorized
	}
	return nil
}
