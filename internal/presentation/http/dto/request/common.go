package request

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/sangkips/bizdesk-api/internal/domain/entity"
	"github.com/sangkips/bizdesk-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// ServerFields are stamped by the server. Clients echo them back on PUT, so
// they are accepted and then ignored.
type ServerFields struct {
	ID        json.RawMessage `json:"id"`
	UserID    json.RawMessage `json:"userId"`
	CreatedAt json.RawMessage `json:"createdAt"`
	UpdatedAt json.RawMessage `json:"updatedAt"`
}

// TotalsFields are derived from the lines and never taken from the client
type TotalsFields struct {
	Subtotal  json.RawMessage `json:"subtotaal"`
	VATAmount json.RawMessage `json:"btwBedrag"`
	Total     json.RawMessage `json:"totaal"`
}

// Date accepts a plain calendar date ("2024-06-14") or an RFC 3339 timestamp
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse(dateLayout, raw); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return err
	}
	d.Time = t.UTC().Truncate(time.Microsecond)
	return nil
}

// Ptr returns nil for a missing or empty date
func (d *Date) Ptr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

// LineItemRequest is one quote or invoice line
type LineItemRequest struct {
	Description string  `json:"omschrijving" binding:"required,max=1000"`
	Quantity    float64 `json:"aantal" binding:"gte=0"`
	UnitPrice   float64 `json:"prijs" binding:"gte=0"`
}

// LineItems converts request lines; a nil slice stays nil so updates can
// tell "not sent" from "cleared".
func LineItems(lines []LineItemRequest) []entity.LineItem {
	if lines == nil {
		return nil
	}
	out := make([]entity.LineItem, 0, len(lines))
	for _, l := range lines {
		out = append(out, entity.LineItem{
			Description: strings.TrimSpace(l.Description),
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
		})
	}
	return out
}

// ListQuery represents the ordering parameters accepted by list endpoints
type ListQuery struct {
	OrderBy   string `form:"orderBy"`
	Direction string `form:"direction" binding:"omitempty,oneof=asc desc ASC DESC"`
}

func (q ListQuery) Options() repository.ListOptions {
	return repository.ListOptions{
		OrderBy:   strings.TrimSpace(q.OrderBy),
		Ascending: strings.EqualFold(q.Direction, "asc"),
	}
}
