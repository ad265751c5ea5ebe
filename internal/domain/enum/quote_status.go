package enum

// QuoteStatus represents the lifecycle state of a quote
type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "concept"
	QuoteStatusSent     QuoteStatus = "verzonden"
	QuoteStatusAccepted QuoteStatus = "geaccepteerd"
	QuoteStatusRejected QuoteStatus = "afgewezen"
	QuoteStatusExpired  QuoteStatus = "verlopen"
)

func (s QuoteStatus) IsValid() bool {
	switch s {
	case QuoteStatusDraft, QuoteStatusSent, QuoteStatusAccepted, QuoteStatusRejected, QuoteStatusExpired:
		return true
	}
	return false
}

// IsClosed reports whether the quote has been decided on.
func (s QuoteStatus) IsClosed() bool {
	return s == QuoteStatusAccepted || s == QuoteStatusRejected
}
