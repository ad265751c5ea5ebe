package enum

// InvoiceStatus represents the payment state of an invoice
type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusOpen    InvoiceStatus = "openstaand"
	InvoiceStatusPaid    InvoiceStatus = "betaald"
	InvoiceStatusOverdue InvoiceStatus = "overtijd"
)

func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusOpen, InvoiceStatusPaid, InvoiceStatusOverdue:
		return true
	}
	return false
}
