package enum

// SubscriptionStatus mirrors the payment provider's subscription states we act on
type SubscriptionStatus string

const (
	SubscriptionStatusNone      SubscriptionStatus = "none"
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusTrialing  SubscriptionStatus = "trialing"
	SubscriptionStatusPastDue   SubscriptionStatus = "past_due"
	SubscriptionStatusCanceling SubscriptionStatus = "canceling"
	SubscriptionStatusCanceled  SubscriptionStatus = "canceled"
)

// ParseSubscriptionStatus maps a provider status string, falling back to none.
func ParseSubscriptionStatus(s string) SubscriptionStatus {
	switch SubscriptionStatus(s) {
	case SubscriptionStatusActive, SubscriptionStatusTrialing, SubscriptionStatusPastDue,
		SubscriptionStatusCanceling, SubscriptionStatusCanceled:
		return SubscriptionStatus(s)
	case "unpaid", "incomplete":
		return SubscriptionStatusPastDue
	case "incomplete_expired":
		return SubscriptionStatusCanceled
	}
	return SubscriptionStatusNone
}
