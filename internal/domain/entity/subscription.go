package entity

import (
	"time"

	"github.com/sangkips/bizdesk-api/internal/domain/enum"
)

// Subscription is the billing state of one tenant. It is changed only by
// checkout, cancel and verified payment-provider webhooks.
type Subscription struct {
	UserID               string                  `gorm:"size:128;primaryKey" json:"userId"`
	StripeCustomerID     *string                 `gorm:"size:255;index" json:"stripeCustomerId,omitempty"`
	StripeSubscriptionID *string                 `gorm:"size:255;index" json:"stripeSubscriptionId,omitempty"`
	PlanID               *string                 `gorm:"size:64" json:"planId,omitempty"`
	Status               enum.SubscriptionStatus `gorm:"size:20;not null" json:"status"`
	CancelAtPeriodEnd    bool                    `json:"cancelAtPeriodEnd"`
	CurrentPeriodEnd     *time.Time              `json:"currentPeriodEnd,omitempty"`
	LastEventID          *string                 `gorm:"size:255" json:"-"`
	UpdatedAt            time.Time               `json:"updatedAt"`
}

// TableName returns the table name for the Subscription model
func (Subscription) TableName() string {
	return "subscriptions"
}
