package repository

import (
	"context"

	"github.com/sangkips/bizdesk-api/internal/domain/entity"
)

// SubscriptionRepository defines the interface for billing state operations.
// Lookups return nil, nil when nothing matches.
type SubscriptionRepository interface {
	GetByUserID(ctx context.Context, userID string) (*entity.Subscription, error)
	GetByCustomerID(ctx context.Context, customerID string) (*entity.Subscription, error)
	GetBySubscriptionID(ctx context.Context, subscriptionID string) (*entity.Subscription, error)
	// Save inserts or replaces the tenant's subscription row
	Save(ctx context.Context, sub *entity.Subscription) error
}
