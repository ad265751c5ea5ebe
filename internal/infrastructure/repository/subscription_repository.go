package repository

import (
	"context"
	"errors"

	"github.com/sangkips/bizdesk-api/internal/domain/entity"
	domainRepo "github.com/sangkips/bizdesk-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *gorm.DB) domainRepo.SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) GetByUserID(ctx context.Context, userID string) (*entity.Subscription, error) {
	return r.first(ctx, "user_id = ?", userID)
}

func (r *subscriptionRepository) GetByCustomerID(ctx context.Context, customerID string) (*entity.Subscription, error) {
	return r.first(ctx, "stripe_customer_id = ?", customerID)
}

func (r *subscriptionRepository) GetBySubscriptionID(ctx context.Context, subscriptionID string) (*entity.Subscription, error) {
	return r.first(ctx, "stripe_subscription_id = ?", subscriptionID)
}

func (r *subscriptionRepository) first(ctx context.Context, query string, arg string) (*entity.Subscription, error) {
	if arg == "" {
		return nil, nil
	}
	var sub entity.Subscription
	err := r.db.WithContext(ctx).First(&sub, query, arg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepository) Save(ctx context.Context, sub *entity.Subscription) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(sub).Error
}
