package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/bizdesk-api/internal/domain/entity"
	domainRepo "github.com/sangkips/bizdesk-api/internal/domain/repository"
	"github.com/sangkips/bizdesk-api/pkg/apperror"
	"github.com/sangkips/bizdesk-api/pkg/identity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CollectionConfig describes how one tenant-owned collection is listed
type CollectionConfig struct {
	// Resource names the document in not-found messages, e.g. "Klant".
	Resource string
	// Orderable maps the JSON field names a caller may sort on to columns.
	Orderable map[string]string
	// DefaultOrder is the JSON field used when the caller names none.
	DefaultOrder string
}

// TenantStore is the accessor for one collection of tenant-owned documents.
// PT is the pointer type of T, which carries the shared document base.
type TenantStore[T any, PT interface {
	*T
	entity.Document
}] struct {
	db  *gorm.DB
	cfg CollectionConfig
	now func() time.Time
}

// NewTenantStore creates a tenant store for T. now supplies server timestamps.
func NewTenantStore[T any, PT interface {
	*T
	entity.Document
}](db *gorm.DB, cfg CollectionConfig, now func() time.Time) *TenantStore[T, PT] {
	if now == nil {
		now = time.Now
	}
	if cfg.DefaultOrder == "" {
		cfg.DefaultOrder = "createdAt"
	}
	return &TenantStore[T, PT]{db: db, cfg: cfg, now: now}
}

// For returns the caller's handle on the collection. A nil caller yields a
// handle on which every operation fails with apperror.ErrUnauthorized.
func (s *TenantStore[T, PT]) For(caller *identity.Caller) domainRepo.Collection[T] {
	return &tenantCollection[T, PT]{store: s, userID: caller.ID()}
}

// timestamp truncates to the precision every supported database keeps, so a
// document reads back exactly as it was written.
func (s *TenantStore[T, PT]) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

func (s *TenantStore[T, PT]) orderColumn(field string) (string, error) {
	if field == "" {
		field = s.cfg.DefaultOrder
	}
	switch field {
	case "createdAt":
		return "created_at", nil
	case "updatedAt":
		return "updated_at", nil
	}
	column, ok := s.cfg.Orderable[field]
	if !ok {
		return "", apperror.NewBadRequestError("Cannot order by " + field)
	}
	return column, nil
}

func (s *TenantStore[T, PT]) notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NewNotFoundError(s.cfg.Resource)
	}
	return err
}

type tenantCollection[T any, PT interface {
	*T
	entity.Document
}] struct {
	store  *TenantStore[T, PT]
	userID string
}

func (c *tenantCollection[T, PT]) query(ctx context.Context) (*gorm.DB, error) {
	if c.userID == "" {
		return nil, apperror.ErrUnauthorized
	}
	return c.store.db.WithContext(ctx).Scopes(OwnerScope(c.userID)), nil
}

func (c *tenantCollection[T, PT]) List(ctx context.Context, opts domainRepo.ListOptions) ([]T, error) {
	q, err := c.query(ctx)
	if err != nil {
		return nil, err
	}
	column, err := c.store.orderColumn(opts.OrderBy)
	if err != nil {
		return nil, err
	}

	docs := make([]T, 0)
	err = q.Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: !opts.Ascending}).
		Order("id").
		Find(&docs).Error
	return docs, err
}

func (c *tenantCollection[T, PT]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	q, err := c.query(ctx)
	if err != nil {
		return nil, err
	}
	var doc T
	if err := q.First(&doc, "id = ?", id).Error; err != nil {
		return nil, c.store.notFound(err)
	}
	return &doc, nil
}

func (c *tenantCollection[T, PT]) Create(ctx context.Context, doc *T) error {
	q, err := c.query(ctx)
	if err != nil {
		return err
	}
	meta := PT(doc).Meta()
	if meta.ID == uuid.Nil {
		meta.ID = uuid.New()
	}
	now := c.store.timestamp()
	meta.UserID = c.userID
	meta.CreatedAt = now
	meta.UpdatedAt = now
	return q.Create(doc).Error
}

func (c *tenantCollection[T, PT]) Update(ctx context.Context, doc *T) error {
	if c.userID == "" {
		return apperror.ErrUnauthorized
	}
	meta := PT(doc).Meta()
	return c.store.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var stored T
		if err := tx.Scopes(OwnerScope(c.userID)).First(&stored, "id = ?", meta.ID).Error; err != nil {
			return c.store.notFound(err)
		}
		base := PT(&stored).Meta()
		meta.UserID = base.UserID
		meta.CreatedAt = base.CreatedAt
		meta.UpdatedAt = c.store.timestamp()

		return tx.Model(doc).Scopes(OwnerScope(c.userID)).Select("*").Updates(doc).Error
	})
}

func (c *tenantCollection[T, PT]) Delete(ctx context.Context, id uuid.UUID) error {
	q, err := c.query(ctx)
	if err != nil {
		return err
	}
	result := q.Where("id = ?", id).Delete(new(T))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperror.NewNotFoundError(c.store.cfg.Resource)
	}
	return nil
}
