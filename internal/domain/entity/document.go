package entity

import (
	"time"

	"github.com/google/uuid"
)

// Base carries the fields every tenant-owned document shares. All of them are
// server-owned: the tenant store assigns them and request payloads cannot.
type Base struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string    `gorm:"size:128;not null;index" json:"userId"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false" json:"updatedAt"`
}

// Meta exposes the base fields to the tenant store.
func (b *Base) Meta() *Base {
	return b
}

// Document is implemented by pointers to every tenant-owned entity.
type Document interface {
	Meta() *Base
}

// LineItem is one priced line on a quote or invoice
type LineItem struct {
	Description string  `json:"omschrijving"`
	Quantity    float64 `json:"aantal"`
	UnitPrice   float64 `json:"prijs"`
}

// Amount returns quantity times unit price.
func (l LineItem) Amount() float64 {
	return l.Quantity * l.UnitPrice
}
