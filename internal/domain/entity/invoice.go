package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/bizdesk-api/internal/domain/enum"
	"gorm.io/datatypes"
)

// Invoice represents an invoice ("factuur") issued to a client
type Invoice struct {
	Base
	Number     string                        `gorm:"size:32;not null;index" json:"nummer"`
	ClientID   *uuid.UUID                    `gorm:"type:uuid;index" json:"klantId,omitempty"`
	ClientName string                        `gorm:"size:255" json:"klantNaam"`
	QuoteID    *uuid.UUID                    `gorm:"type:uuid;index" json:"offerteId,omitempty"`
	IssueDate  time.Time                     `gorm:"not null;index" json:"factuurdatum"`
	DueDate    *time.Time                    `json:"vervaldatum,omitempty"`
	Lines      datatypes.JSONSlice[LineItem] `json:"regels"`
	Subtotal   float64                       `json:"subtotaal"`
	VATRate    float64                       `json:"btwPercentage"`
	VATAmount  float64                       `json:"btwBedrag"`
	Total      float64                       `json:"totaal"`
	Status     enum.InvoiceStatus            `gorm:"size:20;not null;index" json:"status"`
	PaidAt     *time.Time                    `json:"betaaldOp,omitempty"`
	Notes      *string                       `gorm:"type:text" json:"notities,omitempty"`
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// IsOverdue reports whether an open invoice is past its due date at now.
func (i *Invoice) IsOverdue(now time.Time) bool {
	return i.Status == enum.InvoiceStatusOpen && i.DueDate != nil && i.DueDate.Before(now)
}
