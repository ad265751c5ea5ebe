package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/bizdesk-api/internal/domain/enum"
	"gorm.io/datatypes"
)

// Quote represents a price quote ("offerte") sent to a client
type Quote struct {
	Base
	Number           string                            `gorm:"size:32;not null;index" json:"nummer"`
	ClientID         *uuid.UUID                        `gorm:"type:uuid;index" json:"klantId,omitempty"`
	ClientName       string                            `gorm:"size:255" json:"klantNaam"`
	Title            string                            `gorm:"size:255;not null" json:"titel"`
	Description      *string                           `gorm:"type:text" json:"omschrijving,omitempty"`
	Date             time.Time                         `gorm:"not null;index" json:"datum"`
	ValidUntil       *time.Time                        `json:"geldigTot,omitempty"`
	Lines            datatypes.JSONSlice[LineItem]     `json:"regels"`
	Subtotal         float64                           `json:"subtotaal"`
	VATRate          float64                           `json:"btwPercentage"`
	VATAmount        float64                           `json:"btwBedrag"`
	Total            float64                           `json:"totaal"`
	Status           enum.QuoteStatus                  `gorm:"size:20;not null;index" json:"status"`
	StatusHistory    datatypes.JSONSlice[StatusChange] `json:"statusHistorie"`
	AIRationale      *string                           `gorm:"type:text" json:"aiOnderbouwing,omitempty"`
	AIWinProbability *float64                          `json:"aiWinkans,omitempty"`
	Notes            *string                           `gorm:"type:text" json:"notities,omitempty"`
}

// StatusChange is one append-only entry in a quote's status history
type StatusChange struct {
	From   enum.QuoteStatus `json:"van"`
	To     enum.QuoteStatus `json:"naar"`
	By     string           `json:"door"`
	At     time.Time        `json:"op"`
	Reason *string          `json:"reden,omitempty"`
}

// TableName returns the table name for the Quote model
func (Quote) TableName() string {
	return "quotes"
}

// Transition moves the quote to status and records the change. It is a no-op
// when the status does not change.
func (q *Quote) Transition(to enum.QuoteStatus, actor string, at time.Time, reason *string) bool {
	if q.Status == to {
		return false
	}
	q.StatusHistory = append(q.StatusHistory, StatusChange{
		From:   q.Status,
		To:     to,
		By:     actor,
		At:     at,
		Reason: reason,
	})
	q.Status = to
	return true
}
