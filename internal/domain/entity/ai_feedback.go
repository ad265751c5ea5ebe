package entity

import "github.com/google/uuid"

// AIFeedback records the user's verdict on an AI analysis of a quote
type AIFeedback struct {
	Base
	QuoteID uuid.UUID `gorm:"type:uuid;not null;index" json:"offerteId"`
	Rating  int       `gorm:"not null" json:"beoordeling"`
	Comment *string   `gorm:"type:text" json:"opmerking,omitempty"`
	// Snapshot of what the model said when the feedback was given.
	Rationale      *string  `gorm:"type:text" json:"aiOnderbouwing,omitempty"`
	WinProbability *float64 `json:"aiWinkans,omitempty"`
}

// TableName returns the table name for the AIFeedback model
func (AIFeedback) TableName() string {
	return "ai_feedback"
}
