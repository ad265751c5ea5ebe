package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/bizdesk-api/internal/domain/enum"
)

// Project represents a piece of work done for a client
type Project struct {
	Base
	Name        string             `gorm:"size:255;not null" json:"naam"`
	ClientID    *uuid.UUID         `gorm:"type:uuid;index" json:"klantId,omitempty"`
	Description *string            `gorm:"type:text" json:"omschrijving,omitempty"`
	Status      enum.ProjectStatus `gorm:"size:20;not null;index" json:"status"`
	StartDate   *time.Time         `json:"startdatum,omitempty"`
	EndDate     *time.Time         `json:"einddatum,omitempty"`
	Budget      *float64           `json:"budget,omitempty"`
}

// TableName returns the table name for the Project model
func (Project) TableName() string {
	return "projects"
}
