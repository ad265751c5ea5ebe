package request

import (
	"github.com/google/uuid"
	"github.com/sangkips/bizdesk-api/internal/domain/enum"
)

// CreateProjectRequest represents a project ("project") creation request
type CreateProjectRequest struct {
	ServerFields
	Name        string             `json:"naam" binding:"required,min=1,max=255"`
	ClientID    *uuid.UUID         `json:"klantId"`
	Description *string            `json:"omschrijving"`
	Status      enum.ProjectStatus `json:"status"`
	StartDate   *Date              `json:"startdatum"`
	EndDate     *Date              `json:"einddatum"`
	Budget      *float64           `json:"budget" binding:"omitempty,gte=0"`
}

// UpdateProjectRequest represents a project update request
type UpdateProjectRequest struct {
	ServerFields
	Name        *string             `json:"naam" binding:"omitempty,min=1,max=255"`
	ClientID    *uuid.UUID          `json:"klantId"`
	Description *string             `json:"omschrijving"`
	Status      *enum.ProjectStatus `json:"status"`
	StartDate   *Date               `json:"startdatum"`
	EndDate     *Date               `json:"einddatum"`
	Budget      *float64            `json:"budget" binding:"omitempty,gte=0"`
}
