package request

import "github.com/sangkips/bizdesk-api/internal/domain/enum"

// CreateClientRequest represents a client ("klant") creation request
type CreateClientRequest struct {
	ServerFields
	Name    string            `json:"name" binding:"required,min=1,max=255"`
	Company *string           `json:"company" binding:"omitempty,max=255"`
	Email   *string           `json:"email" binding:"omitempty,max=255"`
	Phone   *string           `json:"phone" binding:"omitempty,max=50"`
	Address *string           `json:"address"`
	Type    enum.ClientType   `json:"type"`
	Status  enum.ClientStatus `json:"status"`
}

// UpdateClientRequest represents a client update request
type UpdateClientRequest struct {
	ServerFields
	Name    *string            `json:"name" binding:"omitempty,min=1,max=255"`
	Company *string            `json:"company" binding:"omitempty,max=255"`
	Email   *string            `json:"email" binding:"omitempty,max=255"`
	Phone   *string            `json:"phone" binding:"omitempty,max=50"`
	Address *string            `json:"address"`
	Type    *enum.ClientType   `json:"type"`
	Status  *enum.ClientStatus `json:"status"`
}
