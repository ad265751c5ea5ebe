package entity

import "github.com/sangkips/bizdesk-api/internal/domain/enum"

// Client represents a client ("klant") of the tenant
type Client struct {
	Base
	Name    string            `gorm:"size:255;not null" json:"name"`
	Company *string           `gorm:"size:255" json:"company,omitempty"`
	Email   *string           `gorm:"size:255" json:"email,omitempty"`
	Phone   *string           `gorm:"size:50" json:"phone,omitempty"`
	Address *string           `gorm:"type:text" json:"address,omitempty"`
	Type    enum.ClientType   `gorm:"size:20;not null" json:"type"`
	Status  enum.ClientStatus `gorm:"size:20;not null;index" json:"status"`
}

// TableName returns the table name for the Client model
func (Client) TableName() string {
	return "clients"
}
