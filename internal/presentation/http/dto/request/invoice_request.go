package request

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/sangkips/bizdesk-api/internal/domain/enum"
)

// InvoiceDerivedFields are maintained by the server
type InvoiceDerivedFields struct {
	TotalsFields
	PaidAt json.RawMessage `json:"betaaldOp"`
}

// CreateInvoiceRequest represents an invoice ("factuur") creation request
type CreateInvoiceRequest struct {
	ServerFields
	InvoiceDerivedFields
	Number     string             `json:"nummer" binding:"omitempty,max=32"`
	ClientID   *uuid.UUID         `json:"klantId"`
	ClientName string             `json:"klantNaam" binding:"omitempty,max=255"`
	QuoteID    *uuid.UUID         `json:"offerteId"`
	IssueDate  *Date              `json:"factuurdatum"`
	DueDate    *Date              `json:"vervaldatum"`
	Lines      []LineItemRequest  `json:"regels" binding:"omitempty,dive"`
	VATRate    *float64           `json:"btwPercentage" binding:"omitempty,gte=0,lte=100"`
	Status     enum.InvoiceStatus `json:"status"`
	Notes      *string            `json:"notities"`
}

// UpdateInvoiceRequest represents an invoice update request
type UpdateInvoiceRequest struct {
	ServerFields
	InvoiceDerivedFields
	Number     *string             `json:"nummer" binding:"omitempty,min=1,max=32"`
	ClientID   *uuid.UUID          `json:"klantId"`
	ClientName *string             `json:"klantNaam" binding:"omitempty,max=255"`
	QuoteID    *uuid.UUID          `json:"offerteId"`
	IssueDate  *Date               `json:"factuurdatum"`
	DueDate    *Date               `json:"vervaldatum"`
	Lines      []LineItemRequest   `json:"regels" binding:"omitempty,dive"`
	VATRate    *float64            `json:"btwPercentage" binding:"omitempty,gte=0,lte=100"`
	Status     *enum.InvoiceStatus `json:"status"`
	Notes      *string             `json:"notities"`
}
