package request

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/sangkips/bizdesk-api/internal/domain/enum"
)

// QuoteDerivedFields are maintained by the server
type QuoteDerivedFields struct {
	TotalsFields
	StatusHistory    json.RawMessage `json:"statusHistorie"`
	AIRationale      json.RawMessage `json:"aiOnderbouwing"`
	AIWinProbability json.RawMessage `json:"aiWinkans"`
}

// CreateQuoteRequest represents a quote ("offerte") creation request
type CreateQuoteRequest struct {
	ServerFields
	QuoteDerivedFields
	Number      string            `json:"nummer" binding:"omitempty,max=32"`
	ClientID    *uuid.UUID        `json:"klantId"`
	ClientName  string            `json:"klantNaam" binding:"omitempty,max=255"`
	Title       string            `json:"titel" binding:"omitempty,max=255"`
	Description *string           `json:"omschrijving"`
	Date        *Date             `json:"datum"`
	ValidUntil  *Date             `json:"geldigTot"`
	Lines       []LineItemRequest `json:"regels" binding:"omitempty,dive"`
	VATRate     *float64          `json:"btwPercentage" binding:"omitempty,gte=0,lte=100"`
	Status      enum.QuoteStatus  `json:"status"`
	Notes       *string           `json:"notities"`
}

// UpdateQuoteRequest represents a quote update request. A status change is
// recorded in the history with the optional reason.
type UpdateQuoteRequest struct {
	ServerFields
	QuoteDerivedFields
	Number       *string           `json:"nummer" binding:"omitempty,min=1,max=32"`
	ClientID     *uuid.UUID        `json:"klantId"`
	ClientName   *string           `json:"klantNaam" binding:"omitempty,max=255"`
	Title        *string           `json:"titel" binding:"omitempty,max=255"`
	Description  *string           `json:"omschrijving"`
	Date         *Date             `json:"datum"`
	ValidUntil   *Date             `json:"geldigTot"`
	Lines        []LineItemRequest `json:"regels" binding:"omitempty,dive"`
	VATRate      *float64          `json:"btwPercentage" binding:"omitempty,gte=0,lte=100"`
	Status       *enum.QuoteStatus `json:"status"`
	StatusReason *string           `json:"reden" binding:"omitempty,max=1000"`
	Notes        *string           `json:"notities"`
}

// QuoteStatusRequest represents an explicit status transition
type QuoteStatusRequest struct {
	Status enum.QuoteStatus `json:"status" binding:"required"`
	Reason *string          `json:"reden" binding:"omitempty,max=1000"`
}
