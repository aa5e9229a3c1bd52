package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/datum-redsoft/expense-backend/internal/core/domain"
)

// CreateCardRequest defines the data needed to register a new card.
// The raw card number is accepted once here and only its masked form is ever
// returned.
type CreateCardRequest struct {
	CardNumber     string           `json:"cardNumber" binding:"required,min=13,max=19,numeric"`
	HolderName     string           `json:"holderName" binding:"required"`
	CardType       string           `json:"cardType" binding:"required,oneof=CREDIT DEBIT CORPORATE PREPAID VIRTUAL"`
	ExpirationDate time.Time        `json:"expirationDate" binding:"required"`
	IssuerBank     string           `json:"issuerBank"`
	CreditLimit    *decimal.Decimal `json:"creditLimit"`
	Description    string           `json:"description"`
	UserID         string           `json:"userID" binding:"required"`
	CompanyID      string           `json:"companyID" binding:"required"`
}

// UpdateCardRequest defines the data allowed for updating a card. The card
// number is immutable after creation.
type UpdateCardRequest struct {
	HolderName     *string          `json:"holderName"`
	CardType       *string          `json:"cardType" binding:"omitempty,oneof=CREDIT DEBIT CORPORATE PREPAID VIRTUAL"`
	ExpirationDate *time.Time       `json:"expirationDate"`
	IssuerBank     *string          `json:"issuerBank"`
	CreditLimit    *decimal.Decimal `json:"creditLimit"`
	Status         *string          `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE EXPIRED BLOCKED SUSPENDED CANCELLED"`
	Description    *string          `json:"description"`
}

// CardResponse defines the data returned for a card.
type CardResponse struct {
	CardID           string           `json:"cardID"`
	MaskedCardNumber string           `json:"maskedCardNumber"`
	HolderName       string           `json:"holderName"`
	CardType         string           `json:"cardType"`
	ExpirationDate   time.Time        `json:"expirationDate"`
	IssuerBank       string           `json:"issuerBank"`
	CreditLimit      *decimal.Decimal `json:"creditLimit,omitempty"`
	Status           string           `json:"status"`
	Description      string           `json:"description"`
	UserID           string           `json:"userID"`
	CompanyID        string           `json:"companyID"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// ToCardResponse converts a domain.Card to CardResponse DTO
func ToCardResponse(c *domain.Card) CardResponse {
	return CardResponse{
		CardID:           c.CardID,
		MaskedCardNumber: c.MaskedCardNumber,
		HolderName:       c.HolderName,
		CardType:         string(c.CardType),
		ExpirationDate:   c.ExpirationDate,
		IssuerBank:       c.IssuerBank,
		CreditLimit:      c.CreditLimit,
		Status:           string(c.Status),
		Description:      c.Description,
		UserID:           c.UserID,
		CompanyID:        c.CompanyID,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

// ToListCardResponse converts a slice of domain.Card to CardResponse DTOs
func ToListCardResponse(cards []domain.Card) []CardResponse {
	res := make([]CardResponse, len(cards))
	for i, c := range cards {
		res[i] = ToCardResponse(&c)
	}
	return res
}
