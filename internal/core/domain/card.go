package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CardType enumerates the kinds of payment cards.
type CardType string

const (
	CardTypeCredit    CardType = "CREDIT"
	CardTypeDebit     CardType = "DEBIT"
	CardTypeCorporate CardType = "CORPORATE"
	CardTypePrepaid   CardType = "PREPAID"
	CardTypeVirtual   CardType = "VIRTUAL"
)

// CardStatus enumerates the lifecycle states of a card.
type CardStatus string

const (
	CardStatusActive    CardStatus = "ACTIVE"
	CardStatusInactive  CardStatus = "INACTIVE"
	CardStatusExpired   CardStatus = "EXPIRED"
	CardStatusBlocked   CardStatus = "BLOCKED"
	CardStatusSuspended CardStatus = "SUSPENDED"
	CardStatusCancelled CardStatus = "CANCELLED"
)

// MaskCardNumber hides all but the last four digits and regroups the result
// in blocks of four, e.g. "1234567890123456" -> "**** **** **** 3456".
// Numbers of four digits or fewer are returned unchanged.
func MaskCardNumber(number string) string {
	number = strings.ReplaceAll(number, " ", "")
	if len(number) <= 4 {
		return number
	}
	masked := strings.Repeat("*", len(number)-4) + number[len(number)-4:]
	var sb strings.Builder
	for i, r := range masked {
		if i > 0 && i%4 == 0 {
			sb.WriteByte(' ')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Card represents a corporate payment card owned by a user.
// CardNumber is the real number and is never exposed through the API;
// MaskedCardNumber is the derived display form.
type Card struct {
	CardID           string           `json:"cardID"`
	CardNumber       string           `json:"-"`
	MaskedCardNumber string           `json:"maskedCardNumber"`
	HolderName       string           `json:"holderName"`
	CardType         CardType         `json:"cardType"`
	ExpirationDate   time.Time        `json:"expirationDate"`
	IssuerBank       string           `json:"issuerBank"`
	CreditLimit      *decimal.Decimal `json:"creditLimit,omitempty"`
	Status           CardStatus       `json:"status"`
	Description      string           `json:"description"`
	UserID           string           `json:"userID"`
	CompanyID        string           `json:"companyID"`
	AuditFields
}
