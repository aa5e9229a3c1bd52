package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Expense group statuses. A group is APROBADO only when every invoice in it
// is PROCESSED; any other composition is PENDIENTE.
const (
	ExpenseGroupPending  = "PENDIENTE"
	ExpenseGroupApproved = "APROBADO"
)

// ExpenseIcon tags every expense row rendered by the mobile client.
const ExpenseIcon = "receipt"

// spanishMonthNames maps month numbers 1..12 to the Spanish names used in
// expense group labels.
var spanishMonthNames = [13]string{
	"",
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// MonthLabel formats a date as the "<SpanishMonth> <year>" group key, e.g.
// "Diciembre 2024".
func MonthLabel(t time.Time) string {
	return spanishMonthNames[int(t.Month())] + " " + strconv.Itoa(t.Year())
}

// ParseMonthLabel splits a group label back into year and month. The second
// return is false when the label is blank, does not have exactly two tokens,
// names an unknown month, or carries a non-numeric year.
func ParseMonthLabel(label string) (int, time.Month, bool) {
	tokens := strings.Fields(strings.TrimSpace(label))
	if len(tokens) != 2 {
		return 0, 0, false
	}
	month := 0
	for i := 1; i <= 12; i++ {
		if strings.EqualFold(spanishMonthNames[i], tokens[0]) {
			month = i
			break
		}
	}
	if month == 0 {
		return 0, 0, false
	}
	year, err := strconv.Atoi(tokens[1])
	if err != nil {
		return 0, 0, false
	}
	return year, time.Month(month), true
}

// Expense is a denormalized invoice + invoice-field row for one card.
// It is derived from the persistence join and never persisted itself.
type Expense struct {
	FieldID        string          `json:"id"`
	InvoiceID      string          `json:"idInvoice"`
	VendorName     string          `json:"vendorName"`
	Concept        string          `json:"concept"`
	CategoryName   *string         `json:"category,omitempty"`
	InvoiceDate    time.Time       `json:"invoiceDate"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	Currency       string          `json:"currency"`
	CategoryID     *string         `json:"categoryId,omitempty"`
	CostCenterID   *string         `json:"costCenterId,omitempty"`
	CostCenterName *string         `json:"costCenterName,omitempty"`
	ClientVisited  *string         `json:"clientVisited,omitempty"`
	Notes          *string         `json:"notes,omitempty"`
	Status         InvoiceStatus   `json:"status"`
	CountryID      string          `json:"countryId"`
	Path           string          `json:"path"`
	FileName       *string         `json:"fileName,omitempty"`
	Icon           string          `json:"icon"`
}

// ExpenseGroup is the monthly rollup of one card's expenses.
type ExpenseGroup struct {
	Month    string          `json:"month"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
	Status   string          `json:"status"`
	Expenses []Expense       `json:"expenses"`
}
