package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/datum-redsoft/expense-backend/internal/apperrors"
	"github.com/datum-redsoft/expense-backend/internal/core/domain"
	portsrepo "github.com/datum-redsoft/expense-backend/internal/core/ports/repositories"
	"github.com/datum-redsoft/expense-backend/internal/dto"
	"github.com/datum-redsoft/expense-backend/internal/middleware"
)

type CardService struct {
	cardRepo    portsrepo.CardRepositoryFacade
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	userRepo    portsrepo.UserRepositoryFacade
	companyRepo portsrepo.CompanyRepositoryFacade
}

func NewCardService(
	cardRepo portsrepo.CardRepositoryFacade,
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	userRepo portsrepo.UserRepositoryFacade,
	companyRepo portsrepo.CompanyRepositoryFacade,
) *CardService {
	return &CardService{
		cardRepo:    cardRepo,
		invoiceRepo: invoiceRepo,
		userRepo:    userRepo,
		companyRepo: companyRepo,
	}
}

func (s *CardService) CreateCard(ctx context.Context, req dto.CreateCardRequest) (*domain.Card, error) {
	if !req.ExpirationDate.After(time.Now()) {
		return nil, fmt.Errorf("%w: expiration date must be in the future", apperrors.ErrValidation)
	}
	if req.CreditLimit != nil && !req.CreditLimit.IsPositive() {
		return nil, fmt.Errorf("%w: credit limit must be greater than zero", apperrors.ErrValidation)
	}

	if _, err := s.userRepo.FindUserByID(ctx, req.UserID); err != nil {
		return nil, fmt.Errorf("card owner lookup: %w", err)
	}
	if _, err := s.companyRepo.FindCompanyByID(ctx, req.CompanyID); err != nil {
		return nil, fmt.Errorf("card company lookup: %w", err)
	}

	exists, err := s.cardRepo.ExistsByCardNumber(ctx, req.CardNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to check card number: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: card number already registered", apperrors.ErrDuplicate)
	}

	now := time.Now()
	card := domain.Card{
		CardID:           uuid.NewString(),
		CardNumber:       req.CardNumber,
		MaskedCardNumber: domain.MaskCardNumber(req.CardNumber),
		HolderName:       req.HolderName,
		CardType:         domain.CardType(req.CardType),
		ExpirationDate:   req.ExpirationDate,
		IssuerBank:       req.IssuerBank,
		CreditLimit:      req.CreditLimit,
		Status:           domain.CardStatusActive,
		Description:      req.Description,
		UserID:           req.UserID,
		CompanyID:        req.CompanyID,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.cardRepo.SaveCard(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to create card in service: %w", err)
	}
	return &card, nil
}

func (s *CardService) GetCardByID(ctx context.Context, cardID string) (*domain.Card, error) {
	return s.cardRepo.FindCardByID(ctx, cardID)
}

func (s *CardService) GetCards(ctx context.Context, limit int, offset int) ([]domain.Card, error) {
	cards, err := s.cardRepo.FindCards(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards in service: %w", err)
	}
	return cards, nil
}

func (s *CardService) GetCardsByUserID(ctx context.Context, userID string) ([]domain.Card, error) {
	cards, err := s.cardRepo.FindCardsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards for user in service: %w", err)
	}
	return cards, nil
}

func (s *CardService) UpdateCard(ctx context.Context, cardID string, req dto.UpdateCardRequest) (*domain.Card, error) {
	if req.CreditLimit != nil && !req.CreditLimit.IsPositive() {
		return nil, fmt.Errorf("%w: credit limit must be greater than zero", apperrors.ErrValidation)
	}

	card, err := s.cardRepo.FindCardByID(ctx, cardID)
	if err != nil {
		return nil, err
	}

	if req.HolderName != nil {
		card.HolderName = *req.HolderName
	}
	if req.CardType != nil {
		card.CardType = domain.CardType(*req.CardType)
	}
	if req.ExpirationDate != nil {
		card.ExpirationDate = *req.ExpirationDate
	}
	if req.IssuerBank != nil {
		card.IssuerBank = *req.IssuerBank
	}
	if req.CreditLimit != nil {
		card.CreditLimit = req.CreditLimit
	}
	if req.Status != nil {
		card.Status = domain.CardStatus(*req.Status)
	}
	if req.Description != nil {
		card.Description = *req.Description
	}
	card.UpdatedAt = time.Now()

	if err := s.cardRepo.UpdateCard(ctx, *card); err != nil {
		return nil, fmt.Errorf("failed to update card in service: %w", err)
	}
	return card, nil
}

func (s *CardService) DeleteCard(ctx context.Context, cardID string) error {
	return s.cardRepo.DeleteCard(ctx, cardID)
}

// GetExpensesByCard groups the card's expenses by calendar month. A group is
// APROBADO only when every invoice in it is PROCESSED; any other composition
// is PENDIENTE. Groups come back newest month first.
func (s *CardService) GetExpensesByCard(ctx context.Context, cardID string) ([]domain.ExpenseGroup, error) {
	if _, err := s.cardRepo.FindCardByID(ctx, cardID); err != nil {
		return nil, err
	}

	expenses, err := s.cardRepo.FindExpenseRowsByCardID(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses for card %s: %w", cardID, err)
	}

	groupsByLabel := make(map[string]*domain.ExpenseGroup)
	labelOrder := make([]string, 0)
	for _, exp := range expenses {
		label := domain.MonthLabel(exp.InvoiceDate)
		group, ok := groupsByLabel[label]
		if !ok {
			group = &domain.ExpenseGroup{
				Month:    label,
				Total:    decimal.Zero,
				Expenses: make([]domain.Expense, 0),
			}
			groupsByLabel[label] = group
			labelOrder = append(labelOrder, label)
		}
		group.Total = group.Total.Add(exp.TotalAmount)
		group.Count++
		group.Expenses = append(group.Expenses, exp)
	}

	groups := make([]domain.ExpenseGroup, 0, len(labelOrder))
	for _, label := range labelOrder {
		group := groupsByLabel[label]
		group.Status = deriveGroupStatus(group.Expenses)
		groups = append(groups, *group)
	}

	// Newest first; a label that fails to parse keeps its insertion position.
	sort.SliceStable(groups, func(i, j int) bool {
		yi, mi, oki := domain.ParseMonthLabel(groups[i].Month)
		yj, mj, okj := domain.ParseMonthLabel(groups[j].Month)
		if !oki || !okj {
			return false
		}
		if yi != yj {
			return yi > yj
		}
		return mi > mj
	})

	return groups, nil
}

func deriveGroupStatus(expenses []domain.Expense) string {
	for _, exp := range expenses {
		if exp.Status != domain.InvoiceStatusProcessed {
			return domain.ExpenseGroupPending
		}
	}
	return domain.ExpenseGroupApproved
}

// ApproveExpenseGroup moves the card's DRAFT invoices in the labeled month to
// PROCESSED. The transition is one conditional update, so rows that left
// DRAFT between read and write are skipped rather than double-counted.
func (s *CardService) ApproveExpenseGroup(ctx context.Context, cardID string, monthYear string) (int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.cardRepo.FindCardByID(ctx, cardID); err != nil {
		return 0, err
	}

	year, month, ok := domain.ParseMonthLabel(monthYear)
	if !ok {
		return 0, fmt.Errorf("%w: invalid month label %q", apperrors.ErrValidation, monthYear)
	}

	count, err := s.invoiceRepo.ApproveDraftInvoicesInMonth(ctx, cardID, year, month, time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to approve expenses for card %s: %w", cardID, err)
	}

	logger.Info("Expense group approved", "card_id", cardID, "month", monthYear, "updated", count)
	return count, nil
}
