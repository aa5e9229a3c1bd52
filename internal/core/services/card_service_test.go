package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/datum-redsoft/expense-backend/internal/apperrors"
	"github.com/datum-redsoft/expense-backend/internal/core/domain"
	portssvc "github.com/datum-redsoft/expense-backend/internal/core/ports/services"
	"github.com/datum-redsoft/expense-backend/internal/core/services"
	"github.com/datum-redsoft/expense-backend/internal/dto"
)

type CardServiceTestSuite struct {
	suite.Suite
	mockCardRepo    *MockCardRepository
	mockInvoiceRepo *MockInvoiceRepository
	mockUserRepo    *MockUserRepository
	mockCompanyRepo *MockCompanyRepository
	service         portssvc.CardSvcFacade
}

func (suite *CardServiceTestSuite) SetupTest() {
	suite.mockCardRepo = new(MockCardRepository)
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockCompanyRepo = new(MockCompanyRepository)
	suite.service = services.NewCardService(suite.mockCardRepo, suite.mockInvoiceRepo, suite.mockUserRepo, suite.mockCompanyRepo)
}

// --- CreateCard Tests ---

func (suite *CardServiceTestSuite) TestCreateCard_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	companyID := uuid.NewString()

	req := dto.CreateCardRequest{
		CardNumber:     "4111222233334444",
		HolderName:     "Maria Lopez",
		CardType:       "CORPORATE",
		ExpirationDate: time.Now().AddDate(3, 0, 0),
		UserID:         userID,
		CompanyID:      companyID,
	}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(&domain.User{UserID: userID}, nil).Once()
	suite.mockCompanyRepo.On("FindCompanyByID", ctx, companyID).Return(&domain.Company{CompanyID: companyID}, nil).Once()
	suite.mockCardRepo.On("ExistsByCardNumber", ctx, req.CardNumber).Return(false, nil).Once()
	suite.mockCardRepo.On("SaveCard", ctx, mock.MatchedBy(func(card domain.Card) bool {
		return card.MaskedCardNumber == "**** **** **** 4444" && card.Status == domain.CardStatusActive
	})).Return(nil).Once()

	card, err := suite.service.CreateCard(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(card)
	suite.NotEmpty(card.CardID)
	suite.Equal("**** **** **** 4444", card.MaskedCardNumber)
	suite.Equal(domain.CardStatusActive, card.Status)
	suite.mockCardRepo.AssertExpectations(suite.T())
}

func (suite *CardServiceTestSuite) TestCreateCard_DuplicateNumber() {
	ctx := context.Background()
	userID := uuid.NewString()
	companyID := uuid.NewString()

	req := dto.CreateCardRequest{
		CardNumber:     "4111222233334444",
		HolderName:     "Maria Lopez",
		CardType:       "CREDIT",
		ExpirationDate: time.Now().AddDate(3, 0, 0),
		UserID:         userID,
		CompanyID:      companyID,
	}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(&domain.User{UserID: userID}, nil).Once()
	suite.mockCompanyRepo.On("FindCompanyByID", ctx, companyID).Return(&domain.Company{CompanyID: companyID}, nil).Once()
	suite.mockCardRepo.On("ExistsByCardNumber", ctx, req.CardNumber).Return(true, nil).Once()

	card, err := suite.service.CreateCard(ctx, req)

	suite.Require().Error(err)
	suite.Nil(card)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockCardRepo.AssertNotCalled(suite.T(), "SaveCard", mock.Anything, mock.Anything)
}

func (suite *CardServiceTestSuite) TestCreateCard_UnknownOwner() {
	ctx := context.Background()
	req := dto.CreateCardRequest{
		CardNumber:     "4111222233334444",
		ExpirationDate: time.Now().AddDate(3, 0, 0),
		UserID:         uuid.NewString(),
		CompanyID:      uuid.NewString(),
	}

	suite.mockUserRepo.On("FindUserByID", ctx, req.UserID).Return(nil, apperrors.ErrNotFound).Once()

	card, err := suite.service.CreateCard(ctx, req)

	suite.Require().Error(err)
	suite.Nil(card)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CardServiceTestSuite) TestCreateCard_PastExpirationDate() {
	ctx := context.Background()
	req := dto.CreateCardRequest{
		CardNumber:     "4111222233334444",
		HolderName:     "Maria Lopez",
		CardType:       "CREDIT",
		ExpirationDate: time.Now().AddDate(0, -1, 0),
		UserID:         uuid.NewString(),
		CompanyID:      uuid.NewString(),
	}

	card, err := suite.service.CreateCard(ctx, req)

	suite.Require().Error(err)
	suite.Nil(card)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByID", mock.Anything, mock.Anything)
	suite.mockCardRepo.AssertNotCalled(suite.T(), "SaveCard", mock.Anything, mock.Anything)
}

func (suite *CardServiceTestSuite) TestCreateCard_NonPositiveCreditLimit() {
	ctx := context.Background()
	zero := decimal.Zero

	req := dto.CreateCardRequest{
		CardNumber:     "4111222233334444",
		HolderName:     "Maria Lopez",
		CardType:       "CREDIT",
		ExpirationDate: time.Now().AddDate(3, 0, 0),
		CreditLimit:    &zero,
		UserID:         uuid.NewString(),
		CompanyID:      uuid.NewString(),
	}

	card, err := suite.service.CreateCard(ctx, req)

	suite.Require().Error(err)
	suite.Nil(card)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCardRepo.AssertNotCalled(suite.T(), "SaveCard", mock.Anything, mock.Anything)
}

func (suite *CardServiceTestSuite) TestUpdateCard_NegativeCreditLimit() {
	ctx := context.Background()
	negative := decimal.RequireFromString("-100.00")

	req := dto.UpdateCardRequest{CreditLimit: &negative}

	card, err := suite.service.UpdateCard(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.Nil(card)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCardRepo.AssertNotCalled(suite.T(), "UpdateCard", mock.Anything, mock.Anything)
}

// --- GetExpensesByCard Tests ---

func expenseRow(date time.Time, amount string, status domain.InvoiceStatus) domain.Expense {
	return domain.Expense{
		FieldID:     uuid.NewString(),
		InvoiceID:   uuid.NewString(),
		VendorName:  "Vendor",
		InvoiceDate: date,
		TotalAmount: decimal.RequireFromString(amount),
		Currency:    "EUR",
		Status:      status,
	}
}

func (suite *CardServiceTestSuite) TestGetExpensesByCard_GroupsByMonth() {
	ctx := context.Background()
	cardID := uuid.NewString()

	december := time.Date(2024, time.December, 5, 0, 0, 0, 0, time.UTC)
	november := time.Date(2024, time.November, 20, 0, 0, 0, 0, time.UTC)

	rows := []domain.Expense{
		expenseRow(december, "100.50", domain.InvoiceStatusProcessed),
		expenseRow(december, "49.50", domain.InvoiceStatusProcessed),
		expenseRow(november, "10.00", domain.InvoiceStatusDraft),
	}

	suite.mockCardRepo.On("FindCardByID", ctx, cardID).Return(&domain.Card{CardID: cardID}, nil).Once()
	suite.mockCardRepo.On("FindExpenseRowsByCardID", ctx, cardID).Return(rows, nil).Once()

	groups, err := suite.service.GetExpensesByCard(ctx, cardID)

	suite.Require().NoError(err)
	suite.Require().Len(groups, 2)

	suite.Equal("Diciembre 2024", groups[0].Month)
	suite.Equal(2, groups[0].Count)
	suite.True(groups[0].Total.Equal(decimal.RequireFromString("150.00")))
	suite.Equal(domain.ExpenseGroupApproved, groups[0].Status)

	suite.Equal("Noviembre 2024", groups[1].Month)
	suite.Equal(1, groups[1].Count)
	suite.Equal(domain.ExpenseGroupPending, groups[1].Status)
}

func (suite *CardServiceTestSuite) TestGetExpensesByCard_MixedStatusIsPending() {
	ctx := context.Background()
	cardID := uuid.NewString()
	date := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)

	rows := []domain.Expense{
		expenseRow(date, "20.00", domain.InvoiceStatusProcessed),
		expenseRow(date, "30.00", domain.InvoiceStatusDraft),
	}

	suite.mockCardRepo.On("FindCardByID", ctx, cardID).Return(&domain.Card{CardID: cardID}, nil).Once()
	suite.mockCardRepo.On("FindExpenseRowsByCardID", ctx, cardID).Return(rows, nil).Once()

	groups, err := suite.service.GetExpensesByCard(ctx, cardID)

	suite.Require().NoError(err)
	suite.Require().Len(groups, 1)
	suite.Equal(domain.ExpenseGroupPending, groups[0].Status)
}

func (suite *CardServiceTestSuite) TestGetExpensesByCard_SortsNewestFirst() {
	ctx := context.Background()
	cardID := uuid.NewString()

	rows := []domain.Expense{
		expenseRow(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), "1.00", domain.InvoiceStatusProcessed),
		expenseRow(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), "2.00", domain.InvoiceStatusProcessed),
		expenseRow(time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), "3.00", domain.InvoiceStatusProcessed),
	}

	suite.mockCardRepo.On("FindCardByID", ctx, cardID).Return(&domain.Card{CardID: cardID}, nil).Once()
	suite.mockCardRepo.On("FindExpenseRowsByCardID", ctx, cardID).Return(rows, nil).Once()

	groups, err := suite.service.GetExpensesByCard(ctx, cardID)

	suite.Require().NoError(err)
	suite.Require().Len(groups, 3)
	suite.Equal("Enero 2025", groups[0].Month)
	suite.Equal("Diciembre 2024", groups[1].Month)
	suite.Equal("Febrero 2024", groups[2].Month)
}

func (suite *CardServiceTestSuite) TestGetExpensesByCard_EmptyCard() {
	ctx := context.Background()
	cardID := uuid.NewString()

	suite.mockCardRepo.On("FindCardByID", ctx, cardID).Return(&domain.Card{CardID: cardID}, nil).Once()
	suite.mockCardRepo.On("FindExpenseRowsByCardID", ctx, cardID).Return([]domain.Expense{}, nil).Once()

	groups, err := suite.service.GetExpensesByCard(ctx, cardID)

	suite.Require().NoError(err)
	suite.Empty(groups)
}

func (suite *CardServiceTestSuite) TestGetExpensesByCard_CardNotFound() {
	ctx := context.Background()
	cardID := uuid.NewString()

	suite.mockCardRepo.On("FindCardByID", ctx, cardID).Return(nil, apperrors.ErrNotFound).Once()

	groups, err := suite.service.GetExpensesByCard(ctx, cardID)

	suite.Require().Error(err)
	suite.Nil(groups)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockCardRepo.AssertNotCalled(suite.T(), "FindExpenseRowsByCardID", mock.Anything, mock.Anything)
}

// --- ApproveExpenseGroup Tests ---

func (suite *CardServiceTestSuite) TestApproveExpenseGroup_Success() {
	ctx := context.Background()
	cardID := uuid.NewString()

	suite.mockCardRepo.On("FindCardByID", ctx, cardID).Return(&domain.Card{CardID: cardID}, nil).Once()
	suite.mockInvoiceRepo.On("ApproveDraftInvoicesInMonth", ctx, cardID, 2024, time.December, mock.AnythingOfType("time.Time")).Return(3, nil).Once()

	count, err := suite.service.ApproveExpenseGroup(ctx, cardID, "Diciembre 2024")

	suite.Require().NoError(err)
	suite.Equal(3, count)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *CardServiceTestSuite) TestApproveExpenseGroup_LabelCaseInsensitive() {
	ctx := context.Background()
	cardID := uuid.NewString()

	suite.mockCardRepo.On("FindCardByID", ctx, cardID).Return(&domain.Card{CardID: cardID}, nil).Once()
	suite.mockInvoiceRepo.On("ApproveDraftInvoicesInMonth", ctx, cardID, 2024, time.December, mock.AnythingOfType("time.Time")).Return(1, nil).Once()

	count, err := suite.service.ApproveExpenseGroup(ctx, cardID, "diciembre 2024")

	suite.Require().NoError(err)
	suite.Equal(1, count)
}

func (suite *CardServiceTestSuite) TestApproveExpenseGroup_InvalidLabel() {
	ctx := context.Background()
	cardID := uuid.NewString()

	suite.mockCardRepo.On("FindCardByID", ctx, cardID).Return(&domain.Card{CardID: cardID}, nil)

	for _, label := range []string{"", "Diciembre", "Frobnuary 2024", "Diciembre veinte"} {
		count, err := suite.service.ApproveExpenseGroup(ctx, cardID, label)
		suite.Require().Error(err, "label %q", label)
		suite.Zero(count)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "ApproveDraftInvoicesInMonth", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CardServiceTestSuite) TestApproveExpenseGroup_CardNotFound() {
	ctx := context.Background()
	cardID := uuid.NewString()

	suite.mockCardRepo.On("FindCardByID", ctx, cardID).Return(nil, apperrors.ErrNotFound).Once()

	count, err := suite.service.ApproveExpenseGroup(ctx, cardID, "Diciembre 2024")

	suite.Require().Error(err)
	suite.Zero(count)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CardServiceTestSuite) TestApproveExpenseGroup_RepoError() {
	ctx := context.Background()
	cardID := uuid.NewString()
	expectedErr := assert.AnError

	suite.mockCardRepo.On("FindCardByID", ctx, cardID).Return(&domain.Card{CardID: cardID}, nil).Once()
	suite.mockInvoiceRepo.On("ApproveDraftInvoicesInMonth", ctx, cardID, 2025, time.March, mock.AnythingOfType("time.Time")).Return(0, expectedErr).Once()

	count, err := suite.service.ApproveExpenseGroup(ctx, cardID, "Marzo 2025")

	suite.Require().Error(err)
	suite.Zero(count)
	suite.Contains(err.Error(), expectedErr.Error())
}

func TestCardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CardServiceTestSuite))
}
