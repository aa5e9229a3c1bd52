package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/datum-redsoft/expense-backend/internal/apperrors"
	"github.com/datum-redsoft/expense-backend/internal/core/domain"
	portssvc "github.com/datum-redsoft/expense-backend/internal/core/ports/services"
	"github.com/datum-redsoft/expense-backend/internal/core/services"
	"github.com/datum-redsoft/expense-backend/internal/dto"
)

type InvoiceServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo    *MockInvoiceRepository
	mockUserRepo       *MockUserRepository
	mockCompanyRepo    *MockCompanyRepository
	mockCountryRepo    *MockCountryRepository
	mockCardRepo       *MockCardRepository
	mockCategoryRepo   *MockCategoryRepository
	mockCostCenterRepo *MockCostCenterRepository
	service            portssvc.InvoiceSvcFacade
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockCompanyRepo = new(MockCompanyRepository)
	suite.mockCountryRepo = new(MockCountryRepository)
	suite.mockCardRepo = new(MockCardRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.mockCostCenterRepo = new(MockCostCenterRepository)
	suite.service = services.NewInvoiceService(
		suite.mockInvoiceRepo,
		suite.mockUserRepo,
		suite.mockCompanyRepo,
		suite.mockCountryRepo,
		suite.mockCardRepo,
		suite.mockCategoryRepo,
		suite.mockCostCenterRepo,
	)
}

func (suite *InvoiceServiceTestSuite) expectReferencesOK(ctx context.Context, userID, companyID, countryID string) {
	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(&domain.User{UserID: userID}, nil)
	suite.mockCompanyRepo.On("FindCompanyByID", ctx, companyID).Return(&domain.Company{CompanyID: companyID}, nil)
	suite.mockCountryRepo.On("FindCountryByID", ctx, countryID).Return(&domain.Country{CountryID: countryID}, nil)
}

// --- CreateInvoice Tests ---

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_ForcesDraft() {
	ctx := context.Background()
	userID := uuid.NewString()
	companyID := uuid.NewString()
	countryID := uuid.NewString()

	req := dto.CreateInvoiceRequest{
		UserID:    userID,
		CompanyID: companyID,
		CountryID: countryID,
		Path:      "/okm:root/invoices/doc.pdf",
	}

	suite.expectReferencesOK(ctx, userID, companyID, countryID)
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.Status == domain.InvoiceStatusDraft
	})).Return(nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(invoice)
	suite.Equal(domain.InvoiceStatusDraft, invoice.Status)
	suite.NotEmpty(invoice.InvoiceID)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_UnknownCountry() {
	ctx := context.Background()
	userID := uuid.NewString()
	companyID := uuid.NewString()
	countryID := uuid.NewString()

	req := dto.CreateInvoiceRequest{
		UserID:    userID,
		CompanyID: companyID,
		CountryID: countryID,
		Path:      "/okm:root/invoices/doc.pdf",
	}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(&domain.User{UserID: userID}, nil).Once()
	suite.mockCompanyRepo.On("FindCompanyByID", ctx, companyID).Return(&domain.Company{CompanyID: companyID}, nil).Once()
	suite.mockCountryRepo.On("FindCountryByID", ctx, countryID).Return(nil, apperrors.ErrNotFound).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req)

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

// --- UpdateInvoiceStatus Tests ---

func (suite *InvoiceServiceTestSuite) TestUpdateInvoiceStatus_Success() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	existing := &domain.Invoice{InvoiceID: invoiceID, Status: domain.InvoiceStatusDraft}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(existing, nil).Once()
	suite.mockInvoiceRepo.On("UpdateInvoiceStatus", ctx, invoiceID, domain.InvoiceStatusProcessed, mock.AnythingOfType("time.Time")).Return(nil).Once()

	invoice, err := suite.service.UpdateInvoiceStatus(ctx, invoiceID, "PROCESSED")

	suite.Require().NoError(err)
	suite.Equal(domain.InvoiceStatusProcessed, invoice.Status)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoiceStatus_UnknownStatus() {
	ctx := context.Background()
	invoiceID := uuid.NewString()

	invoice, err := suite.service.UpdateInvoiceStatus(ctx, invoiceID, "FROBNICATED")

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "UpdateInvoiceStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- GetInvoicesByStatus Tests ---

func (suite *InvoiceServiceTestSuite) TestGetInvoicesByStatus_UnknownStatus() {
	ctx := context.Background()

	invoices, err := suite.service.GetInvoicesByStatus(ctx, "NOT_A_STATUS")

	suite.Require().Error(err)
	suite.Nil(invoices)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- CreateCompleteInvoice Tests ---

func (suite *InvoiceServiceTestSuite) TestCreateCompleteInvoice_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	companyID := uuid.NewString()
	countryID := uuid.NewString()
	categoryID := uuid.NewString()

	req := dto.CreateCompleteInvoiceRequest{
		UserID:      userID,
		CompanyID:   companyID,
		CountryID:   countryID,
		Path:        "/okm:root/invoices/doc.pdf",
		VendorName:  "ACME S.L.",
		InvoiceDate: time.Date(2024, time.December, 5, 0, 0, 0, 0, time.UTC),
		TotalAmount: decimal.RequireFromString("120.50"),
		Currency:    "EUR",
		CategoryID:  &categoryID,
	}

	suite.expectReferencesOK(ctx, userID, companyID, countryID)
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, categoryID).Return(&domain.Category{CategoryID: categoryID}, nil).Once()
	suite.mockInvoiceRepo.On("CreateInvoiceWithField", ctx,
		mock.MatchedBy(func(inv domain.Invoice) bool { return inv.Status == domain.InvoiceStatusDraft }),
		mock.MatchedBy(func(f domain.InvoiceField) bool { return f.VendorName == "ACME S.L." }),
	).Return(nil).Once()

	complete, err := suite.service.CreateCompleteInvoice(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(complete)
	suite.Equal(string(domain.InvoiceStatusDraft), complete.Invoice.Status)
	suite.Equal(complete.Invoice.InvoiceID, complete.Fields.InvoiceID)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateCompleteInvoice_NegativeAmount() {
	ctx := context.Background()

	req := dto.CreateCompleteInvoiceRequest{
		UserID:      uuid.NewString(),
		CompanyID:   uuid.NewString(),
		CountryID:   uuid.NewString(),
		Path:        "/okm:root/invoices/doc.pdf",
		VendorName:  "ACME S.L.",
		InvoiceDate: time.Date(2024, time.December, 5, 0, 0, 0, 0, time.UTC),
		TotalAmount: decimal.RequireFromString("-5.00"),
		Currency:    "EUR",
	}

	complete, err := suite.service.CreateCompleteInvoice(ctx, req)

	suite.Require().Error(err)
	suite.Nil(complete)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "CreateInvoiceWithField", mock.Anything, mock.Anything, mock.Anything)
}

// --- UpdateCompleteInvoice Tests ---

func (suite *InvoiceServiceTestSuite) TestUpdateCompleteInvoice_NegativeAmount() {
	ctx := context.Background()
	negative := decimal.RequireFromString("-0.01")

	req := dto.UpdateCompleteInvoiceRequest{
		FieldID:     uuid.NewString(),
		TotalAmount: &negative,
	}

	complete, err := suite.service.UpdateCompleteInvoice(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.Nil(complete)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "UpdateInvoiceWithField", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestUpdateCompleteInvoice_OnlyCountryMovesOnInvoice() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	fieldID := uuid.NewString()
	cardID := uuid.NewString()
	newCountryID := uuid.NewString()
	newVendor := "New Vendor"

	existingInvoice := &domain.Invoice{
		InvoiceID: invoiceID,
		UserID:    uuid.NewString(),
		CardID:    &cardID,
		CompanyID: uuid.NewString(),
		CountryID: uuid.NewString(),
		Path:      "/okm:root/invoices/original.pdf",
		Status:    domain.InvoiceStatusDraft,
	}
	existingField := &domain.InvoiceField{
		FieldID:     fieldID,
		InvoiceID:   invoiceID,
		VendorName:  "Old Vendor",
		InvoiceDate: time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC),
		TotalAmount: decimal.RequireFromString("10.00"),
		Currency:    "EUR",
	}

	req := dto.UpdateCompleteInvoiceRequest{
		FieldID:    fieldID,
		CountryID:  &newCountryID,
		VendorName: &newVendor,
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(existingInvoice, nil).Once()
	suite.mockInvoiceRepo.On("FindInvoiceFieldByID", ctx, fieldID).Return(existingField, nil).Once()
	suite.expectReferencesOK(ctx, existingInvoice.UserID, existingInvoice.CompanyID, newCountryID)
	suite.mockInvoiceRepo.On("UpdateInvoiceWithField", ctx,
		mock.MatchedBy(func(inv domain.Invoice) bool {
			return inv.CountryID == newCountryID &&
				inv.Path == "/okm:root/invoices/original.pdf" &&
				inv.CardID != nil && *inv.CardID == cardID &&
				inv.Status == domain.InvoiceStatusDraft
		}),
		mock.MatchedBy(func(f domain.InvoiceField) bool { return f.VendorName == newVendor }),
	).Return(nil).Once()

	complete, err := suite.service.UpdateCompleteInvoice(ctx, invoiceID, req)

	suite.Require().NoError(err)
	suite.Equal(newCountryID, complete.Invoice.CountryID)
	suite.Equal(newVendor, complete.Fields.VendorName)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestUpdateCompleteInvoice_FieldFromAnotherInvoice() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	fieldID := uuid.NewString()

	existingInvoice := &domain.Invoice{InvoiceID: invoiceID, UserID: uuid.NewString(), CompanyID: uuid.NewString(), CountryID: uuid.NewString()}
	strayField := &domain.InvoiceField{FieldID: fieldID, InvoiceID: uuid.NewString()}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(existingInvoice, nil).Once()
	suite.mockInvoiceRepo.On("FindInvoiceFieldByID", ctx, fieldID).Return(strayField, nil).Once()

	complete, err := suite.service.UpdateCompleteInvoice(ctx, invoiceID, dto.UpdateCompleteInvoiceRequest{FieldID: fieldID})

	suite.Require().Error(err)
	suite.Nil(complete)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "UpdateInvoiceWithField", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestUpdateCompleteInvoice_InvoiceNotFound() {
	ctx := context.Background()
	invoiceID := uuid.NewString()

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(nil, apperrors.ErrNotFound).Once()

	complete, err := suite.service.UpdateCompleteInvoice(ctx, invoiceID, dto.UpdateCompleteInvoiceRequest{FieldID: uuid.NewString()})

	suite.Require().Error(err)
	suite.Nil(complete)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- GetCompleteInvoice Tests ---

func (suite *InvoiceServiceTestSuite) TestGetCompleteInvoice_Success() {
	ctx := context.Background()
	invoiceID := uuid.NewString()

	invoice := &domain.Invoice{InvoiceID: invoiceID, Status: domain.InvoiceStatusProcessed}
	field := &domain.InvoiceField{FieldID: uuid.NewString(), InvoiceID: invoiceID, VendorName: "ACME S.L."}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(invoice, nil).Once()
	suite.mockInvoiceRepo.On("FindInvoiceFieldByInvoiceID", ctx, invoiceID).Return(field, nil).Once()

	complete, err := suite.service.GetCompleteInvoice(ctx, invoiceID)

	suite.Require().NoError(err)
	suite.Equal(invoiceID, complete.Invoice.InvoiceID)
	suite.Equal("ACME S.L.", complete.Fields.VendorName)
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
