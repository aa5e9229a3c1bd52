package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/datum-redsoft/expense-backend/internal/core/domain"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
	FindUserByIDFn func(ctx context.Context, userID string) (*domain.User, error)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if m.FindUserByIDFn != nil {
		return m.FindUserByIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock CompanyRepository ---

type MockCompanyRepository struct {
	mock.Mock
	FindCompanyByIDFn func(ctx context.Context, companyID string) (*domain.Company, error)
}

func (m *MockCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	if m.FindCompanyByIDFn != nil {
		return m.FindCompanyByIDFn(ctx, companyID)
	}
	args := m.Called(ctx, companyID)
	var company *domain.Company
	if args.Get(0) != nil {
		company = args.Get(0).(*domain.Company)
	}
	return company, args.Error(1)
}

func (m *MockCompanyRepository) FindCompanyByName(ctx context.Context, name string) (*domain.Company, error) {
	args := m.Called(ctx, name)
	var company *domain.Company
	if args.Get(0) != nil {
		company = args.Get(0).(*domain.Company)
	}
	return company, args.Error(1)
}

func (m *MockCompanyRepository) FindCompanies(ctx context.Context, limit, offset int) ([]domain.Company, error) {
	args := m.Called(ctx, limit, offset)
	var companies []domain.Company
	if args.Get(0) != nil {
		companies = args.Get(0).([]domain.Company)
	}
	return companies, args.Error(1)
}

func (m *MockCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) DeleteCompany(ctx context.Context, companyID string) error {
	args := m.Called(ctx, companyID)
	return args.Error(0)
}

// --- Mock CountryRepository ---

type MockCountryRepository struct {
	mock.Mock
}

func (m *MockCountryRepository) SaveCountry(ctx context.Context, country domain.Country) error {
	args := m.Called(ctx, country)
	return args.Error(0)
}

func (m *MockCountryRepository) FindCountryByID(ctx context.Context, countryID string) (*domain.Country, error) {
	args := m.Called(ctx, countryID)
	var country *domain.Country
	if args.Get(0) != nil {
		country = args.Get(0).(*domain.Country)
	}
	return country, args.Error(1)
}

func (m *MockCountryRepository) FindCountryByCode(ctx context.Context, code string) (*domain.Country, error) {
	args := m.Called(ctx, code)
	var country *domain.Country
	if args.Get(0) != nil {
		country = args.Get(0).(*domain.Country)
	}
	return country, args.Error(1)
}

func (m *MockCountryRepository) FindCountries(ctx context.Context, limit, offset int) ([]domain.Country, error) {
	args := m.Called(ctx, limit, offset)
	var countries []domain.Country
	if args.Get(0) != nil {
		countries = args.Get(0).([]domain.Country)
	}
	return countries, args.Error(1)
}

func (m *MockCountryRepository) UpdateCountry(ctx context.Context, country domain.Country) error {
	args := m.Called(ctx, country)
	return args.Error(0)
}

func (m *MockCountryRepository) DeleteCountry(ctx context.Context, countryID string) error {
	args := m.Called(ctx, countryID)
	return args.Error(0)
}

// --- Mock CategoryRepository ---

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	var category *domain.Category
	if args.Get(0) != nil {
		category = args.Get(0).(*domain.Category)
	}
	return category, args.Error(1)
}

func (m *MockCategoryRepository) FindCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	args := m.Called(ctx, name)
	var category *domain.Category
	if args.Get(0) != nil {
		category = args.Get(0).(*domain.Category)
	}
	return category, args.Error(1)
}

func (m *MockCategoryRepository) FindCategories(ctx context.Context, limit, offset int) ([]domain.Category, error) {
	args := m.Called(ctx, limit, offset)
	var categories []domain.Category
	if args.Get(0) != nil {
		categories = args.Get(0).([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

// --- Mock CostCenterRepository ---

type MockCostCenterRepository struct {
	mock.Mock
}

func (m *MockCostCenterRepository) SaveCostCenter(ctx context.Context, costCenter domain.CostCenter) error {
	args := m.Called(ctx, costCenter)
	return args.Error(0)
}

func (m *MockCostCenterRepository) FindCostCenterByID(ctx context.Context, costCenterID string) (*domain.CostCenter, error) {
	args := m.Called(ctx, costCenterID)
	var costCenter *domain.CostCenter
	if args.Get(0) != nil {
		costCenter = args.Get(0).(*domain.CostCenter)
	}
	return costCenter, args.Error(1)
}

func (m *MockCostCenterRepository) FindCostCenterByCode(ctx context.Context, code string) (*domain.CostCenter, error) {
	args := m.Called(ctx, code)
	var costCenter *domain.CostCenter
	if args.Get(0) != nil {
		costCenter = args.Get(0).(*domain.CostCenter)
	}
	return costCenter, args.Error(1)
}

func (m *MockCostCenterRepository) FindCostCenters(ctx context.Context, limit, offset int) ([]domain.CostCenter, error) {
	args := m.Called(ctx, limit, offset)
	var costCenters []domain.CostCenter
	if args.Get(0) != nil {
		costCenters = args.Get(0).([]domain.CostCenter)
	}
	return costCenters, args.Error(1)
}

func (m *MockCostCenterRepository) UpdateCostCenter(ctx context.Context, costCenter domain.CostCenter) error {
	args := m.Called(ctx, costCenter)
	return args.Error(0)
}

func (m *MockCostCenterRepository) DeleteCostCenter(ctx context.Context, costCenterID string) error {
	args := m.Called(ctx, costCenterID)
	return args.Error(0)
}

// --- Mock CardRepository ---

type MockCardRepository struct {
	mock.Mock
	FindCardByIDFn            func(ctx context.Context, cardID string) (*domain.Card, error)
	FindExpenseRowsByCardIDFn func(ctx context.Context, cardID string) ([]domain.Expense, error)
}

func (m *MockCardRepository) SaveCard(ctx context.Context, card domain.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockCardRepository) FindCardByID(ctx context.Context, cardID string) (*domain.Card, error) {
	if m.FindCardByIDFn != nil {
		return m.FindCardByIDFn(ctx, cardID)
	}
	args := m.Called(ctx, cardID)
	var card *domain.Card
	if args.Get(0) != nil {
		card = args.Get(0).(*domain.Card)
	}
	return card, args.Error(1)
}

func (m *MockCardRepository) ExistsByCardNumber(ctx context.Context, cardNumber string) (bool, error) {
	args := m.Called(ctx, cardNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockCardRepository) FindCards(ctx context.Context, limit, offset int) ([]domain.Card, error) {
	args := m.Called(ctx, limit, offset)
	var cards []domain.Card
	if args.Get(0) != nil {
		cards = args.Get(0).([]domain.Card)
	}
	return cards, args.Error(1)
}

func (m *MockCardRepository) FindCardsByUserID(ctx context.Context, userID string) ([]domain.Card, error) {
	args := m.Called(ctx, userID)
	var cards []domain.Card
	if args.Get(0) != nil {
		cards = args.Get(0).([]domain.Card)
	}
	return cards, args.Error(1)
}

func (m *MockCardRepository) UpdateCard(ctx context.Context, card domain.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockCardRepository) DeleteCard(ctx context.Context, cardID string) error {
	args := m.Called(ctx, cardID)
	return args.Error(0)
}

func (m *MockCardRepository) FindExpenseRowsByCardID(ctx context.Context, cardID string) ([]domain.Expense, error) {
	if m.FindExpenseRowsByCardIDFn != nil {
		return m.FindExpenseRowsByCardIDFn(ctx, cardID)
	}
	args := m.Called(ctx, cardID)
	var expenses []domain.Expense
	if args.Get(0) != nil {
		expenses = args.Get(0).([]domain.Expense)
	}
	return expenses, args.Error(1)
}

// --- Mock InvoiceRepository ---

type MockInvoiceRepository struct {
	mock.Mock
	FindInvoiceByIDFn             func(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	ApproveDraftInvoicesInMonthFn func(ctx context.Context, cardID string, year int, month time.Month, updatedAt time.Time) (int, error)
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	if m.FindInvoiceByIDFn != nil {
		return m.FindInvoiceByIDFn(ctx, invoiceID)
	}
	args := m.Called(ctx, invoiceID)
	var invoice *domain.Invoice
	if args.Get(0) != nil {
		invoice = args.Get(0).(*domain.Invoice)
	}
	return invoice, args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoices(ctx context.Context, limit, offset int) ([]domain.Invoice, error) {
	args := m.Called(ctx, limit, offset)
	var invoices []domain.Invoice
	if args.Get(0) != nil {
		invoices = args.Get(0).([]domain.Invoice)
	}
	return invoices, args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoicesByUserID(ctx context.Context, userID string) ([]domain.Invoice, error) {
	args := m.Called(ctx, userID)
	var invoices []domain.Invoice
	if args.Get(0) != nil {
		invoices = args.Get(0).([]domain.Invoice)
	}
	return invoices, args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoicesByCardID(ctx context.Context, cardID string) ([]domain.Invoice, error) {
	args := m.Called(ctx, cardID)
	var invoices []domain.Invoice
	if args.Get(0) != nil {
		invoices = args.Get(0).([]domain.Invoice)
	}
	return invoices, args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoicesByStatus(ctx context.Context, status domain.InvoiceStatus) ([]domain.Invoice, error) {
	args := m.Called(ctx, status)
	var invoices []domain.Invoice
	if args.Get(0) != nil {
		invoices = args.Get(0).([]domain.Invoice)
	}
	return invoices, args.Error(1)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, updatedAt time.Time) error {
	args := m.Called(ctx, invoiceID, status, updatedAt)
	return args.Error(0)
}

func (m *MockInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	args := m.Called(ctx, invoiceID)
	return args.Error(0)
}

func (m *MockInvoiceRepository) SaveInvoiceField(ctx context.Context, field domain.InvoiceField) error {
	args := m.Called(ctx, field)
	return args.Error(0)
}

func (m *MockInvoiceRepository) FindInvoiceFieldByID(ctx context.Context, fieldID string) (*domain.InvoiceField, error) {
	args := m.Called(ctx, fieldID)
	var field *domain.InvoiceField
	if args.Get(0) != nil {
		field = args.Get(0).(*domain.InvoiceField)
	}
	return field, args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoiceFieldByInvoiceID(ctx context.Context, invoiceID string) (*domain.InvoiceField, error) {
	args := m.Called(ctx, invoiceID)
	var field *domain.InvoiceField
	if args.Get(0) != nil {
		field = args.Get(0).(*domain.InvoiceField)
	}
	return field, args.Error(1)
}

func (m *MockInvoiceRepository) UpdateInvoiceField(ctx context.Context, field domain.InvoiceField) error {
	args := m.Called(ctx, field)
	return args.Error(0)
}

func (m *MockInvoiceRepository) DeleteInvoiceField(ctx context.Context, fieldID string) error {
	args := m.Called(ctx, fieldID)
	return args.Error(0)
}

func (m *MockInvoiceRepository) CreateInvoiceWithField(ctx context.Context, invoice domain.Invoice, field domain.InvoiceField) error {
	args := m.Called(ctx, invoice, field)
	return args.Error(0)
}

func (m *MockInvoiceRepository) UpdateInvoiceWithField(ctx context.Context, invoice domain.Invoice, field domain.InvoiceField) error {
	args := m.Called(ctx, invoice, field)
	return args.Error(0)
}

func (m *MockInvoiceRepository) ApproveDraftInvoicesInMonth(ctx context.Context, cardID string, year int, month time.Month, updatedAt time.Time) (int, error) {
	if m.ApproveDraftInvoicesInMonthFn != nil {
		return m.ApproveDraftInvoicesInMonthFn(ctx, cardID, year, month, updatedAt)
	}
	args := m.Called(ctx, cardID, year, month, updatedAt)
	return args.Int(0), args.Error(1)
}
