package usecase

import (
	"sales_backoffice/internal/domain"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

// MockCategoryRepository implements domain.CategoryRepository for testing.
type MockCategoryRepository struct {
	Category   *domain.Category
	Categories []domain.Category
	Err        error
	DeletedID  int
}

func (m *MockCategoryRepository) CreateCategory(category *domain.Category) (*domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	category.ID = 1
	return category, nil
}

func (m *MockCategoryRepository) GetCategoryByID(_ int) (*domain.Category, error) {
	return m.Category, m.Err
}

func (m *MockCategoryRepository) DeleteCategory(id int) error {
	m.DeletedID = id
	return m.Err
}

func (m *MockCategoryRepository) ListCategories() ([]domain.Category, error) {
	return m.Categories, m.Err
}

// MockCustomerRepository implements domain.CustomerRepository for testing.
type MockCustomerRepository struct {
	Customer  *domain.Customer
	Customers []domain.Customer
	Err       error
}

func (m *MockCustomerRepository) CreateCustomer(customer *domain.Customer) (*domain.Customer, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	customer.ID = 1
	return customer, nil
}

func (m *MockCustomerRepository) GetCustomerByID(_ int) (*domain.Customer, error) {
	return m.Customer, m.Err
}

func (m *MockCustomerRepository) UpdateCustomer(customer *domain.Customer) (*domain.Customer, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return customer, nil
}

func (m *MockCustomerRepository) ListCustomers() ([]domain.Customer, error) {
	return m.Customers, m.Err
}

// MockProductRepository implements domain.ProductRepository for testing.
type MockProductRepository struct {
	Product   *domain.Product
	Products  []domain.Product
	Err       error
	DeletedID int
	Created   *domain.Product
}

func (m *MockProductRepository) CreateProduct(product *domain.Product) (*domain.Product, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	product.ID = 1
	m.Created = product
	return product, nil
}

func (m *MockProductRepository) GetProductByID(_ int) (*domain.Product, error) {
	return m.Product, m.Err
}

func (m *MockProductRepository) UpdateProduct(product *domain.Product) (*domain.Product, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return product, nil
}

func (m *MockProductRepository) DeleteProduct(id int) error {
	m.DeletedID = id
	return m.Err
}

func (m *MockProductRepository) ListProducts() ([]domain.Product, error) {
	return m.Products, m.Err
}

// MockTransactionRepository implements domain.TransactionRepository for testing.
type MockTransactionRepository struct {
	Transaction *domain.Transaction
	Summaries   []domain.TransactionSummary
	Details     []domain.TransactionDetail
	Err         error
	DetailsErr  error

	// CreatedWith captures the arguments of the last CreateTransaction call.
	CreatedWithCustomer int
	CreatedWithItems    []domain.CheckoutItem
	CreateCalled        bool
}

func (m *MockTransactionRepository) CreateTransaction(customerID int, items []domain.CheckoutItem) (*domain.Transaction, error) {
	m.CreateCalled = true
	m.CreatedWithCustomer = customerID
	m.CreatedWithItems = items
	return m.Transaction, m.Err
}

func (m *MockTransactionRepository) ListTransactions() ([]domain.TransactionSummary, error) {
	return m.Summaries, m.Err
}

func (m *MockTransactionRepository) GetTransactionByID(_ int) (*domain.Transaction, error) {
	return m.Transaction, m.Err
}

func (m *MockTransactionRepository) GetTransactionDetails(_ int) ([]domain.TransactionDetail, error) {
	return m.Details, m.DetailsErr
}

// MockReportRepository implements domain.ReportRepository for testing.
type MockReportRepository struct {
	Monthly    []domain.MonthlySalesRow
	ByCategory []domain.CategorySalesRow
	Dashboard  *domain.DashboardSummary
	Err        error

	SummaryThreshold int
}

func (m *MockReportRepository) MonthlySales() ([]domain.MonthlySalesRow, error) {
	return m.Monthly, m.Err
}

func (m *MockReportRepository) SalesByCategory() ([]domain.CategorySalesRow, error) {
	return m.ByCategory, m.Err
}

func (m *MockReportRepository) Summary(lowStockThreshold int) (*domain.DashboardSummary, error) {
	m.SummaryThreshold = lowStockThreshold
	return m.Dashboard, m.Err
}
