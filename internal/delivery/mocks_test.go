package delivery

import (
	"sales_backoffice/internal/domain"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

// MockTransactionUseCase implements usecase.TransactionUseCase for testing.
type MockTransactionUseCase struct {
	Transaction *domain.Transaction
	Summaries   []domain.TransactionSummary
	Details     []domain.TransactionDetail
	Err         error

	CheckoutCalled bool
}

func (m *MockTransactionUseCase) Checkout(_ int, _ []domain.CheckoutItem) (*domain.Transaction, error) {
	m.CheckoutCalled = true
	return m.Transaction, m.Err
}

func (m *MockTransactionUseCase) ListTransactions() ([]domain.TransactionSummary, error) {
	return m.Summaries, m.Err
}

func (m *MockTransactionUseCase) GetTransactionDetails(_ int) ([]domain.TransactionDetail, error) {
	return m.Details, m.Err
}

// MockCategoryUseCase implements usecase.CategoryUseCase for testing.
type MockCategoryUseCase struct {
	Category   *domain.Category
	Categories []domain.Category
	Err        error
}

func (m *MockCategoryUseCase) CreateCategory(category *domain.Category) (*domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	category.ID = 1
	return category, nil
}

func (m *MockCategoryUseCase) DeleteCategory(_ int) error {
	return m.Err
}

func (m *MockCategoryUseCase) ListCategories() ([]domain.Category, error) {
	return m.Categories, m.Err
}

// MockProductUseCase implements usecase.ProductUseCase for testing.
type MockProductUseCase struct {
	Product  *domain.Product
	Products []domain.Product
	Err      error
}

func (m *MockProductUseCase) CreateProduct(product *domain.Product) (*domain.Product, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	product.ID = 1
	return product, nil
}

func (m *MockProductUseCase) GetProductByID(_ int) (*domain.Product, error) {
	return m.Product, m.Err
}

func (m *MockProductUseCase) UpdateProduct(product *domain.Product) (*domain.Product, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return product, nil
}

func (m *MockProductUseCase) DeleteProduct(_ int) error {
	return m.Err
}

func (m *MockProductUseCase) ListProducts() ([]domain.Product, error) {
	return m.Products, m.Err
}
