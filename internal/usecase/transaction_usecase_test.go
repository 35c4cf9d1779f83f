package usecase

import (
	"errors"
	"fmt"
	"testing"

	"sales_backoffice/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckout_Success(t *testing.T) {
	transactionRepo := &MockTransactionRepository{
		Transaction: &domain.Transaction{
			ID:         42,
			CustomerID: 7,
			Total:      25.0,
			Status:     domain.StatusCompleted,
			Items: []domain.TransactionItem{
				{ID: 1, TransactionID: 42, ProductID: 3, Quantity: 2, UnitPrice: 12.5},
			},
		},
	}
	customerRepo := &MockCustomerRepository{Customer: &domain.Customer{ID: 7, Name: "Alice"}}
	uc := NewTransactionUseCase(transactionRepo, customerRepo, testLogger())

	items := []domain.CheckoutItem{{ProductID: 3, Quantity: 2}}
	transaction, err := uc.Checkout(7, items)

	require.NoError(t, err)
	require.NotNil(t, transaction)
	assert.Equal(t, 42, transaction.ID)
	assert.Equal(t, 25.0, transaction.Total)
	assert.True(t, transactionRepo.CreateCalled)
	assert.Equal(t, 7, transactionRepo.CreatedWithCustomer)
	assert.Equal(t, items, transactionRepo.CreatedWithItems)
}

func TestCheckout_InvalidCustomerID(t *testing.T) {
	transactionRepo := &MockTransactionRepository{}
	uc := NewTransactionUseCase(transactionRepo, &MockCustomerRepository{}, testLogger())

	_, err := uc.Checkout(0, []domain.CheckoutItem{{ProductID: 1, Quantity: 1}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid customer ID")
	assert.False(t, transactionRepo.CreateCalled)
}

func TestCheckout_EmptyCart(t *testing.T) {
	transactionRepo := &MockTransactionRepository{}
	uc := NewTransactionUseCase(transactionRepo, &MockCustomerRepository{}, testLogger())

	_, err := uc.Checkout(7, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one item")
	assert.False(t, transactionRepo.CreateCalled)
}

func TestCheckout_NonPositiveQuantity(t *testing.T) {
	transactionRepo := &MockTransactionRepository{}
	uc := NewTransactionUseCase(transactionRepo, &MockCustomerRepository{}, testLogger())

	_, err := uc.Checkout(7, []domain.CheckoutItem{{ProductID: 3, Quantity: 0}})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidQuantity))
	assert.False(t, transactionRepo.CreateCalled)
}

func TestCheckout_UnknownCustomer(t *testing.T) {
	transactionRepo := &MockTransactionRepository{}
	customerRepo := &MockCustomerRepository{Err: fmt.Errorf("customer with id 99 not found")}
	uc := NewTransactionUseCase(transactionRepo, customerRepo, testLogger())

	_, err := uc.Checkout(99, []domain.CheckoutItem{{ProductID: 3, Quantity: 1}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.False(t, transactionRepo.CreateCalled)
}

func TestCheckout_RepositoryFailurePropagates(t *testing.T) {
	repoErr := fmt.Errorf("%w for product \"Widget\": available 1, requested 3", domain.ErrInsufficientStock)
	transactionRepo := &MockTransactionRepository{Err: repoErr}
	customerRepo := &MockCustomerRepository{Customer: &domain.Customer{ID: 7, Name: "Alice"}}
	uc := NewTransactionUseCase(transactionRepo, customerRepo, testLogger())

	transaction, err := uc.Checkout(7, []domain.CheckoutItem{{ProductID: 3, Quantity: 3}})

	require.Error(t, err)
	assert.Nil(t, transaction)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
	assert.Contains(t, err.Error(), "Widget")
}

func TestGetTransactionDetails_UnknownTransaction(t *testing.T) {
	transactionRepo := &MockTransactionRepository{Err: fmt.Errorf("transaction with id 5 not found")}
	uc := NewTransactionUseCase(transactionRepo, &MockCustomerRepository{}, testLogger())

	_, err := uc.GetTransactionDetails(5)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetTransactionDetails_Success(t *testing.T) {
	transactionRepo := &MockTransactionRepository{
		Transaction: &domain.Transaction{ID: 5},
		Details: []domain.TransactionDetail{
			{ID: 1, ProductName: "Widget", Quantity: 2, UnitPrice: 12.5, Subtotal: 25.0},
		},
	}
	uc := NewTransactionUseCase(transactionRepo, &MockCustomerRepository{}, testLogger())

	details, err := uc.GetTransactionDetails(5)

	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "Widget", details[0].ProductName)
	assert.Equal(t, 25.0, details[0].Subtotal)
}
