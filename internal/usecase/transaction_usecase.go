package usecase

import (
	"errors"
	"fmt"

	"sales_backoffice/internal/domain"

	"github.com/sirupsen/logrus"
)

type TransactionUseCase interface {
	Checkout(customerID int, items []domain.CheckoutItem) (*domain.Transaction, error)
	ListTransactions() ([]domain.TransactionSummary, error)
	GetTransactionDetails(id int) ([]domain.TransactionDetail, error)
}

type transactionUseCase struct {
	transactionRepo domain.TransactionRepository
	customerRepo    domain.CustomerRepository
	log             *logrus.Logger
}

func NewTransactionUseCase(tRepo domain.TransactionRepository, cRepo domain.CustomerRepository, logger *logrus.Logger) TransactionUseCase {
	return &transactionUseCase{
		transactionRepo: tRepo,
		customerRepo:    cRepo,
		log:             logger,
	}
}

// Checkout validates the cart shape and the customer reference, then hands the
// stock checks and all writes to the repository, which runs them in one
// database transaction.
func (uc *transactionUseCase) Checkout(customerID int, items []domain.CheckoutItem) (*domain.Transaction, error) {
	if customerID <= 0 {
		uc.log.Warnf("Use Case: Checkout attempted with invalid customer ID: %d", customerID)
		return nil, errors.New("invalid customer ID")
	}
	if len(items) == 0 {
		uc.log.Warn("Use Case: Checkout attempted with empty cart")
		return nil, errors.New("transaction must contain at least one item")
	}
	for i, item := range items {
		if item.ProductID <= 0 {
			return nil, fmt.Errorf("item %d: invalid product ID", i)
		}
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("item %d (product %d): %w", i, item.ProductID, domain.ErrInvalidQuantity)
		}
	}

	if _, err := uc.customerRepo.GetCustomerByID(customerID); err != nil {
		uc.log.Warnf("Use Case: Customer ID %d not found for checkout: %v", customerID, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Starting checkout for customer %d with %d items", customerID, len(items))
	transaction, err := uc.transactionRepo.CreateTransaction(customerID, items)
	if err != nil {
		uc.log.Errorf("Use Case: Checkout failed for customer %d: %v", customerID, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Checkout completed for customer %d, transaction %d, total %.2f",
		customerID, transaction.ID, transaction.Total)
	return transaction, nil
}

func (uc *transactionUseCase) ListTransactions() ([]domain.TransactionSummary, error) {
	summaries, err := uc.transactionRepo.ListTransactions()
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list transactions: %v", err)
		return nil, err
	}
	return summaries, nil
}

func (uc *transactionUseCase) GetTransactionDetails(id int) ([]domain.TransactionDetail, error) {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted to get details with invalid transaction ID: %d", id)
		return nil, errors.New("invalid transaction ID")
	}

	// The join below returns no rows for an unknown transaction, so the header
	// existence check is what produces the 404.
	if _, err := uc.transactionRepo.GetTransactionByID(id); err != nil {
		uc.log.Warnf("Use Case: Transaction ID %d not found for details: %v", id, err)
		return nil, err
	}

	details, err := uc.transactionRepo.GetTransactionDetails(id)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to get details for transaction ID %d: %v", id, err)
		return nil, err
	}
	return details, nil
}
