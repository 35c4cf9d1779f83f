package usecase

import (
	"errors"

	"sales_backoffice/internal/domain"

	"github.com/sirupsen/logrus"
)

type CustomerUseCase interface {
	CreateCustomer(customer *domain.Customer) (*domain.Customer, error)
	UpdateCustomer(customer *domain.Customer) (*domain.Customer, error)
	ListCustomers() ([]domain.Customer, error)
}

type customerUseCase struct {
	customerRepo domain.CustomerRepository
	log          *logrus.Logger
}

func NewCustomerUseCase(repo domain.CustomerRepository, logger *logrus.Logger) CustomerUseCase {
	return &customerUseCase{
		customerRepo: repo,
		log:          logger,
	}
}

func (uc *customerUseCase) CreateCustomer(customer *domain.Customer) (*domain.Customer, error) {
	if customer.Name == "" {
		uc.log.Warn("Use Case: Attempted to create customer with empty name")
		return nil, errors.New("customer name cannot be empty")
	}

	createdCustomer, err := uc.customerRepo.CreateCustomer(customer)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create customer '%s': %v", customer.Name, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Customer '%s' created successfully with ID %d", createdCustomer.Name, createdCustomer.ID)
	return createdCustomer, nil
}

func (uc *customerUseCase) UpdateCustomer(customer *domain.Customer) (*domain.Customer, error) {
	if customer.ID <= 0 {
		uc.log.Warnf("Use Case: Attempted update with invalid customer ID: %d", customer.ID)
		return nil, errors.New("invalid customer ID for update")
	}
	if customer.Name == "" {
		uc.log.Warnf("Use Case: Attempted to update customer ID %d with empty name", customer.ID)
		return nil, errors.New("customer name cannot be empty")
	}

	updatedCustomer, err := uc.customerRepo.UpdateCustomer(customer)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to update customer ID %d: %v", customer.ID, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Customer updated successfully for ID %d", updatedCustomer.ID)
	return updatedCustomer, nil
}

func (uc *customerUseCase) ListCustomers() ([]domain.Customer, error) {
	customers, err := uc.customerRepo.ListCustomers()
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list customers: %v", err)
		return nil, err
	}
	return customers, nil
}
