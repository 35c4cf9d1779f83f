package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"sales_backoffice/internal/domain"

	"github.com/sirupsen/logrus"
)

type postgresCustomerRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresCustomerRepository(db *sql.DB, logger *logrus.Logger) domain.CustomerRepository {
	return &postgresCustomerRepository{
		db:  db,
		log: logger,
	}
}

func (r *postgresCustomerRepository) CreateCustomer(customer *domain.Customer) (*domain.Customer, error) {
	query := `
        INSERT INTO customers (name, email, address, phone)
        VALUES ($1, $2, $3, $4)
        RETURNING id`
	err := r.db.QueryRow(query, customer.Name, customer.Email, customer.Address, customer.Phone).Scan(&customer.ID)
	if err != nil {
		r.log.Errorf("Failed to create customer '%s': %v", customer.Name, err)
		return nil, fmt.Errorf("could not create customer: %w", err)
	}
	r.log.Infof("Customer created successfully with ID: %d, Name: %s", customer.ID, customer.Name)
	return customer, nil
}

func (r *postgresCustomerRepository) GetCustomerByID(id int) (*domain.Customer, error) {
	query := `SELECT id, name, email, address, phone FROM customers WHERE id = $1`
	customer := &domain.Customer{}
	var email, address, phone sql.NullString
	err := r.db.QueryRow(query, id).Scan(&customer.ID, &customer.Name, &email, &address, &phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Customer with ID %d not found", id)
			return nil, fmt.Errorf("customer with id %d not found", id)
		}
		r.log.Errorf("Failed to get customer by ID %d: %v", id, err)
		return nil, fmt.Errorf("could not get customer by id: %w", err)
	}
	customer.Email = email.String
	customer.Address = address.String
	customer.Phone = phone.String
	return customer, nil
}

func (r *postgresCustomerRepository) UpdateCustomer(customer *domain.Customer) (*domain.Customer, error) {
	query := `
        UPDATE customers
        SET name = $1, email = $2, address = $3, phone = $4
        WHERE id = $5`
	result, err := r.db.Exec(query, customer.Name, customer.Email, customer.Address, customer.Phone, customer.ID)
	if err != nil {
		r.log.Errorf("Failed to update customer ID %d: %v", customer.ID, err)
		return nil, fmt.Errorf("could not update customer: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after updating customer ID %d: %v", customer.ID, err)
		return nil, fmt.Errorf("could not confirm customer update: %w", err)
	}
	if rowsAffected == 0 {
		r.log.Warnf("Customer with ID %d not found for update", customer.ID)
		return nil, fmt.Errorf("customer with id %d not found for update", customer.ID)
	}

	r.log.Infof("Customer updated successfully with ID: %d", customer.ID)
	return customer, nil
}

func (r *postgresCustomerRepository) ListCustomers() ([]domain.Customer, error) {
	query := `SELECT id, name, email, address, phone FROM customers ORDER BY id ASC`
	rows, err := r.db.Query(query)
	if err != nil {
		r.log.Errorf("Failed to list customers: %v", err)
		return nil, fmt.Errorf("could not list customers: %w", err)
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		var customer domain.Customer
		var email, address, phone sql.NullString
		if err := rows.Scan(&customer.ID, &customer.Name, &email, &address, &phone); err != nil {
			r.log.Errorf("Failed to scan customer row: %v", err)
			return nil, fmt.Errorf("error scanning customer data: %w", err)
		}
		customer.Email = email.String
		customer.Address = address.String
		customer.Phone = phone.String
		customers = append(customers, customer)
	}

	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during customers list iteration: %v", err)
		return nil, fmt.Errorf("error iterating customers: %w", err)
	}

	r.log.Infof("Retrieved %d customers", len(customers))
	return customers, nil
}
