package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"sales_backoffice/internal/domain"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type postgresProductRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresProductRepository(db *sql.DB, logger *logrus.Logger) domain.ProductRepository {
	return &postgresProductRepository{
		db:  db,
		log: logger,
	}
}

func (r *postgresProductRepository) CreateProduct(product *domain.Product) (*domain.Product, error) {
	query := `
        INSERT INTO products (name, description, price, stock, category_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id`
	err := r.db.QueryRow(query, product.Name, product.Description, product.Price, product.Stock, product.CategoryID).Scan(&product.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			r.log.Warnf("Attempted to create product with non-existent category ID: %d", product.CategoryID)
			return nil, fmt.Errorf("category with id %d does not exist", product.CategoryID)
		}
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23514" {
			r.log.Warnf("Check constraint violation for product '%s': %s", product.Name, pqErr.Message)
			return nil, fmt.Errorf("product data constraint violation: %s", pqErr.Message)
		}
		r.log.Errorf("Failed to create product '%s': %v", product.Name, err)
		return nil, fmt.Errorf("could not create product: %w", err)
	}
	r.log.Infof("Product created successfully with ID: %d, Name: %s", product.ID, product.Name)
	return product, nil
}

func (r *postgresProductRepository) GetProductByID(id int) (*domain.Product, error) {
	query := `
        SELECT id, name, description, price, stock, category_id
        FROM products
        WHERE id = $1`
	product := &domain.Product{}
	var description sql.NullString

	err := r.db.QueryRow(query, id).Scan(
		&product.ID,
		&product.Name,
		&description,
		&product.Price,
		&product.Stock,
		&product.CategoryID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Product with ID %d not found", id)
			return nil, fmt.Errorf("product with id %d not found", id)
		}
		r.log.Errorf("Failed to get product by ID %d: %v", id, err)
		return nil, fmt.Errorf("could not get product by id: %w", err)
	}
	product.Description = description.String

	return product, nil
}

func (r *postgresProductRepository) UpdateProduct(product *domain.Product) (*domain.Product, error) {
	query := `
        UPDATE products
        SET name = $1, description = $2, price = $3, stock = $4, category_id = $5
        WHERE id = $6`
	result, err := r.db.Exec(query, product.Name, product.Description, product.Price, product.Stock, product.CategoryID, product.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			r.log.Warnf("Attempted to update product ID %d with non-existent category ID: %d", product.ID, product.CategoryID)
			return nil, fmt.Errorf("category with id %d does not exist", product.CategoryID)
		}
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23514" {
			r.log.Warnf("Check constraint violation for product update ID %d: %s", product.ID, pqErr.Message)
			return nil, fmt.Errorf("product data constraint violation: %s", pqErr.Message)
		}
		r.log.Errorf("Failed to update product ID %d: %v", product.ID, err)
		return nil, fmt.Errorf("could not update product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after updating product ID %d: %v", product.ID, err)
		return nil, fmt.Errorf("could not confirm product update: %w", err)
	}
	if rowsAffected == 0 {
		r.log.Warnf("Product with ID %d not found for update", product.ID)
		return nil, fmt.Errorf("product with id %d not found for update", product.ID)
	}

	r.log.Infof("Product updated successfully with ID: %d", product.ID)
	return product, nil
}

func (r *postgresProductRepository) DeleteProduct(id int) error {
	query := `DELETE FROM products WHERE id = $1`
	result, err := r.db.Exec(query, id)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			r.log.Warnf("Attempted to delete product ID %d that is still referenced by transactions", id)
			return fmt.Errorf("product with id %d is still in use by existing transactions", id)
		}
		r.log.Errorf("Failed to delete product ID %d: %v", id, err)
		return fmt.Errorf("could not delete product: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after deleting product ID %d: %v", id, err)
		return fmt.Errorf("could not confirm product deletion: %w", err)
	}
	if rowsAffected == 0 {
		r.log.Warnf("Attempted to delete non-existent product ID %d", id)
		return fmt.Errorf("product with id %d not found for deletion", id)
	}
	r.log.Infof("Product deleted successfully with ID: %d", id)
	return nil
}

func (r *postgresProductRepository) ListProducts() ([]domain.Product, error) {
	query := `
        SELECT p.id, p.name, p.description, p.price, p.stock, p.category_id, c.name
        FROM products p
        JOIN categories c ON p.category_id = c.id
        ORDER BY p.id ASC`
	rows, err := r.db.Query(query)
	if err != nil {
		r.log.Errorf("Failed to list products: %v", err)
		return nil, fmt.Errorf("could not list products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var product domain.Product
		var description sql.NullString
		if err := rows.Scan(&product.ID, &product.Name, &description, &product.Price, &product.Stock, &product.CategoryID, &product.CategoryName); err != nil {
			r.log.Errorf("Failed to scan product row: %v", err)
			return nil, fmt.Errorf("error scanning product data: %w", err)
		}
		product.Description = description.String
		products = append(products, product)
	}
	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during products list iteration: %v", err)
		return nil, fmt.Errorf("error iterating products: %w", err)
	}
	r.log.Infof("Retrieved %d products", len(products))
	return products, nil
}
