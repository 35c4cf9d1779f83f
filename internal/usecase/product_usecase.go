package usecase

import (
	"errors"
	"fmt"

	"sales_backoffice/internal/domain"

	"github.com/sirupsen/logrus"
)

type ProductUseCase interface {
	CreateProduct(product *domain.Product) (*domain.Product, error)
	GetProductByID(id int) (*domain.Product, error)
	UpdateProduct(product *domain.Product) (*domain.Product, error)
	DeleteProduct(id int) error
	ListProducts() ([]domain.Product, error)
}

type productUseCase struct {
	productRepo  domain.ProductRepository
	categoryRepo domain.CategoryRepository
	log          *logrus.Logger
}

func NewProductUseCase(pRepo domain.ProductRepository, cRepo domain.CategoryRepository, logger *logrus.Logger) ProductUseCase {
	return &productUseCase{
		productRepo:  pRepo,
		categoryRepo: cRepo,
		log:          logger,
	}
}

func (uc *productUseCase) validateProduct(product *domain.Product) error {
	if product.Name == "" {
		return errors.New("product name cannot be empty")
	}
	if product.Price <= 0 {
		return errors.New("product price must be positive")
	}
	if product.Stock < 0 {
		return errors.New("product stock cannot be negative")
	}
	if product.CategoryID <= 0 {
		return errors.New("product category is required and its ID must be positive")
	}
	return nil
}

func (uc *productUseCase) CreateProduct(product *domain.Product) (*domain.Product, error) {
	if err := uc.validateProduct(product); err != nil {
		uc.log.Warnf("Use Case: Invalid product data for create: %v", err)
		return nil, err
	}
	if _, err := uc.categoryRepo.GetCategoryByID(product.CategoryID); err != nil {
		uc.log.Warnf("Use Case: Category ID %d not found during product creation: %v", product.CategoryID, err)
		return nil, fmt.Errorf("category with id %d does not exist", product.CategoryID)
	}

	createdProduct, err := uc.productRepo.CreateProduct(product)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create product '%s': %v", product.Name, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Product '%s' created successfully with ID %d", createdProduct.Name, createdProduct.ID)
	return createdProduct, nil
}

func (uc *productUseCase) GetProductByID(id int) (*domain.Product, error) {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted to get product with invalid ID: %d", id)
		return nil, errors.New("invalid product ID")
	}

	product, err := uc.productRepo.GetProductByID(id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get product ID %d: %v", id, err)
		return nil, err
	}

	return product, nil
}

func (uc *productUseCase) UpdateProduct(product *domain.Product) (*domain.Product, error) {
	if product.ID <= 0 {
		uc.log.Warnf("Use Case: Attempted update with invalid product ID: %d", product.ID)
		return nil, errors.New("invalid product ID for update")
	}
	if err := uc.validateProduct(product); err != nil {
		uc.log.Warnf("Use Case: Invalid product data for update ID %d: %v", product.ID, err)
		return nil, err
	}
	if _, err := uc.categoryRepo.GetCategoryByID(product.CategoryID); err != nil {
		uc.log.Warnf("Use Case: Category ID %d not found during product update for ID %d: %v", product.CategoryID, product.ID, err)
		return nil, fmt.Errorf("category with id %d does not exist", product.CategoryID)
	}

	updatedProduct, err := uc.productRepo.UpdateProduct(product)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to update product ID %d: %v", product.ID, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Product updated successfully for ID %d", updatedProduct.ID)
	return updatedProduct, nil
}

func (uc *productUseCase) DeleteProduct(id int) error {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted delete with invalid product ID: %d", id)
		return errors.New("invalid product ID for delete")
	}

	err := uc.productRepo.DeleteProduct(id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to delete product ID %d: %v", id, err)
		return err
	}

	uc.log.Infof("Use Case: Product deleted successfully for ID %d", id)
	return nil
}

func (uc *productUseCase) ListProducts() ([]domain.Product, error) {
	products, err := uc.productRepo.ListProducts()
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products: %v", err)
		return nil, fmt.Errorf("could not retrieve products: %w", err)
	}
	return products, nil
}
