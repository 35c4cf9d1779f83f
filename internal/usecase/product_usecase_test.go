package usecase

import (
	"fmt"
	"testing"

	"sales_backoffice/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProduct_Success(t *testing.T) {
	productRepo := &MockProductRepository{}
	categoryRepo := &MockCategoryRepository{Category: &domain.Category{ID: 2, Name: "Widgets"}}
	uc := NewProductUseCase(productRepo, categoryRepo, testLogger())

	product, err := uc.CreateProduct(&domain.Product{
		Name:       "Widget",
		Price:      12.5,
		Stock:      10,
		CategoryID: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, product.ID)
	assert.Equal(t, "Widget", productRepo.Created.Name)
}

func TestCreateProduct_MissingCategory(t *testing.T) {
	productRepo := &MockProductRepository{}
	uc := NewProductUseCase(productRepo, &MockCategoryRepository{}, testLogger())

	_, err := uc.CreateProduct(&domain.Product{Name: "Widget", Price: 12.5, Stock: 10})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "category is required")
	assert.Nil(t, productRepo.Created)
}

func TestCreateProduct_UnknownCategory(t *testing.T) {
	productRepo := &MockProductRepository{}
	categoryRepo := &MockCategoryRepository{Err: fmt.Errorf("category with id 9 not found")}
	uc := NewProductUseCase(productRepo, categoryRepo, testLogger())

	_, err := uc.CreateProduct(&domain.Product{Name: "Widget", Price: 12.5, Stock: 10, CategoryID: 9})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
	assert.Nil(t, productRepo.Created)
}

func TestCreateProduct_InvalidFields(t *testing.T) {
	categoryRepo := &MockCategoryRepository{Category: &domain.Category{ID: 2}}

	cases := []struct {
		name    string
		product domain.Product
		wantMsg string
	}{
		{"empty name", domain.Product{Price: 1, Stock: 1, CategoryID: 2}, "name cannot be empty"},
		{"zero price", domain.Product{Name: "w", Stock: 1, CategoryID: 2}, "price must be positive"},
		{"negative stock", domain.Product{Name: "w", Price: 1, Stock: -1, CategoryID: 2}, "stock cannot be negative"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewProductUseCase(&MockProductRepository{}, categoryRepo, testLogger())
			_, err := uc.CreateProduct(&tc.product)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestUpdateProduct_InvalidID(t *testing.T) {
	uc := NewProductUseCase(&MockProductRepository{}, &MockCategoryRepository{}, testLogger())

	_, err := uc.UpdateProduct(&domain.Product{Name: "Widget", Price: 1, Stock: 1, CategoryID: 2})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid product ID")
}

func TestDeleteProduct_NotFoundPropagates(t *testing.T) {
	productRepo := &MockProductRepository{Err: fmt.Errorf("product with id 8 not found for deletion")}
	uc := NewProductUseCase(productRepo, &MockCategoryRepository{}, testLogger())

	err := uc.DeleteProduct(8)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.Equal(t, 8, productRepo.DeletedID)
}

func TestListProducts_Success(t *testing.T) {
	productRepo := &MockProductRepository{Products: []domain.Product{
		{ID: 1, Name: "Widget", CategoryName: "Widgets"},
	}}
	uc := NewProductUseCase(productRepo, &MockCategoryRepository{}, testLogger())

	products, err := uc.ListProducts()

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Widgets", products[0].CategoryName)
}
