package usecase

import (
	"fmt"
	"testing"

	"sales_backoffice/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategory_EmptyName(t *testing.T) {
	uc := NewCategoryUseCase(&MockCategoryRepository{}, testLogger())

	_, err := uc.CreateCategory(&domain.Category{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be empty")
}

func TestCreateCategory_Success(t *testing.T) {
	uc := NewCategoryUseCase(&MockCategoryRepository{}, testLogger())

	category, err := uc.CreateCategory(&domain.Category{Name: "Widgets"})

	require.NoError(t, err)
	assert.Equal(t, 1, category.ID)
}

func TestDeleteCategory_InvalidID(t *testing.T) {
	repo := &MockCategoryRepository{}
	uc := NewCategoryUseCase(repo, testLogger())

	err := uc.DeleteCategory(-3)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid category ID")
	assert.Zero(t, repo.DeletedID)
}

func TestDeleteCategory_NotFoundPropagates(t *testing.T) {
	repo := &MockCategoryRepository{Err: fmt.Errorf("category with id 4 not found for deletion")}
	uc := NewCategoryUseCase(repo, testLogger())

	err := uc.DeleteCategory(4)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.Equal(t, 4, repo.DeletedID)
}

func TestUpdateCustomer_EmptyName(t *testing.T) {
	uc := NewCustomerUseCase(&MockCustomerRepository{}, testLogger())

	_, err := uc.UpdateCustomer(&domain.Customer{ID: 1})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be empty")
}

func TestReportSummary_UsesConfiguredThreshold(t *testing.T) {
	repo := &MockReportRepository{Dashboard: &domain.DashboardSummary{TotalProducts: 3, LowStock: 1}}
	uc := NewReportUseCase(repo, 5, testLogger())

	summary, err := uc.Summary()

	require.NoError(t, err)
	assert.Equal(t, 5, repo.SummaryThreshold)
	assert.Equal(t, 3, summary.TotalProducts)
	assert.Equal(t, 1, summary.LowStock)
}
