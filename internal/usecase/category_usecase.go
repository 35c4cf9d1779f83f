package usecase

import (
	"errors"

	"sales_backoffice/internal/domain"

	"github.com/sirupsen/logrus"
)

type CategoryUseCase interface {
	CreateCategory(category *domain.Category) (*domain.Category, error)
	DeleteCategory(id int) error
	ListCategories() ([]domain.Category, error)
}

type categoryUseCase struct {
	categoryRepo domain.CategoryRepository
	log          *logrus.Logger
}

func NewCategoryUseCase(repo domain.CategoryRepository, logger *logrus.Logger) CategoryUseCase {
	return &categoryUseCase{
		categoryRepo: repo,
		log:          logger,
	}
}

func (uc *categoryUseCase) CreateCategory(category *domain.Category) (*domain.Category, error) {
	if category.Name == "" {
		uc.log.Warn("Use Case: Attempted to create category with empty name")
		return nil, errors.New("category name cannot be empty")
	}

	createdCategory, err := uc.categoryRepo.CreateCategory(category)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create category '%s': %v", category.Name, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Category '%s' created successfully with ID %d", createdCategory.Name, createdCategory.ID)
	return createdCategory, nil
}

func (uc *categoryUseCase) DeleteCategory(id int) error {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted delete with invalid category ID: %d", id)
		return errors.New("invalid category ID for delete")
	}

	err := uc.categoryRepo.DeleteCategory(id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to delete category ID %d: %v", id, err)
		return err
	}

	uc.log.Infof("Use Case: Category deleted successfully for ID %d", id)
	return nil
}

func (uc *categoryUseCase) ListCategories() ([]domain.Category, error) {
	categories, err := uc.categoryRepo.ListCategories()
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list categories: %v", err)
		return nil, err
	}
	return categories, nil
}
