package delivery

import (
	"net/http"
	"strconv"

	"sales_backoffice/internal/domain"
	"sales_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CategoryHandler struct {
	useCase usecase.CategoryUseCase
	log     *logrus.Logger
}

func NewCategoryHandler(uc usecase.CategoryUseCase, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *CategoryHandler) RegisterRoutes(router gin.IRouter) {
	categories := router.Group("/categories")
	{
		categories.GET("", h.ListCategories)
		categories.POST("", h.CreateCategory)
		categories.DELETE("/:id", h.DeleteCategory)
	}
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for create category: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	createdCategory, err := h.useCase.CreateCategory(&domain.Category{Name: req.Name})
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Failed to create category '%s': %v", req.Name, err)
		ErrorResponse(c, statusCode, "Failed to create category: "+err.Error())
		return
	}

	h.log.Infof("Category created successfully: ID %d, Name %s", createdCategory.ID, createdCategory.Name)
	SuccessResponse(c, http.StatusCreated, "Category created successfully", createdCategory)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		h.log.Warnf("Invalid category ID parameter for delete: %s", idStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid category ID format")
		return
	}

	err = h.useCase.DeleteCategory(id)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Warnf("Failed to delete category ID %d: %v", id, err)
		ErrorResponse(c, statusCode, "Failed to delete category: "+err.Error())
		return
	}

	h.log.Infof("Category deleted successfully: ID %d", id)
	SuccessResponse(c, http.StatusOK, "Category deleted successfully", nil)
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.useCase.ListCategories()
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Failed to list categories: %v", err)
		ErrorResponse(c, statusCode, "Failed to retrieve categories: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Categories retrieved successfully", categories)
}
