package delivery

import (
	"net/http"
	"strconv"

	"sales_backoffice/internal/domain"
	"sales_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ProductHandler struct {
	useCase usecase.ProductUseCase
	log     *logrus.Logger
}

func NewProductHandler(uc usecase.ProductUseCase, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *ProductHandler) RegisterRoutes(router gin.IRouter) {
	products := router.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.GET("/:id", h.GetProductByID)
		products.POST("", h.CreateProduct)
		products.PUT("/:id", h.UpdateProduct)
		products.DELETE("/:id", h.DeleteProduct)
	}
}

type productRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	CategoryID  int     `json:"category_id"`
}

func (r *productRequest) toDomain(id int) *domain.Product {
	return &domain.Product{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Stock:       r.Stock,
		CategoryID:  r.CategoryID,
	}
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for create product: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	createdProduct, err := h.useCase.CreateProduct(req.toDomain(0))
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Failed to create product '%s': %v", req.Name, err)
		ErrorResponse(c, statusCode, "Failed to create product: "+err.Error())
		return
	}

	h.log.Infof("Product created successfully: ID %d, Name %s", createdProduct.ID, createdProduct.Name)
	SuccessResponse(c, http.StatusCreated, "Product created successfully", createdProduct)
}

func (h *ProductHandler) GetProductByID(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		h.log.Warnf("Invalid product ID parameter: %s", idStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	product, err := h.useCase.GetProductByID(id)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Warnf("Failed to get product by ID %d: %v", id, err)
		ErrorResponse(c, statusCode, "Failed to retrieve product: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Product retrieved successfully", product)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		h.log.Warnf("Invalid product ID parameter for update: %s", idStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for update product ID %d: %v", id, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	updatedProduct, err := h.useCase.UpdateProduct(req.toDomain(id))
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Failed to update product ID %d: %v", id, err)
		ErrorResponse(c, statusCode, "Failed to update product: "+err.Error())
		return
	}

	h.log.Infof("Product updated successfully: ID %d", updatedProduct.ID)
	SuccessResponse(c, http.StatusOK, "Product updated successfully", updatedProduct)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		h.log.Warnf("Invalid product ID parameter for delete: %s", idStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	err = h.useCase.DeleteProduct(id)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Warnf("Failed to delete product ID %d: %v", id, err)
		ErrorResponse(c, statusCode, "Failed to delete product: "+err.Error())
		return
	}

	h.log.Infof("Product deleted successfully: ID %d", id)
	SuccessResponse(c, http.StatusOK, "Product deleted successfully", nil)
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.useCase.ListProducts()
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Failed to list products: %v", err)
		ErrorResponse(c, statusCode, "Failed to retrieve products: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Products retrieved successfully", products)
}
