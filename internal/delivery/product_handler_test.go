package delivery

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sales_backoffice/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupProductRouter(uc *MockProductUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewProductHandler(uc, testLogger()).RegisterRoutes(router.Group("/api"))
	return router
}

func TestCreateProductEndpoint_MissingCategory(t *testing.T) {
	router := setupProductRouter(&MockProductUseCase{
		Err: fmt.Errorf("product category is required and its ID must be positive"),
	})

	body := `{"name": "Widget", "price": 12.5, "stock": 10}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateProductEndpoint_Created(t *testing.T) {
	router := setupProductRouter(&MockProductUseCase{})

	body := `{"name": "Widget", "description": "A widget", "price": 12.5, "stock": 10, "category_id": 2}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Widget")
}

func TestGetProductEndpoint_NotFound(t *testing.T) {
	router := setupProductRouter(&MockProductUseCase{Err: fmt.Errorf("product with id 99 not found")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/products/99", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateProductEndpoint_NotFound(t *testing.T) {
	router := setupProductRouter(&MockProductUseCase{Err: fmt.Errorf("product with id 99 not found for update")})

	body := `{"name": "Widget", "price": 12.5, "stock": 10, "category_id": 2}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/products/99", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteProductEndpoint_InvalidID(t *testing.T) {
	router := setupProductRouter(&MockProductUseCase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/products/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListProductsEndpoint(t *testing.T) {
	router := setupProductRouter(&MockProductUseCase{Products: []domain.Product{
		{ID: 1, Name: "Widget", CategoryName: "Widgets"},
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "category_name")
}
