package delivery

import (
	"net/http"
	"strconv"

	"sales_backoffice/internal/domain"
	"sales_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CustomerHandler struct {
	useCase usecase.CustomerUseCase
	log     *logrus.Logger
}

func NewCustomerHandler(uc usecase.CustomerUseCase, logger *logrus.Logger) *CustomerHandler {
	return &CustomerHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *CustomerHandler) RegisterRoutes(router gin.IRouter) {
	customers := router.Group("/customers")
	{
		customers.GET("", h.ListCustomers)
		customers.POST("", h.CreateCustomer)
		customers.PUT("/:id", h.UpdateCustomer)
	}
}

type customerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for create customer: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	customer := &domain.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		Phone:   req.Phone,
	}
	createdCustomer, err := h.useCase.CreateCustomer(customer)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Failed to create customer '%s': %v", req.Name, err)
		ErrorResponse(c, statusCode, "Failed to create customer: "+err.Error())
		return
	}

	h.log.Infof("Customer created successfully: ID %d, Name %s", createdCustomer.ID, createdCustomer.Name)
	SuccessResponse(c, http.StatusCreated, "Customer created successfully", createdCustomer)
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		h.log.Warnf("Invalid customer ID parameter for update: %s", idStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for update customer ID %d: %v", id, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	customer := &domain.Customer{
		ID:      id,
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		Phone:   req.Phone,
	}
	updatedCustomer, err := h.useCase.UpdateCustomer(customer)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Failed to update customer ID %d: %v", id, err)
		ErrorResponse(c, statusCode, "Failed to update customer: "+err.Error())
		return
	}

	h.log.Infof("Customer updated successfully: ID %d", updatedCustomer.ID)
	SuccessResponse(c, http.StatusOK, "Customer updated successfully", updatedCustomer)
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.useCase.ListCustomers()
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Failed to list customers: %v", err)
		ErrorResponse(c, statusCode, "Failed to retrieve customers: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Customers retrieved successfully", customers)
}
