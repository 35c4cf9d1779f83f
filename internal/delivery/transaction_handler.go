package delivery

import (
	"net/http"
	"strconv"

	"sales_backoffice/internal/domain"
	"sales_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type TransactionHandler struct {
	useCase usecase.TransactionUseCase
	log     *logrus.Logger
}

func NewTransactionHandler(uc usecase.TransactionUseCase, logger *logrus.Logger) *TransactionHandler {
	return &TransactionHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *TransactionHandler) RegisterRoutes(router gin.IRouter) {
	transactions := router.Group("/transactions")
	{
		transactions.POST("", h.Checkout)
		transactions.GET("", h.ListTransactions)
		transactions.GET("/:id/details", h.GetTransactionDetails)
	}
}

type checkoutRequest struct {
	CustomerID int                   `json:"customer_id"`
	Items      []domain.CheckoutItem `json:"items"`
}

func (h *TransactionHandler) Checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for checkout: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.CustomerID <= 0 || len(req.Items) == 0 {
		ErrorResponse(c, http.StatusBadRequest, "Incomplete transaction data: customer_id and at least one item are required")
		return
	}

	transaction, err := h.useCase.Checkout(req.CustomerID, req.Items)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Checkout failed for customer %d: %v", req.CustomerID, err)
		ErrorResponse(c, statusCode, "Failed to create transaction: "+err.Error())
		return
	}

	h.log.Infof("Transaction %d created successfully for customer %d", transaction.ID, req.CustomerID)
	SuccessResponse(c, http.StatusCreated, "Transaction created successfully", transaction)
}

func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	summaries, err := h.useCase.ListTransactions()
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Failed to list transactions: %v", err)
		ErrorResponse(c, statusCode, "Failed to retrieve transactions: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Transactions retrieved successfully", summaries)
}

func (h *TransactionHandler) GetTransactionDetails(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		h.log.Warnf("Invalid transaction ID parameter: %s", idStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid transaction ID format")
		return
	}

	details, err := h.useCase.GetTransactionDetails(id)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Warnf("Failed to get details for transaction ID %d: %v", id, err)
		ErrorResponse(c, statusCode, "Failed to retrieve transaction details: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Transaction details retrieved successfully", details)
}
