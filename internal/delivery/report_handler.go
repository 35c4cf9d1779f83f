package delivery

import (
	"net/http"

	"sales_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ReportHandler struct {
	useCase usecase.ReportUseCase
	log     *logrus.Logger
}

func NewReportHandler(uc usecase.ReportUseCase, logger *logrus.Logger) *ReportHandler {
	return &ReportHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *ReportHandler) RegisterRoutes(router gin.IRouter) {
	reports := router.Group("/reports")
	{
		reports.GET("/monthly-sales", h.MonthlySales)
		reports.GET("/sales-by-category", h.SalesByCategory)
		reports.GET("/summary", h.Summary)
	}
}

func (h *ReportHandler) MonthlySales(c *gin.Context) {
	report, err := h.useCase.MonthlySales()
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Failed to compute monthly sales report: %v", err)
		ErrorResponse(c, statusCode, "Failed to retrieve monthly sales report: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Monthly sales report retrieved successfully", report)
}

func (h *ReportHandler) SalesByCategory(c *gin.Context) {
	report, err := h.useCase.SalesByCategory()
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Failed to compute sales-by-category report: %v", err)
		ErrorResponse(c, statusCode, "Failed to retrieve sales-by-category report: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Sales-by-category report retrieved successfully", report)
}

func (h *ReportHandler) Summary(c *gin.Context) {
	summary, err := h.useCase.Summary()
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Failed to compute dashboard summary: %v", err)
		ErrorResponse(c, statusCode, "Failed to retrieve dashboard summary: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Dashboard summary retrieved successfully", summary)
}
