package usecase

import (
	"sales_backoffice/internal/domain"

	"github.com/sirupsen/logrus"
)

type ReportUseCase interface {
	MonthlySales() ([]domain.MonthlySalesRow, error)
	SalesByCategory() ([]domain.CategorySalesRow, error)
	Summary() (*domain.DashboardSummary, error)
}

type reportUseCase struct {
	reportRepo        domain.ReportRepository
	lowStockThreshold int
	log               *logrus.Logger
}

func NewReportUseCase(repo domain.ReportRepository, lowStockThreshold int, logger *logrus.Logger) ReportUseCase {
	return &reportUseCase{
		reportRepo:        repo,
		lowStockThreshold: lowStockThreshold,
		log:               logger,
	}
}

func (uc *reportUseCase) MonthlySales() ([]domain.MonthlySalesRow, error) {
	report, err := uc.reportRepo.MonthlySales()
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to compute monthly sales: %v", err)
		return nil, err
	}
	return report, nil
}

func (uc *reportUseCase) SalesByCategory() ([]domain.CategorySalesRow, error) {
	report, err := uc.reportRepo.SalesByCategory()
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to compute sales by category: %v", err)
		return nil, err
	}
	return report, nil
}

func (uc *reportUseCase) Summary() (*domain.DashboardSummary, error) {
	summary, err := uc.reportRepo.Summary(uc.lowStockThreshold)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to compute dashboard summary: %v", err)
		return nil, err
	}
	return summary, nil
}
