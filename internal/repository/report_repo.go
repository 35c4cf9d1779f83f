package repository

import (
	"database/sql"
	"fmt"

	"sales_backoffice/internal/domain"

	"github.com/sirupsen/logrus"
)

type postgresReportRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresReportRepository(db *sql.DB, logger *logrus.Logger) domain.ReportRepository {
	return &postgresReportRepository{
		db:  db,
		log: logger,
	}
}

func (r *postgresReportRepository) MonthlySales() ([]domain.MonthlySalesRow, error) {
	query := `
        SELECT
            to_char(transaction_date, 'YYYY-MM') AS month,
            SUM(total) AS total_revenue
        FROM transactions
        WHERE status = $1
        GROUP BY month
        ORDER BY month ASC`
	rows, err := r.db.Query(query, domain.StatusCompleted)
	if err != nil {
		r.log.Errorf("Failed to query monthly sales report: %v", err)
		return nil, fmt.Errorf("could not retrieve monthly sales: %w", err)
	}
	defer rows.Close()

	report := []domain.MonthlySalesRow{}
	for rows.Next() {
		var row domain.MonthlySalesRow
		if err := rows.Scan(&row.Month, &row.TotalRevenue); err != nil {
			r.log.Errorf("Failed to scan monthly sales row: %v", err)
			return nil, fmt.Errorf("error scanning monthly sales data: %w", err)
		}
		report = append(report, row)
	}
	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during monthly sales iteration: %v", err)
		return nil, fmt.Errorf("error iterating monthly sales: %w", err)
	}

	r.log.Infof("Retrieved %d monthly sales rows", len(report))
	return report, nil
}

func (r *postgresReportRepository) SalesByCategory() ([]domain.CategorySalesRow, error) {
	query := `
        SELECT
            c.name,
            SUM(ti.quantity * ti.unit_price) AS total_sales
        FROM transaction_items ti
        JOIN products p ON ti.product_id = p.id
        JOIN categories c ON p.category_id = c.id
        JOIN transactions t ON ti.transaction_id = t.id
        WHERE t.status = $1
        GROUP BY c.name
        ORDER BY total_sales DESC`
	rows, err := r.db.Query(query, domain.StatusCompleted)
	if err != nil {
		r.log.Errorf("Failed to query sales-by-category report: %v", err)
		return nil, fmt.Errorf("could not retrieve sales by category: %w", err)
	}
	defer rows.Close()

	report := []domain.CategorySalesRow{}
	for rows.Next() {
		var row domain.CategorySalesRow
		if err := rows.Scan(&row.CategoryName, &row.TotalSales); err != nil {
			r.log.Errorf("Failed to scan sales-by-category row: %v", err)
			return nil, fmt.Errorf("error scanning sales by category data: %w", err)
		}
		report = append(report, row)
	}
	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during sales-by-category iteration: %v", err)
		return nil, fmt.Errorf("error iterating sales by category: %w", err)
	}

	r.log.Infof("Retrieved %d sales-by-category rows", len(report))
	return report, nil
}

func (r *postgresReportRepository) Summary(lowStockThreshold int) (*domain.DashboardSummary, error) {
	summary := &domain.DashboardSummary{}

	if err := r.db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&summary.TotalProducts); err != nil {
		r.log.Errorf("Failed to count products for summary: %v", err)
		return nil, fmt.Errorf("could not count products: %w", err)
	}

	todayQuery := `
        SELECT COUNT(*)
        FROM transactions
        WHERE transaction_date::date = CURRENT_DATE AND status = $1`
	if err := r.db.QueryRow(todayQuery, domain.StatusCompleted).Scan(&summary.TodayTransactions); err != nil {
		r.log.Errorf("Failed to count today's transactions for summary: %v", err)
		return nil, fmt.Errorf("could not count today's transactions: %w", err)
	}

	revenueQuery := `
        SELECT COALESCE(SUM(total), 0)
        FROM transactions
        WHERE to_char(transaction_date, 'YYYY-MM') = to_char(CURRENT_DATE, 'YYYY-MM') AND status = $1`
	if err := r.db.QueryRow(revenueQuery, domain.StatusCompleted).Scan(&summary.MonthlyRevenue); err != nil {
		r.log.Errorf("Failed to compute monthly revenue for summary: %v", err)
		return nil, fmt.Errorf("could not compute monthly revenue: %w", err)
	}

	lowStockQuery := `SELECT COUNT(*) FROM products WHERE stock < $1`
	if err := r.db.QueryRow(lowStockQuery, lowStockThreshold).Scan(&summary.LowStock); err != nil {
		r.log.Errorf("Failed to count low-stock products for summary: %v", err)
		return nil, fmt.Errorf("could not count low-stock products: %w", err)
	}

	r.log.Infof("Dashboard summary computed: %d products, %d transactions today, %.2f monthly revenue, %d low-stock",
		summary.TotalProducts, summary.TodayTransactions, summary.MonthlyRevenue, summary.LowStock)
	return summary, nil
}
