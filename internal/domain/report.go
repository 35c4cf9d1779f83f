package domain

type MonthlySalesRow struct {
	Month        string  `json:"month"`
	TotalRevenue float64 `json:"total_revenue"`
}

type CategorySalesRow struct {
	CategoryName string  `json:"category_name"`
	TotalSales   float64 `json:"total_sales"`
}

type DashboardSummary struct {
	TotalProducts     int     `json:"total_products"`
	TodayTransactions int     `json:"today_transactions"`
	MonthlyRevenue    float64 `json:"monthly_revenue"`
	LowStock          int     `json:"low_stock"`
}

type ReportRepository interface {
	MonthlySales() ([]MonthlySalesRow, error)
	SalesByCategory() ([]CategorySalesRow, error)
	Summary(lowStockThreshold int) (*DashboardSummary, error)
}
