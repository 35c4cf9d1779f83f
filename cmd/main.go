package main

import (
	"net/http"
	"os"
	"strings"

	"sales_backoffice/config"
	"sales_backoffice/internal/delivery"
	"sales_backoffice/internal/repository"
	"sales_backoffice/internal/usecase"
	"sales_backoffice/pkg/db"
	"sales_backoffice/pkg/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// HTML content for the index page
const htmlIndexPageContent = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Sales Back Office API</title>
    <style>
        body { font-family: Helvetica, Arial, sans-serif; line-height: 1.6; padding: 20px; background-color: #f9f9f9; color: #333; }
        h1, h2 { border-bottom: 1px solid #ccc; padding-bottom: 5px; }
        ul { list-style: none; padding-left: 0; }
        li { margin-bottom: 15px; background-color: #fff; padding: 10px; border: 1px solid #eee; border-radius: 4px; }
        code { background-color: #e8e8e8; padding: 3px 6px; border-radius: 3px; font-family: Consolas, Monaco, monospace; }
        .method { font-weight: bold; display: inline-block; width: 60px; }
        .method-post { color: #49cc90; }
        .method-get { color: #61affe; }
        .method-put { color: #fca130; }
        .method-delete { color: #f93e3e; }
        a { color: #007bff; text-decoration: none; }
        a:hover { text-decoration: underline; }
    </style>
</head>
<body>
    <h1>Sales Back Office API</h1>

    <h2>Categories</h2>
    <ul>
        <li><span class="method method-get">GET</span> <code><a href="/api/categories">/api/categories</a></code> - List all categories.</li>
        <li><span class="method method-post">POST</span> <code>/api/categories</code> - Create a category. Body: <code>{"name": "string"}</code></li>
        <li><span class="method method-delete">DELETE</span> <code>/api/categories/{id}</code> - Delete a category.</li>
    </ul>

    <h2>Customers</h2>
    <ul>
        <li><span class="method method-get">GET</span> <code><a href="/api/customers">/api/customers</a></code> - List all customers.</li>
        <li><span class="method method-post">POST</span> <code>/api/customers</code> - Create a customer. Body: <code>{"name": "string", "email": "string", "address": "string", "phone": "string"}</code></li>
        <li><span class="method method-put">PUT</span> <code>/api/customers/{id}</code> - Update a customer.</li>
    </ul>

    <h2>Products</h2>
    <ul>
        <li><span class="method method-get">GET</span> <code><a href="/api/products">/api/products</a></code> - List products with category names.</li>
        <li><span class="method method-get">GET</span> <code>/api/products/{id}</code> - Retrieve a product.</li>
        <li><span class="method method-post">POST</span> <code>/api/products</code> - Create a product. Body: <code>{"name": "string", "description": "string", "price": float64, "stock": int, "category_id": int}</code></li>
        <li><span class="method method-put">PUT</span> <code>/api/products/{id}</code> - Update a product.</li>
        <li><span class="method method-delete">DELETE</span> <code>/api/products/{id}</code> - Delete a product.</li>
    </ul>

    <h2>Transactions</h2>
    <ul>
        <li><span class="method method-post">POST</span> <code>/api/transactions</code> - Checkout. Body: <code>{"customer_id": int, "items": [{"product_id": int, "quantity": int}]}</code></li>
        <li><span class="method method-get">GET</span> <code><a href="/api/transactions">/api/transactions</a></code> - Transaction history.</li>
        <li><span class="method method-get">GET</span> <code>/api/transactions/{id}/details</code> - Line items of a transaction.</li>
    </ul>

    <h2>Reports</h2>
    <ul>
        <li><span class="method method-get">GET</span> <code><a href="/api/reports/monthly-sales">/api/reports/monthly-sales</a></code> - Revenue per month.</li>
        <li><span class="method method-get">GET</span> <code><a href="/api/reports/sales-by-category">/api/reports/sales-by-category</a></code> - Revenue per category.</li>
        <li><span class="method method-get">GET</span> <code><a href="/api/reports/summary">/api/reports/summary</a></code> - Dashboard summary.</li>
    </ul>
</body>
</html>
`

func serveIndexPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(htmlIndexPageContent))
}

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.LoadConfig(logger)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warnf("Invalid log level '%s', falling back to info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	logger.Info("Starting Sales Back Office Service...")

	// --- Database Connection ---
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("FATAL: Failed to connect to database: %v", err)
	}
	defer database.Close()
	logger.Info("Database connection established.")

	if err := db.RunMigrations(database, cfg.MigrationsPath); err != nil {
		logger.Fatalf("FATAL: Failed to run migrations: %v", err)
	}
	logger.Info("Database migrations applied.")

	// --- Dependency Injection ---
	// Repository Layer
	categoryRepo := repository.NewPostgresCategoryRepository(database, logger)
	customerRepo := repository.NewPostgresCustomerRepository(database, logger)
	productRepo := repository.NewPostgresProductRepository(database, logger)
	transactionRepo := repository.NewPostgresTransactionRepository(database, logger)
	reportRepo := repository.NewPostgresReportRepository(database, logger)
	logger.Info("Repositories initialized.")

	// Usecase Layer
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo, logger)
	customerUseCase := usecase.NewCustomerUseCase(customerRepo, logger)
	productUseCase := usecase.NewProductUseCase(productRepo, categoryRepo, logger)
	transactionUseCase := usecase.NewTransactionUseCase(transactionRepo, customerRepo, logger)
	reportUseCase := usecase.NewReportUseCase(reportRepo, cfg.LowStockThreshold, logger)
	logger.Info("Use cases initialized.")

	categoryHandler := delivery.NewCategoryHandler(categoryUseCase, logger)
	customerHandler := delivery.NewCustomerHandler(customerUseCase, logger)
	productHandler := delivery.NewProductHandler(productUseCase, logger)
	transactionHandler := delivery.NewTransactionHandler(transactionUseCase, logger)
	reportHandler := delivery.NewReportHandler(reportUseCase, logger)
	logger.Info("Handlers initialized.")

	serverMetrics := metrics.NewServerMetrics("api")

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(delivery.RequestLogger(logger))
	router.Use(delivery.Metrics(serverMetrics))

	corsConfig := cors.DefaultConfig()
	if cfg.CORSOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(cfg.CORSOrigins, ",")
	}
	router.Use(cors.New(corsConfig))

	// Route Registration
	router.GET("/", serveIndexPage)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/health", func(c *gin.Context) {
		if err := database.Ping(); err != nil {
			logger.Errorf("Health check failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	categoryHandler.RegisterRoutes(api)
	customerHandler.RegisterRoutes(api)
	productHandler.RegisterRoutes(api)
	transactionHandler.RegisterRoutes(api)
	reportHandler.RegisterRoutes(api)
	logger.Info("API Routes registered.")

	// Start Server
	logger.Infof("Starting server on port %s", cfg.HTTPPort)
	if err := router.Run(cfg.HTTPPort); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
