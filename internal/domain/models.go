package domain

import "time"

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Customer struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	CategoryID  int     `json:"category_id"`
	// CategoryName is populated on list reads joined against categories.
	CategoryName string `json:"category_name,omitempty"`
}

type Transaction struct {
	ID              int               `json:"id"`
	CustomerID      int               `json:"customer_id"`
	TransactionDate time.Time         `json:"transaction_date"`
	Total           float64           `json:"total"`
	Status          string            `json:"status"`
	Items           []TransactionItem `json:"items,omitempty"`
}

type TransactionItem struct {
	ID            int     `json:"id"`
	TransactionID int     `json:"transaction_id"`
	ProductID     int     `json:"product_id"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
}

// CheckoutItem is one requested cart line; the unit price is always taken
// from the product row at checkout time, never from the client.
type CheckoutItem struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// TransactionSummary is one row of the transaction history listing: the
// header joined with the customer name and an aggregated line description.
type TransactionSummary struct {
	ID              int       `json:"id"`
	TransactionDate time.Time `json:"transaction_date"`
	Total           float64   `json:"total"`
	Status          string    `json:"status"`
	CustomerName    string    `json:"customer_name"`
	ProductDetail   string    `json:"product_detail"`
}

// TransactionDetail is one line of a single transaction joined with its product.
type TransactionDetail struct {
	ID          int     `json:"id"`
	ProductName string  `json:"product_name"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Subtotal    float64 `json:"subtotal"`
}

const StatusCompleted = "Completed"
