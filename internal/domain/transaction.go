package domain

// TransactionRepository persists checkout results and serves the history views.
// CreateTransaction runs the whole checkout inside a single database
// transaction: it locks every referenced product row, validates quantities
// against live stock, computes the total from the locked-read prices, writes
// the header and its lines, and decrements stock. Any failure rolls the whole
// thing back.
type TransactionRepository interface {
	CreateTransaction(customerID int, items []CheckoutItem) (*Transaction, error)
	ListTransactions() ([]TransactionSummary, error)
	GetTransactionByID(id int) (*Transaction, error)
	GetTransactionDetails(id int) ([]TransactionDetail, error)
}
