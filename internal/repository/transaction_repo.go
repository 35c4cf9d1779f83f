package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"sales_backoffice/internal/domain"

	"github.com/sirupsen/logrus"
)

type postgresTransactionRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresTransactionRepository(db *sql.DB, logger *logrus.Logger) domain.TransactionRepository {
	return &postgresTransactionRepository{
		db:  db,
		log: logger,
	}
}

// lockedProduct is a product row read under FOR UPDATE during checkout.
type lockedProduct struct {
	name  string
	price float64
	stock int
}

// CreateTransaction performs the whole checkout atomically. Every referenced
// product row is read with a row-level write lock, so two concurrent checkouts
// against the same product serialize and cannot jointly oversell. The unit
// price written to each line is the locked-read price, never a client value.
func (r *postgresTransactionRepository) CreateTransaction(customerID int, items []domain.CheckoutItem) (transaction *domain.Transaction, err error) {
	tx, err := r.db.Begin()
	if err != nil {
		r.log.Errorf("Failed to begin checkout transaction: %v", err)
		return nil, fmt.Errorf("could not start transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			r.log.Error("Recovered from panic during checkout, rolling back")
			_ = tx.Rollback()
			panic(p)
		} else if err != nil {
			r.log.Warnf("Rolling back checkout due to error: %v", err)
			if rbErr := tx.Rollback(); rbErr != nil {
				r.log.Errorf("Failed to rollback checkout transaction: %v", rbErr)
			}
		} else {
			if cErr := tx.Commit(); cErr != nil {
				r.log.Errorf("Failed to commit checkout transaction: %v", cErr)
				transaction = nil
				err = fmt.Errorf("failed to commit transaction: %w", cErr)
			}
		}
	}()

	// Stock validation and total computation against locked rows. Remaining
	// stock is tracked locally so duplicate product IDs across items are
	// checked against their combined demand.
	total := 0.0
	remaining := make(map[int]lockedProduct)
	lockQuery := `SELECT name, price, stock FROM products WHERE id = $1 FOR UPDATE`

	for _, item := range items {
		if item.Quantity <= 0 {
			err = fmt.Errorf("%w: product %d requested with quantity %d", domain.ErrInvalidQuantity, item.ProductID, item.Quantity)
			return nil, err
		}

		locked, ok := remaining[item.ProductID]
		if !ok {
			if scanErr := tx.QueryRow(lockQuery, item.ProductID).Scan(&locked.name, &locked.price, &locked.stock); scanErr != nil {
				if errors.Is(scanErr, sql.ErrNoRows) {
					err = fmt.Errorf("%w: product with id %d", domain.ErrProductNotFound, item.ProductID)
					return nil, err
				}
				r.log.Errorf("Failed to lock product %d for checkout: %v", item.ProductID, scanErr)
				err = fmt.Errorf("could not read product %d: %w", item.ProductID, scanErr)
				return nil, err
			}
		}

		if locked.stock < item.Quantity {
			err = fmt.Errorf("%w for product \"%s\": available %d, requested %d",
				domain.ErrInsufficientStock, locked.name, locked.stock, item.Quantity)
			return nil, err
		}

		locked.stock -= item.Quantity
		remaining[item.ProductID] = locked
		total += locked.price * float64(item.Quantity)
	}

	// Header insert with the computed total.
	transaction = &domain.Transaction{CustomerID: customerID, Total: total, Status: domain.StatusCompleted}
	headerQuery := `
        INSERT INTO transactions (customer_id, total, status)
        VALUES ($1, $2, $3)
        RETURNING id, transaction_date`
	err = tx.QueryRow(headerQuery, customerID, total, transaction.Status).Scan(&transaction.ID, &transaction.TransactionDate)
	if err != nil {
		r.log.Errorf("Failed to insert transaction header for customer %d: %v", customerID, err)
		return nil, fmt.Errorf("could not create transaction entry: %w", err)
	}

	// Line inserts and stock decrements.
	itemQuery := `
        INSERT INTO transaction_items (transaction_id, product_id, quantity, unit_price)
        VALUES ($1, $2, $3, $4)
        RETURNING id`
	stockQuery := `UPDATE products SET stock = stock - $1 WHERE id = $2`

	for _, item := range items {
		line := domain.TransactionItem{
			TransactionID: transaction.ID,
			ProductID:     item.ProductID,
			Quantity:      item.Quantity,
			UnitPrice:     remaining[item.ProductID].price,
		}
		err = tx.QueryRow(itemQuery, transaction.ID, item.ProductID, item.Quantity, line.UnitPrice).Scan(&line.ID)
		if err != nil {
			r.log.Errorf("Failed to insert transaction item (product_id: %d) for transaction %d: %v", item.ProductID, transaction.ID, err)
			return nil, fmt.Errorf("could not create transaction item (product_id: %d): %w", item.ProductID, err)
		}

		if _, err = tx.Exec(stockQuery, item.Quantity, item.ProductID); err != nil {
			r.log.Errorf("Failed to decrement stock for product %d: %v", item.ProductID, err)
			err = fmt.Errorf("could not decrement stock for product %d: %w", item.ProductID, err)
			return nil, err
		}
		transaction.Items = append(transaction.Items, line)
	}

	r.log.Infof("Transaction %d created successfully for customer %d with %d items, total %.2f",
		transaction.ID, customerID, len(transaction.Items), total)
	return transaction, nil
}

func (r *postgresTransactionRepository) ListTransactions() ([]domain.TransactionSummary, error) {
	query := `
        SELECT
            t.id,
            t.transaction_date,
            t.total,
            t.status,
            c.name,
            string_agg(p.name || ' (' || ti.quantity || 'x @' || ti.unit_price || ')', '; ' ORDER BY ti.id)
        FROM transactions t
        JOIN customers c ON t.customer_id = c.id
        JOIN transaction_items ti ON ti.transaction_id = t.id
        JOIN products p ON ti.product_id = p.id
        GROUP BY t.id, c.name
        ORDER BY t.transaction_date DESC`
	rows, err := r.db.Query(query)
	if err != nil {
		r.log.Errorf("Failed to list transactions: %v", err)
		return nil, fmt.Errorf("could not list transactions: %w", err)
	}
	defer rows.Close()

	summaries := []domain.TransactionSummary{}
	for rows.Next() {
		var summary domain.TransactionSummary
		if err := rows.Scan(
			&summary.ID,
			&summary.TransactionDate,
			&summary.Total,
			&summary.Status,
			&summary.CustomerName,
			&summary.ProductDetail,
		); err != nil {
			r.log.Errorf("Failed to scan transaction summary row: %v", err)
			return nil, fmt.Errorf("error scanning transaction data: %w", err)
		}
		summaries = append(summaries, summary)
	}
	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during transactions list iteration: %v", err)
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}
	r.log.Infof("Retrieved %d transactions", len(summaries))
	return summaries, nil
}

func (r *postgresTransactionRepository) GetTransactionByID(id int) (*domain.Transaction, error) {
	transaction := &domain.Transaction{}
	headerQuery := `
        SELECT id, customer_id, transaction_date, total, status
        FROM transactions
        WHERE id = $1`
	err := r.db.QueryRow(headerQuery, id).Scan(
		&transaction.ID,
		&transaction.CustomerID,
		&transaction.TransactionDate,
		&transaction.Total,
		&transaction.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Transaction with ID %d not found", id)
			return nil, fmt.Errorf("transaction with id %d not found", id)
		}
		r.log.Errorf("Failed to get transaction by ID %d: %v", id, err)
		return nil, fmt.Errorf("could not retrieve transaction: %w", err)
	}

	itemsQuery := `
        SELECT id, transaction_id, product_id, quantity, unit_price
        FROM transaction_items
        WHERE transaction_id = $1
        ORDER BY id ASC`
	rows, err := r.db.Query(itemsQuery, id)
	if err != nil {
		r.log.Errorf("Failed to query items for transaction ID %d: %v", id, err)
		return nil, fmt.Errorf("could not retrieve transaction items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.TransactionItem
		if err := rows.Scan(&item.ID, &item.TransactionID, &item.ProductID, &item.Quantity, &item.UnitPrice); err != nil {
			r.log.Errorf("Failed to scan transaction item row for transaction ID %d: %v", id, err)
			return nil, fmt.Errorf("error scanning transaction item: %w", err)
		}
		transaction.Items = append(transaction.Items, item)
	}
	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during transaction items iteration for ID %d: %v", id, err)
		return nil, fmt.Errorf("error iterating transaction items: %w", err)
	}

	return transaction, nil
}

func (r *postgresTransactionRepository) GetTransactionDetails(id int) ([]domain.TransactionDetail, error) {
	query := `
        SELECT
            ti.id,
            p.name,
            p.description,
            ti.quantity,
            ti.unit_price,
            (ti.quantity * ti.unit_price) AS subtotal
        FROM transaction_items ti
        JOIN products p ON ti.product_id = p.id
        WHERE ti.transaction_id = $1
        ORDER BY ti.id ASC`
	rows, err := r.db.Query(query, id)
	if err != nil {
		r.log.Errorf("Failed to query details for transaction ID %d: %v", id, err)
		return nil, fmt.Errorf("could not retrieve transaction details: %w", err)
	}
	defer rows.Close()

	details := []domain.TransactionDetail{}
	for rows.Next() {
		var detail domain.TransactionDetail
		var description sql.NullString
		if err := rows.Scan(&detail.ID, &detail.ProductName, &description, &detail.Quantity, &detail.UnitPrice, &detail.Subtotal); err != nil {
			r.log.Errorf("Failed to scan transaction detail row for transaction ID %d: %v", id, err)
			return nil, fmt.Errorf("error scanning transaction detail: %w", err)
		}
		detail.Description = description.String
		details = append(details, detail)
	}
	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during transaction details iteration for ID %d: %v", id, err)
		return nil, fmt.Errorf("error iterating transaction details: %w", err)
	}

	r.log.Infof("Retrieved %d detail rows for transaction ID %d", len(details), id)
	return details, nil
}
