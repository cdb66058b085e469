package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/youngwishes/shop-service/internal/pkg/database"
	"github.com/youngwishes/shop-service/internal/pkg/logging"
	"github.com/youngwishes/shop-service/internal/shop/domain"
)

type PurchaseHandler struct {
	txBeginner database.TxBeginner
	logger     logging.Logger
}

func NewPurchaseHandler(txBeginner database.TxBeginner, logger logging.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		txBeginner: txBeginner,
		logger:     logger,
	}
}

// HandlePurchase validates and applies the purchase inside a single
// transaction. Both touched rows are locked with FOR UPDATE (product
// first, then customer, always in that order), so concurrent purchases
// against the same product or customer serialize instead of overselling.
// Checks run strictly in order: product lookup, affordability,
// availability, stock sufficiency.
func (ph *PurchaseHandler) HandlePurchase(ctx context.Context, customerId, productId int, quantity uint32) (int, error) {
	tx, err := ph.txBeginner.BeginTx(ctx, pgx.TxOptions{
		IsoLevel: pgx.ReadCommitted,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			ph.logger.Error("failed to rollback purchase transaction", "error", err)
		}
	}()

	product, err := GetAndLockProduct(ctx, tx, productId, quantity)
	if err != nil {
		return 0, err
	}

	customer, err := GetAndLockCustomer(ctx, tx, customerId)
	if err != nil {
		return 0, err
	}

	if quantity > customer.MaxAffordableQuantity(product) {
		return 0, &domain.NotEnoughBalanceError{ProductID: productId, Quantity: quantity}
	}

	if !product.IsAvailable() {
		return 0, &domain.ProductNotAvailableError{ProductID: productId, Quantity: quantity}
	}

	if quantity > product.Count {
		return 0, &domain.OutOfStockError{ProductID: productId, Quantity: quantity}
	}

	err = ApplyPurchase(ctx, tx, customer.ID, product, quantity)
	if err != nil {
		return 0, err
	}

	err = tx.Commit(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return product.ID, nil
}

// ApplyPurchase decrements the product stock and the customer balance.
// Must run on a transaction that already holds both row locks.
func ApplyPurchase(ctx context.Context, executor database.Executor, customerId int, product domain.Product, quantity uint32) error {
	updateCountSQL := `UPDATE products SET count = count - $1 WHERE id = $2`
	_, err := executor.Exec(ctx, updateCountSQL, quantity, product.ID)
	if err != nil {
		return fmt.Errorf("failed to update product count: %w", err)
	}

	updateBalanceSQL := `UPDATE customers SET balance = balance - $1 WHERE id = $2`
	_, err = executor.Exec(ctx, updateBalanceSQL, quantity*product.Price, customerId)
	if err != nil {
		return fmt.Errorf("failed to update customer balance: %w", err)
	}

	return nil
}

func GetAndLockProduct(ctx context.Context, querier database.Querier, productId int, quantity uint32) (domain.Product, error) {
	lockProductSQL := `SELECT id, title, price, count, status FROM products WHERE id = $1 FOR UPDATE`

	var product domain.Product
	err := querier.QueryRow(ctx, lockProductSQL, productId).
		Scan(&product.ID, &product.Title, &product.Price, &product.Count, &product.Status)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, &domain.ProductNotFoundError{ProductID: productId, Quantity: quantity}
		}

		return domain.Product{}, fmt.Errorf("failed to lock product row: %w", err)
	}

	return product, nil
}

func GetAndLockCustomer(ctx context.Context, querier database.Querier, customerId int) (domain.Customer, error) {
	lockCustomerSQL := `SELECT id, balance FROM customers WHERE id = $1 FOR UPDATE`

	var customer domain.Customer
	err := querier.QueryRow(ctx, lockCustomerSQL, customerId).Scan(&customer.ID, &customer.Balance)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Customer{}, &domain.CustomerNotFoundError{CustomerID: customerId}
		}

		return domain.Customer{}, fmt.Errorf("failed to lock customer row: %w", err)
	}

	return customer, nil
}
