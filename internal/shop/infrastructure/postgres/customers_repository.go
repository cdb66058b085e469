package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/youngwishes/shop-service/internal/pkg/database"
	"github.com/youngwishes/shop-service/internal/shop/domain"
)

type CustomersRepository struct {
	querier database.Querier
}

func NewCustomersRepository(querier database.Querier) *CustomersRepository {
	return &CustomersRepository{
		querier: querier,
	}
}

func (cr *CustomersRepository) TryGetCustomer(ctx context.Context, customerId int) (domain.Customer, bool, error) {
	findCustomerSQL := `SELECT id, user_id, balance FROM customers WHERE id = $1`

	return cr.scanCustomer(cr.querier.QueryRow(ctx, findCustomerSQL, customerId))
}

func (cr *CustomersRepository) TryGetCustomerByUserID(ctx context.Context, userId int) (domain.Customer, bool, error) {
	findCustomerSQL := `SELECT id, user_id, balance FROM customers WHERE user_id = $1`

	return cr.scanCustomer(cr.querier.QueryRow(ctx, findCustomerSQL, userId))
}

func (cr *CustomersRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	listCustomersSQL := `SELECT id, user_id, balance FROM customers ORDER BY id`

	rows, err := cr.querier.Query(ctx, listCustomersSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	customers := make([]domain.Customer, 0)
	for rows.Next() {
		var customer domain.Customer
		err := rows.Scan(&customer.ID, &customer.UserID, &customer.Balance)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}

		customers = append(customers, customer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate customer rows: %w", err)
	}

	return customers, nil
}

func (cr *CustomersRepository) scanCustomer(row pgx.Row) (domain.Customer, bool, error) {
	var customer domain.Customer
	err := row.Scan(&customer.ID, &customer.UserID, &customer.Balance)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Customer{}, false, nil
		}

		return domain.Customer{}, false, fmt.Errorf("failed to find customer: %w", err)
	}

	return customer, true, nil
}
