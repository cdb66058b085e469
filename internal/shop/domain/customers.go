package domain

import "context"

type Customer struct {
	ID      int
	UserID  *int
	Balance uint32
}

// MaxAffordableQuantity returns the largest quantity of the product the
// customer's balance covers. Products with a zero price are treated as
// non-purchasable and always yield 0.
func (c Customer) MaxAffordableQuantity(product Product) uint32 {
	if product.Price == 0 {
		return 0
	}

	return c.Balance / product.Price
}

type CustomersRepository interface {
	TryGetCustomer(ctx context.Context, customerId int) (Customer, bool, error)
	TryGetCustomerByUserID(ctx context.Context, userId int) (Customer, bool, error)
	ListCustomers(ctx context.Context) ([]Customer, error)
}
