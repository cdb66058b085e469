package domain

import "context"

// PurchaseHandler runs the whole purchase as one atomic unit: validate
// the product against the customer's balance and the current stock, then
// decrement both stock and balance. Returns the purchased product id.
type PurchaseHandler interface {
	HandlePurchase(ctx context.Context, customerId, productId int, quantity uint32) (int, error)
}
