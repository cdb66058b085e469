package application

import (
	"context"

	"github.com/youngwishes/shop-service/internal/shop/domain"
)

type PurchaseCase struct {
	purchaseHandler domain.PurchaseHandler
}

func NewPurchaseCase(purchaseHandler domain.PurchaseHandler) *PurchaseCase {
	return &PurchaseCase{
		purchaseHandler: purchaseHandler,
	}
}

// BuyProduct purchases quantity units of the product on behalf of the
// already authenticated customer. Quantity is trusted to be positive;
// the transport layer rejects non-positive values before they get here.
func (pc *PurchaseCase) BuyProduct(ctx context.Context, customer domain.Customer, productId int, quantity uint32) (int, error) {
	boughtId, err := pc.purchaseHandler.HandlePurchase(ctx, customer.ID, productId, quantity)
	if err != nil {
		return 0, err
	}

	return boughtId, nil
}
