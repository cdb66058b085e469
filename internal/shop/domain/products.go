package domain

import "context"

type ProductStatus int16

const (
	StatusAvailable ProductStatus = 1
	StatusArchived  ProductStatus = 2
)

type Product struct {
	ID     int
	Title  string
	Price  uint32
	Count  uint32
	Status ProductStatus
}

// IsAvailable reports whether the product can be sold at all:
// it must not be archived and there must be at least one unit in stock.
func (p Product) IsAvailable() bool {
	return p.Status == StatusAvailable && p.Count > 0
}

type ProductsRepository interface {
	TryGetProduct(ctx context.Context, productId int) (Product, bool, error)
	ListProducts(ctx context.Context) ([]Product, error)
}
