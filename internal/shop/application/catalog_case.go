package application

import (
	"context"

	"github.com/youngwishes/shop-service/internal/shop/domain"
)

type CatalogCase struct {
	products domain.ProductsRepository
}

func NewCatalogCase(products domain.ProductsRepository) *CatalogCase {
	return &CatalogCase{
		products: products,
	}
}

func (cc *CatalogCase) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return cc.products.ListProducts(ctx)
}

func (cc *CatalogCase) GetProduct(ctx context.Context, productId int) (domain.Product, error) {
	product, found, err := cc.products.TryGetProduct(ctx, productId)
	if err != nil {
		return domain.Product{}, err
	}

	if !found {
		return domain.Product{}, &domain.ProductNotFoundError{ProductID: productId}
	}

	return product, nil
}
