package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/youngwishes/shop-service/internal/pkg/database"
	"github.com/youngwishes/shop-service/internal/shop/domain"
)

type ProductsRepository struct {
	querier database.Querier
}

func NewProductsRepository(querier database.Querier) *ProductsRepository {
	return &ProductsRepository{
		querier: querier,
	}
}

func (pr *ProductsRepository) TryGetProduct(ctx context.Context, productId int) (domain.Product, bool, error) {
	findProductSQL := `SELECT id, title, price, count, status FROM products WHERE id = $1`

	var product domain.Product
	err := pr.querier.QueryRow(ctx, findProductSQL, productId).
		Scan(&product.ID, &product.Title, &product.Price, &product.Count, &product.Status)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, false, nil
		}

		return domain.Product{}, false, fmt.Errorf("failed to find product: %w", err)
	}

	return product, true, nil
}

func (pr *ProductsRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	listProductsSQL := `SELECT id, title, price, count, status FROM products ORDER BY id`

	rows, err := pr.querier.Query(ctx, listProductsSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		var product domain.Product
		err := rows.Scan(&product.ID, &product.Title, &product.Price, &product.Count, &product.Status)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate product rows: %w", err)
	}

	return products, nil
}
