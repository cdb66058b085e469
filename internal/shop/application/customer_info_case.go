package application

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/youngwishes/shop-service/internal/pkg/logging"
	"github.com/youngwishes/shop-service/internal/shop/domain"
)

type CustomerInfo struct {
	Customer   domain.Customer
	Affordable []ProductAffordability
}

// ProductAffordability pairs a sellable product with the largest
// quantity the customer's current balance covers.
type ProductAffordability struct {
	Product     domain.Product
	MaxQuantity uint32
}

type CustomerInfoCase struct {
	customers domain.CustomersRepository
	products  domain.ProductsRepository
	logger    logging.Logger
}

func NewCustomerInfoCase(
	customers domain.CustomersRepository,
	products domain.ProductsRepository,
	logger logging.Logger,
) *CustomerInfoCase {
	return &CustomerInfoCase{
		customers: customers,
		products:  products,
		logger:    logger,
	}
}

func (cic *CustomerInfoCase) GetCustomerInfo(ctx context.Context, customerId int) (CustomerInfo, error) {
	group, groupCtx := errgroup.WithContext(ctx)

	var customer domain.Customer
	var products []domain.Product

	group.Go(func() error {
		found := false

		var err error
		customer, found, err = cic.customers.TryGetCustomer(groupCtx, customerId)
		if err != nil {
			return err
		}

		if !found {
			return &domain.CustomerNotFoundError{CustomerID: customerId}
		}

		return nil
	})

	group.Go(func() error {
		var err error
		products, err = cic.products.ListProducts(groupCtx)
		return err
	})

	err := group.Wait()
	if err != nil {
		return CustomerInfo{}, err
	}

	affordable := make([]ProductAffordability, 0, len(products))
	for _, product := range products {
		if !product.IsAvailable() {
			continue
		}

		maxQuantity := customer.MaxAffordableQuantity(product)
		if maxQuantity == 0 {
			continue
		}

		affordable = append(affordable, ProductAffordability{
			Product:     product,
			MaxQuantity: maxQuantity,
		})
	}

	return CustomerInfo{
		Customer:   customer,
		Affordable: affordable,
	}, nil
}

func (cic *CustomerInfoCase) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return cic.customers.ListCustomers(ctx)
}
