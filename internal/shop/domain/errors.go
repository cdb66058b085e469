package domain

import "fmt"

//region ProductNotFoundError

type ProductNotFoundError struct {
	ProductID int
	Quantity  uint32
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %d not found (requested quantity %d)", e.ProductID, e.Quantity)
}

func (e *ProductNotFoundError) Is(target error) bool {
	_, ok := target.(*ProductNotFoundError)
	return ok
}

//endregion

//region NotEnoughBalanceError

type NotEnoughBalanceError struct {
	ProductID int
	Quantity  uint32
}

func (e *NotEnoughBalanceError) Error() string {
	return fmt.Sprintf("not enough balance to buy %d of product %d", e.Quantity, e.ProductID)
}

func (e *NotEnoughBalanceError) Is(target error) bool {
	_, ok := target.(*NotEnoughBalanceError)
	return ok
}

//endregion

//region ProductNotAvailableError

type ProductNotAvailableError struct {
	ProductID int
	Quantity  uint32
}

func (e *ProductNotAvailableError) Error() string {
	return fmt.Sprintf("product %d is not available now (requested quantity %d)", e.ProductID, e.Quantity)
}

func (e *ProductNotAvailableError) Is(target error) bool {
	_, ok := target.(*ProductNotAvailableError)
	return ok
}

//endregion

//region OutOfStockError

type OutOfStockError struct {
	ProductID int
	Quantity  uint32
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("product %d is out of stock for quantity %d", e.ProductID, e.Quantity)
}

func (e *OutOfStockError) Is(target error) bool {
	_, ok := target.(*OutOfStockError)
	return ok
}

//endregion

//region CustomerNotFoundError

type CustomerNotFoundError struct {
	CustomerID int
}

func (e *CustomerNotFoundError) Error() string {
	return fmt.Sprintf("customer with id %d not found", e.CustomerID)
}

func (e *CustomerNotFoundError) Is(target error) bool {
	_, ok := target.(*CustomerNotFoundError)
	return ok
}

//endregion
