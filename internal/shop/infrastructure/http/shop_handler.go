package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/youngwishes/shop-service/internal/pkg/logging"
	"github.com/youngwishes/shop-service/internal/shop/application"
	"github.com/youngwishes/shop-service/internal/shop/domain"
)

type buyProductRequestBody struct {
	ProductID int    `json:"product_id" binding:"required"`
	Quantity  uint32 `json:"quantity" binding:"required,gt=0"`
}

type productResponse struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Price  uint32 `json:"price"`
	Count  uint32 `json:"count"`
	Status int16  `json:"status"`
}

type customerResponse struct {
	ID      int    `json:"id"`
	UserID  *int   `json:"user_id"`
	Balance uint32 `json:"balance"`
}

type affordableProductResponse struct {
	Product     productResponse `json:"product"`
	MaxQuantity uint32          `json:"max_quantity"`
}

type customerInfoResponse struct {
	ID         int                         `json:"id"`
	Balance    uint32                      `json:"balance"`
	Affordable []affordableProductResponse `json:"affordable"`
}

type ShopHandler struct {
	purchaseCase     *application.PurchaseCase
	catalogCase      *application.CatalogCase
	customerInfoCase *application.CustomerInfoCase
	logger           logging.Logger
}

func NewShopHandler(
	purchaseCase *application.PurchaseCase,
	catalogCase *application.CatalogCase,
	customerInfoCase *application.CustomerInfoCase,
	logger logging.Logger,
) *ShopHandler {
	return &ShopHandler{
		purchaseCase:     purchaseCase,
		catalogCase:      catalogCase,
		customerInfoCase: customerInfoCase,
		logger:           logger,
	}
}

func (h *ShopHandler) BuyProduct(c *gin.Context) {
	var body buyProductRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	customer := getContextCustomer(c)

	boughtId, err := h.purchaseCase.BuyProduct(c.Request.Context(), customer, body.ProductID, body.Quantity)
	if err != nil {
		h.handlePurchaseError(c, err, body.ProductID, body.Quantity)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "ok", "product_id": boughtId})
}

func (h *ShopHandler) ListProducts(c *gin.Context) {
	products, err := h.catalogCase.ListProducts(c.Request.Context())
	if err != nil {
		h.handleInternalError(c, "failed to list products", err)
		return
	}

	response := make([]productResponse, 0, len(products))
	for _, product := range products {
		response = append(response, convertToProductResponse(product))
	}

	c.JSON(http.StatusOK, response)
}

func (h *ShopHandler) GetProduct(c *gin.Context) {
	productId, err := strconv.Atoi(c.Param(ProductIdKey))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid product id"})
		return
	}

	product, err := h.catalogCase.GetProduct(c.Request.Context(), productId)
	if err != nil {
		if errors.Is(err, &domain.ProductNotFoundError{}) {
			c.JSON(http.StatusNotFound, gin.H{"errors": "product not found"})
			return
		}

		h.handleInternalError(c, "failed to get product", err)
		return
	}

	c.JSON(http.StatusOK, convertToProductResponse(product))
}

func (h *ShopHandler) GetCustomerInfo(c *gin.Context) {
	customer := getContextCustomer(c)

	info, err := h.customerInfoCase.GetCustomerInfo(c.Request.Context(), customer.ID)
	if err != nil {
		h.handleInternalError(c, "failed to get customer info", err)
		return
	}

	c.JSON(http.StatusOK, convertToCustomerInfoResponse(info))
}

func (h *ShopHandler) ListCustomers(c *gin.Context) {
	customers, err := h.customerInfoCase.ListCustomers(c.Request.Context())
	if err != nil {
		h.handleInternalError(c, "failed to list customers", err)
		return
	}

	response := make([]customerResponse, 0, len(customers))
	for _, customer := range customers {
		response = append(response, customerResponse{
			ID:      customer.ID,
			UserID:  customer.UserID,
			Balance: customer.Balance,
		})
	}

	c.JSON(http.StatusOK, response)
}

// handlePurchaseError maps every expected purchase rejection to its own
// client-facing status and logs it with the purchase context, so log
// search can group failures by kind, product and request.
func (h *ShopHandler) handlePurchaseError(c *gin.Context, err error, productId int, quantity uint32) {
	logArgs := []any{
		"error", err.Error(),
		"product_id", productId,
		"quantity", quantity,
		"request_id", c.GetString(RequestIDContextKey),
	}

	switch {
	case errors.Is(err, &domain.ProductNotFoundError{}):
		h.logger.Warn("purchase rejected: product not found", logArgs...)
		c.JSON(http.StatusNotFound, gin.H{"errors": "product not found"})
	case errors.Is(err, &domain.NotEnoughBalanceError{}):
		h.logger.Warn("purchase rejected: not enough balance", logArgs...)
		c.JSON(http.StatusPaymentRequired, gin.H{"errors": "not enough balance"})
	case errors.Is(err, &domain.ProductNotAvailableError{}):
		h.logger.Warn("purchase rejected: product not available", logArgs...)
		c.JSON(http.StatusConflict, gin.H{"errors": "product not available now, please try later"})
	case errors.Is(err, &domain.OutOfStockError{}):
		h.logger.Warn("purchase rejected: out of stock", logArgs...)
		c.JSON(http.StatusConflict, gin.H{"errors": "product is out of stock now, please try later"})
	default:
		h.logger.Error("purchase failed", logArgs...)
		c.JSON(http.StatusInternalServerError, gin.H{"errors": "internal server error"})
	}
}

func (h *ShopHandler) handleInternalError(c *gin.Context, message string, err error) {
	h.logger.Error(message, "error", err.Error(), "request_id", c.GetString(RequestIDContextKey))
	c.JSON(http.StatusInternalServerError, gin.H{"errors": "internal server error"})
}

func getContextCustomer(c *gin.Context) domain.Customer {
	value, _ := c.Get(CustomerContextKey)
	customer, _ := value.(domain.Customer)
	return customer
}

func convertToProductResponse(product domain.Product) productResponse {
	return productResponse{
		ID:     product.ID,
		Title:  product.Title,
		Price:  product.Price,
		Count:  product.Count,
		Status: int16(product.Status),
	}
}

func convertToCustomerInfoResponse(info application.CustomerInfo) customerInfoResponse {
	affordable := make([]affordableProductResponse, 0, len(info.Affordable))
	for _, item := range info.Affordable {
		affordable = append(affordable, affordableProductResponse{
			Product:     convertToProductResponse(item.Product),
			MaxQuantity: item.MaxQuantity,
		})
	}

	return customerInfoResponse{
		ID:         info.Customer.ID,
		Balance:    info.Customer.Balance,
		Affordable: affordable,
	}
}
