package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/youngwishes/shop-service/internal/pkg/logging"
	"github.com/youngwishes/shop-service/internal/shop/domain"
)

// NewCustomerMiddleware resolves the customer profile attached to the
// authenticated user. A user without a profile is authenticated but not
// authorized to shop, hence 403 rather than 401.
func NewCustomerMiddleware(customers domain.CustomersRepository, logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetInt(UserIDContextKey)

		customer, found, err := customers.TryGetCustomerByUserID(c.Request.Context(), userId)
		if err != nil {
			logger.Error("failed to resolve customer profile", "error", err.Error(), "user_id", userId)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"errors": "internal server error"})
			return
		}

		if !found {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"errors": "customer profile required"})
			return
		}

		c.Set(CustomerContextKey, customer)
		c.Next()
	}
}
