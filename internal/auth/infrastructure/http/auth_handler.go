package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/youngwishes/shop-service/internal/auth/domain"
	"github.com/youngwishes/shop-service/internal/pkg/logging"
)

type AuthService interface {
	Authenticate(ctx context.Context, username, password string) (string, error)
}

type authRequestBody struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthHandler struct {
	service AuthService
	logger  logging.Logger
}

func NewAuthHandler(service AuthService, logger logging.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger,
	}
}

func (h *AuthHandler) Authenticate(c *gin.Context) {
	var body authRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	token, err := h.service.Authenticate(c.Request.Context(), body.Username, body.Password)
	if err != nil {
		if errors.Is(err, &domain.CredentialsMismatchError{}) {
			c.JSON(http.StatusUnauthorized, gin.H{"errors": err.Error()})
			return
		}

		h.logger.Error("failed to authenticate user", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"errors": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
