package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openshelf/storefront-api/internal/app/service"
	"github.com/openshelf/storefront-api/internal/middleware"
)

type PaymentController struct {
	paymentService service.PaymentService
}

func NewPaymentController(paymentService service.PaymentService) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// CreatePaymentIntent creates a payment intent for the user's cart total
// POST /api/orders/create-payment-intent
func (ctrl *PaymentController) CreatePaymentIntent(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		log.Warn("Unauthorized attempt to create payment intent", nil)
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	result, err := ctrl.paymentService.CreatePaymentIntent(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			log.Warn("Payment intent attempted with empty cart", map[string]interface{}{
				"user_id": userID,
			})
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Cart is empty",
			})
			return
		}
		if errors.Is(err, service.ErrPaymentUnavailable) {
			log.Error("Payment provider unavailable", err, map[string]interface{}{
				"user_id": userID,
			})
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Payment service unavailable",
			})
			return
		}
		log.Error("Failed to create payment intent", err, map[string]interface{}{
			"user_id": userID,
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create payment intent",
		})
		return
	}

	log.Info("Payment intent created successfully", map[string]interface{}{
		"user_id":  userID,
		"amount":   result.Amount,
		"currency": result.Currency,
	})

	c.JSON(http.StatusOK, gin.H{
		"client_secret": result.ClientSecret,
		"amount":        result.Amount,
		"currency":      result.Currency,
	})
}
