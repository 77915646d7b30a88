package service

import (
	"context"
	"errors"
	"math"
	"strconv"

	"github.com/openshelf/storefront-api/internal/app/repository"
	"github.com/openshelf/storefront-api/pkg/logger"
	"github.com/openshelf/storefront-api/pkg/payment/stripe"
	"gorm.io/gorm"
)

var (
	ErrPaymentUnavailable = errors.New("payment provider unavailable")
)

// PaymentIntentResult is what the frontend needs to confirm a payment.
type PaymentIntentResult struct {
	ClientSecret string
	Amount       int64
	Currency     string
}

type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, userID uint) (*PaymentIntentResult, error)
}

type paymentService struct {
	stripeClient *stripe.Client
	cartRepo     repository.CartRepository
}

func NewPaymentService(stripeClient *stripe.Client, cartRepo repository.CartRepository) PaymentService {
	return &paymentService{
		stripeClient: stripeClient,
		cartRepo:     cartRepo,
	}
}

// CreatePaymentIntent creates a provider-side intent for the user's
// current cart total. Nothing is persisted locally; the intent is
// confirmed by the frontend and reconciled through order creation.
func (s *paymentService) CreatePaymentIntent(ctx context.Context, userID uint) (*PaymentIntentResult, error) {
	logger.Info("Creating payment intent", map[string]interface{}{
		"user_id": userID,
	})

	cart, err := s.cartRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmptyCart
		}
		return nil, err
	}
	if len(cart.Items) == 0 {
		logger.Warn("Cannot create payment intent: cart is empty", map[string]interface{}{
			"user_id": userID,
		})
		return nil, ErrEmptyCart
	}

	// Amount in the smallest currency unit, rounded once at the boundary.
	amount := int64(math.Round(cart.TotalAmount * 100))

	intent, err := s.stripeClient.CreatePaymentIntent(ctx, stripe.PaymentIntentRequest{
		Amount: amount,
		Metadata: map[string]string{
			"user_id": strconv.FormatUint(uint64(userID), 10),
		},
	})
	if err != nil {
		logger.Error("Failed to create payment intent", err, map[string]interface{}{
			"user_id": userID,
			"amount":  amount,
		})
		if errors.Is(err, stripe.ErrNetworkError) || errors.Is(err, stripe.ErrUnauthorized) {
			return nil, ErrPaymentUnavailable
		}
		return nil, err
	}

	logger.Info("Payment intent created successfully", map[string]interface{}{
		"user_id":   userID,
		"intent_id": intent.ID,
		"amount":    intent.Amount,
		"currency":  intent.Currency,
	})
	return &PaymentIntentResult{
		ClientSecret: intent.ClientSecret,
		Amount:       intent.Amount,
		Currency:     intent.Currency,
	}, nil
}
