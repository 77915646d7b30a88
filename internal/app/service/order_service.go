package service

import (
	"errors"
	"time"

	"github.com/openshelf/storefront-api/internal/app/model"
	"github.com/openshelf/storefront-api/internal/app/repository"
	"github.com/openshelf/storefront-api/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrIncompleteAddress = errors.New("complete shipping address is required")
	ErrInvalidPayment    = errors.New("invalid payment method")
)

type OrderService interface {
	CreateOrderFromCart(userID uint, address model.ShippingAddress, paymentMethod string) (*model.Order, error)
	GetUserOrders(userID uint) ([]model.Order, error)
	GetOrderByID(userID, orderID uint) (*model.Order, error)
}

type orderService struct {
	db        *gorm.DB
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
}

func NewOrderService(db *gorm.DB, orderRepo repository.OrderRepository, cartRepo repository.CartRepository) OrderService {
	return &orderService{
		db:        db,
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
	}
}

// CreateOrderFromCart snapshots the user's cart into a new order and
// empties the cart. Both writes happen in one transaction so a failure
// leaves the cart intact and no order behind.
func (s *orderService) CreateOrderFromCart(userID uint, address model.ShippingAddress, paymentMethod string) (*model.Order, error) {
	logger.Info("Creating order from cart", map[string]interface{}{
		"user_id":        userID,
		"payment_method": paymentMethod,
	})

	if !address.Complete() {
		logger.Warn("Cannot create order: incomplete shipping address", map[string]interface{}{
			"user_id": userID,
		})
		return nil, ErrIncompleteAddress
	}

	if paymentMethod == "" {
		paymentMethod = model.PaymentMethodCard
	}
	switch paymentMethod {
	case model.PaymentMethodCard, model.PaymentMethodPaypal, model.PaymentMethodCOD:
	default:
		logger.Warn("Cannot create order: unsupported payment method", map[string]interface{}{
			"user_id":        userID,
			"payment_method": paymentMethod,
		})
		return nil, ErrInvalidPayment
	}

	cart, err := s.cartRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmptyCart
		}
		return nil, err
	}
	if len(cart.Items) == 0 {
		logger.Warn("Cannot create order: cart is empty", map[string]interface{}{
			"user_id": userID,
		})
		return nil, ErrEmptyCart
	}

	items := make([]model.OrderItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, model.OrderItem{
			ProductID: item.ProductID,
			Title:     item.Title,
			Price:     item.Price,
			Image:     item.Image,
			Quantity:  item.Quantity,
			Category:  item.Category,
		})
	}

	order := &model.Order{
		UserID:          userID,
		Items:           items,
		TotalAmount:     cart.TotalAmount,
		ShippingAddress: address,
		PaymentInfo: model.PaymentInfo{
			Method: paymentMethod,
			Status: model.PaymentStatusPending,
		},
		Status:    model.OrderStatusPending,
		OrderDate: time.Now(),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.CreateTx(tx, order); err != nil {
			return err
		}
		return s.cartRepo.ClearItemsTx(tx, cart.ID)
	})
	if err != nil {
		logger.Error("Failed to create order", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	logger.Info("Order created successfully", map[string]interface{}{
		"order_id":     order.ID,
		"user_id":      userID,
		"total_amount": order.TotalAmount,
		"item_count":   len(order.Items),
	})
	return order, nil
}

func (s *orderService) GetUserOrders(userID uint) ([]model.Order, error) {
	logger.Debug("Fetching user orders", map[string]interface{}{
		"user_id": userID,
	})

	orders, err := s.orderRepo.FindByUserID(userID)
	if err != nil {
		logger.Error("Failed to fetch user orders", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	logger.Info("User orders fetched successfully", map[string]interface{}{
		"user_id": userID,
		"count":   len(orders),
	})
	return orders, nil
}

// GetOrderByID returns one order, scoped to its owner. Another user's
// order is indistinguishable from a missing one.
func (s *orderService) GetOrderByID(userID, orderID uint) (*model.Order, error) {
	logger.Debug("Fetching order by ID", map[string]interface{}{
		"user_id":  userID,
		"order_id": orderID,
	})

	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		logger.Error("Failed to fetch order", err, map[string]interface{}{
			"user_id":  userID,
			"order_id": orderID,
		})
		return nil, err
	}

	if order.UserID != userID {
		logger.Warn("Order access denied: owner mismatch", map[string]interface{}{
			"user_id":  userID,
			"order_id": orderID,
		})
		return nil, ErrOrderNotFound
	}

	logger.Info("Order fetched successfully", map[string]interface{}{
		"user_id":  userID,
		"order_id": orderID,
	})
	return order, nil
}
