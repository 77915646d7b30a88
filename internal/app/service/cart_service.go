package service

import (
	"errors"

	"github.com/openshelf/storefront-api/internal/app/model"
	"github.com/openshelf/storefront-api/internal/app/repository"
	"github.com/openshelf/storefront-api/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrCartNotFound     = errors.New("cart not found")
	ErrCartItemNotFound = errors.New("item not found in cart")
	ErrInvalidCartItem  = errors.New("invalid cart item")
	ErrInvalidQuantity  = errors.New("invalid quantity")
)

// CartItemInput carries the catalog snapshot fields for an item being
// added to the cart.
type CartItemInput struct {
	ProductID uint
	Title     string
	Price     float64
	Image     string
	Quantity  int
	Category  string
}

func (in CartItemInput) validate() error {
	if in.ProductID == 0 || in.Title == "" || in.Image == "" {
		return ErrInvalidCartItem
	}
	if in.Price < 0 {
		return ErrInvalidCartItem
	}
	if in.Quantity < 1 {
		return ErrInvalidQuantity
	}
	return nil
}

type CartService interface {
	GetCart(userID uint) (*model.Cart, error)
	AddItem(userID uint, input CartItemInput) (*model.Cart, error)
	UpdateItemQuantity(userID, productID uint, quantity int) (*model.Cart, error)
	RemoveItem(userID, productID uint) (*model.Cart, error)
	ClearCart(userID uint) (*model.Cart, error)
}

type cartService struct {
	cartRepo repository.CartRepository
}

func NewCartService(cartRepo repository.CartRepository) CartService {
	return &cartService{cartRepo: cartRepo}
}

// GetCart returns the user's cart, creating an empty one on first access.
func (s *cartService) GetCart(userID uint) (*model.Cart, error) {
	logger.Debug("Fetching user cart", map[string]interface{}{
		"user_id": userID,
	})

	cart, err := s.cartRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.createEmptyCart(userID)
		}
		logger.Error("Failed to fetch user cart", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	logger.Info("User cart fetched successfully", map[string]interface{}{
		"user_id":    userID,
		"item_count": len(cart.Items),
	})
	return cart, nil
}

func (s *cartService) createEmptyCart(userID uint) (*model.Cart, error) {
	cart := &model.Cart{UserID: userID, Items: []model.CartItem{}}
	if err := s.cartRepo.Create(cart); err != nil {
		logger.Error("Failed to create cart", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	logger.Info("Cart created for user", map[string]interface{}{
		"user_id": userID,
		"cart_id": cart.ID,
	})
	return cart, nil
}

// AddItem puts an item into the cart. Adding a product already present
// increases its quantity instead of creating a second line.
func (s *cartService) AddItem(userID uint, input CartItemInput) (*model.Cart, error) {
	logger.Info("Adding item to cart", map[string]interface{}{
		"user_id":    userID,
		"product_id": input.ProductID,
		"quantity":   input.Quantity,
	})

	if err := input.validate(); err != nil {
		logger.Warn("Cannot add to cart: invalid item", map[string]interface{}{
			"user_id":    userID,
			"product_id": input.ProductID,
			"quantity":   input.Quantity,
		})
		return nil, err
	}

	cart, err := s.GetCart(userID)
	if err != nil {
		return nil, err
	}

	if idx := cart.FindItem(input.ProductID); idx >= 0 {
		cart.Items[idx].Quantity += input.Quantity
	} else {
		cart.Items = append(cart.Items, model.CartItem{
			CartID:    cart.ID,
			ProductID: input.ProductID,
			Title:     input.Title,
			Price:     input.Price,
			Image:     input.Image,
			Quantity:  input.Quantity,
			Category:  input.Category,
		})
	}

	cart.RecalculateTotal()
	if err := s.cartRepo.Save(cart); err != nil {
		return nil, err
	}

	logger.Info("Item added to cart", map[string]interface{}{
		"user_id":      userID,
		"product_id":   input.ProductID,
		"item_count":   len(cart.Items),
		"total_amount": cart.TotalAmount,
	})
	return cart, nil
}

// UpdateItemQuantity replaces the quantity of one cart line. The cart
// is left untouched when the quantity is below one.
func (s *cartService) UpdateItemQuantity(userID, productID uint, quantity int) (*model.Cart, error) {
	logger.Info("Updating cart item quantity", map[string]interface{}{
		"user_id":    userID,
		"product_id": productID,
		"quantity":   quantity,
	})

	if quantity < 1 {
		logger.Warn("Cannot update cart item: invalid quantity", map[string]interface{}{
			"user_id":    userID,
			"product_id": productID,
			"quantity":   quantity,
		})
		return nil, ErrInvalidQuantity
	}

	cart, err := s.cartRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}

	idx := cart.FindItem(productID)
	if idx < 0 {
		logger.Warn("Cannot update cart item: not in cart", map[string]interface{}{
			"user_id":    userID,
			"product_id": productID,
		})
		return nil, ErrCartItemNotFound
	}

	cart.Items[idx].Quantity = quantity
	cart.RecalculateTotal()
	if err := s.cartRepo.Save(cart); err != nil {
		return nil, err
	}

	logger.Info("Cart item quantity updated", map[string]interface{}{
		"user_id":      userID,
		"product_id":   productID,
		"quantity":     quantity,
		"total_amount": cart.TotalAmount,
	})
	return cart, nil
}

// RemoveItem deletes one cart line. Removing a product that is not in
// the cart succeeds without changing anything.
func (s *cartService) RemoveItem(userID, productID uint) (*model.Cart, error) {
	logger.Info("Removing item from cart", map[string]interface{}{
		"user_id":    userID,
		"product_id": productID,
	})

	cart, err := s.cartRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}

	idx := cart.FindItem(productID)
	if idx < 0 {
		logger.Debug("Item not in cart, nothing to remove", map[string]interface{}{
			"user_id":    userID,
			"product_id": productID,
		})
		return cart, nil
	}

	cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	cart.RecalculateTotal()
	if err := s.cartRepo.Save(cart); err != nil {
		return nil, err
	}

	logger.Info("Item removed from cart", map[string]interface{}{
		"user_id":      userID,
		"product_id":   productID,
		"item_count":   len(cart.Items),
		"total_amount": cart.TotalAmount,
	})
	return cart, nil
}

// ClearCart empties the cart without deleting it. Unlike GetCart it
// never creates one: clearing for an owner with no cart fails.
func (s *cartService) ClearCart(userID uint) (*model.Cart, error) {
	logger.Info("Clearing cart", map[string]interface{}{
		"user_id": userID,
	})

	cart, err := s.cartRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}

	if err := s.cartRepo.ClearItems(cart.ID); err != nil {
		return nil, err
	}

	cart.Items = []model.CartItem{}
	cart.TotalAmount = 0

	logger.Info("Cart cleared", map[string]interface{}{
		"user_id": userID,
		"cart_id": cart.ID,
	})
	return cart, nil
}
