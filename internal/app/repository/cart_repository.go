package repository

import (
	"github.com/openshelf/storefront-api/internal/app/model"
	"github.com/openshelf/storefront-api/pkg/logger"
	"gorm.io/gorm"
)

type CartRepository interface {
	Create(cart *model.Cart) error
	FindByUserID(userID uint) (*model.Cart, error)
	Save(cart *model.Cart) error
	ClearItems(cartID uint) error
	ClearItemsTx(tx *gorm.DB, cartID uint) error
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) Create(cart *model.Cart) error {
	logger.Debug("Creating cart in database", map[string]interface{}{
		"user_id": cart.UserID,
	})

	if err := r.db.Create(cart).Error; err != nil {
		logger.Error("Failed to create cart in database", err, map[string]interface{}{
			"user_id": cart.UserID,
		})
		return err
	}

	logger.Debug("Cart created in database", map[string]interface{}{
		"cart_id": cart.ID,
		"user_id": cart.UserID,
	})
	return nil
}

func (r *cartRepository) FindByUserID(userID uint) (*model.Cart, error) {
	logger.Debug("Finding cart by user ID in database", map[string]interface{}{
		"user_id": userID,
	})

	var cart model.Cart
	err := r.db.Where("user_id = ?", userID).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.id ASC")
		}).
		First(&cart).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			logger.Error("Failed to find cart by user ID in database", err, map[string]interface{}{
				"user_id": userID,
			})
		}
		return nil, err
	}

	// An empty preload leaves the slice nil; keep items serializing as [].
	if cart.Items == nil {
		cart.Items = []model.CartItem{}
	}

	logger.Debug("Cart found by user ID in database", map[string]interface{}{
		"cart_id":    cart.ID,
		"user_id":    userID,
		"item_count": len(cart.Items),
	})
	return &cart, nil
}

// Save persists the full cart state in one transaction: the stored
// item rows are replaced by the cart's current item list and the total
// is written alongside, so readers never observe items without the
// matching total.
func (r *cartRepository) Save(cart *model.Cart) error {
	logger.Debug("Saving cart in database", map[string]interface{}{
		"cart_id":      cart.ID,
		"user_id":      cart.UserID,
		"item_count":   len(cart.Items),
		"total_amount": cart.TotalAmount,
	})

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&model.CartItem{}).Error; err != nil {
			return err
		}

		for i := range cart.Items {
			cart.Items[i].ID = 0
			cart.Items[i].CartID = cart.ID
		}
		if len(cart.Items) > 0 {
			if err := tx.Create(&cart.Items).Error; err != nil {
				return err
			}
		}

		return tx.Model(&model.Cart{}).Where("id = ?", cart.ID).
			Update("total_amount", cart.TotalAmount).Error
	})
	if err != nil {
		logger.Error("Failed to save cart in database", err, map[string]interface{}{
			"cart_id": cart.ID,
			"user_id": cart.UserID,
		})
		return err
	}

	logger.Debug("Cart saved in database", map[string]interface{}{
		"cart_id":      cart.ID,
		"user_id":      cart.UserID,
		"item_count":   len(cart.Items),
		"total_amount": cart.TotalAmount,
	})
	return nil
}

func (r *cartRepository) ClearItems(cartID uint) error {
	return r.ClearItemsTx(r.db, cartID)
}

// ClearItemsTx empties the cart inside the caller's transaction. Used
// by order creation so the snapshot and the clear commit together.
func (r *cartRepository) ClearItemsTx(tx *gorm.DB, cartID uint) error {
	logger.Debug("Clearing cart items in database", map[string]interface{}{
		"cart_id": cartID,
	})

	if err := tx.Where("cart_id = ?", cartID).Delete(&model.CartItem{}).Error; err != nil {
		logger.Error("Failed to clear cart items in database", err, map[string]interface{}{
			"cart_id": cartID,
		})
		return err
	}

	if err := tx.Model(&model.Cart{}).Where("id = ?", cartID).
		Update("total_amount", 0).Error; err != nil {
		logger.Error("Failed to reset cart total in database", err, map[string]interface{}{
			"cart_id": cartID,
		})
		return err
	}

	logger.Debug("Cart items cleared in database", map[string]interface{}{
		"cart_id": cartID,
	})
	return nil
}
