package model

import (
	"time"
)

// Cart is the single cart document owned by an authenticated identity.
// It is created lazily on first access and emptied rather than deleted.
type Cart struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	UserID      uint       `gorm:"not null;uniqueIndex" json:"user_id"`
	Items       []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount float64    `gorm:"not null;default:0" json:"total_amount"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Cart) TableName() string {
	return "carts"
}

// RecalculateTotal derives TotalAmount from the item list. Callers must
// invoke it before every persist so the stored total never drifts from
// the items.
func (c *Cart) RecalculateTotal() {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	c.TotalAmount = total
}

// FindItem returns the index of the item with the given catalog product
// id, or -1. Product ids are unique within a cart.
func (c *Cart) FindItem(productID uint) int {
	for i, item := range c.Items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}

// CartItem is one line of a cart, keyed by the upstream catalog product id.
// Title, price and image are denormalized from the catalog at add time.
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CartID    uint      `gorm:"not null;index" json:"-"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	Title     string    `gorm:"not null" json:"title"`
	Price     float64   `gorm:"not null" json:"price"`
	Image     string    `gorm:"not null" json:"image"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	Category  string    `json:"category,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (CartItem) TableName() string {
	return "cart_items"
}
