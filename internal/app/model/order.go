package model

import (
	"time"
)

// Order status values.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Payment method values.
const (
	PaymentMethodCard   = "card"
	PaymentMethodPaypal = "paypal"
	PaymentMethodCOD    = "cod"
)

// Payment status values.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// ShippingAddress is embedded into Order. All fields are required at
// order creation.
type ShippingAddress struct {
	Street  string `gorm:"not null" json:"street"`
	City    string `gorm:"not null" json:"city"`
	State   string `gorm:"not null" json:"state"`
	ZipCode string `gorm:"not null" json:"zip_code"`
	Country string `gorm:"not null" json:"country"`
}

// Complete reports whether every address field is non-empty.
func (a ShippingAddress) Complete() bool {
	return a.Street != "" && a.City != "" && a.State != "" &&
		a.ZipCode != "" && a.Country != ""
}

// PaymentInfo is embedded into Order.
type PaymentInfo struct {
	Method        string `gorm:"not null;default:card" json:"method"`
	TransactionID string `json:"transaction_id,omitempty"`
	Status        string `gorm:"not null;default:pending" json:"status"`
}

// Order is an immutable snapshot of a cart at checkout time. Items and
// total are copied from the cart, never referenced, so later cart edits
// cannot alter order history.
type Order struct {
	ID              uint            `gorm:"primarykey" json:"id"`
	UserID          uint            `gorm:"not null;index" json:"user_id"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount     float64         `gorm:"not null" json:"total_amount"`
	ShippingAddress ShippingAddress `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping_address"`
	PaymentInfo     PaymentInfo     `gorm:"embedded;embeddedPrefix:payment_" json:"payment_info"`
	Status          string          `gorm:"not null;default:pending" json:"status"`
	OrderDate       time.Time       `gorm:"not null;index" json:"order_date"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem is one line of an order snapshot.
type OrderItem struct {
	ID        uint    `gorm:"primarykey" json:"id"`
	OrderID   uint    `gorm:"not null;index" json:"-"`
	ProductID uint    `gorm:"not null" json:"product_id"`
	Title     string  `gorm:"not null" json:"title"`
	Price     float64 `gorm:"not null" json:"price"`
	Image     string  `gorm:"not null" json:"image"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Category  string  `json:"category,omitempty"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
