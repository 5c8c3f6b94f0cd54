package models

import "time"

type OrderStatus string

const (
	// Order statuses (digital-menu flow: the order leaves via WhatsApp,
	// the owner tracks preparation and delivery here)
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusPreparing  OrderStatus = "preparing"
	OrderStatusReady      OrderStatus = "ready"
	OrderStatusDelivering OrderStatus = "delivering"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type Order struct {
	ID              uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	RestaurantID    uint        `gorm:"index;not null" json:"restaurant_id"`
	OrderNumber     string      `gorm:"size:20" json:"order_number"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal        float64     `gorm:"not null" json:"subtotal"`
	DeliveryFee     float64     `gorm:"default:0" json:"delivery_fee"`
	Discount        float64     `gorm:"default:0" json:"discount"`
	Total           float64     `gorm:"not null" json:"total"`
	CustomerName    string      `gorm:"size:255" json:"customer_name"`
	CustomerPhone   string      `gorm:"size:50" json:"customer_phone"`
	CustomerAddress string      `gorm:"type:text" json:"customer_address"`
	PaymentMethod   string      `gorm:"size:50" json:"payment_method"` // pix, dinheiro, cartao
	OrderType       string      `gorm:"size:50;default:delivery" json:"order_type"`
	Status          OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	Source          string      `gorm:"size:50;default:direct" json:"source"`
	Notes           string      `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// OrderItem is a snapshot of a cart line at checkout time. Name and price
// are copied so later catalog edits do not rewrite order history.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint    `gorm:"index" json:"order_id"`
	ProductID uint    `json:"product_id"`
	Name      string  `gorm:"size:255" json:"name"`
	UnitPrice float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `gorm:"type:text" json:"image"`
}
