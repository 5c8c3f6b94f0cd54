package models

import "time"

type Restaurant struct {
	ID             uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug           string     `gorm:"uniqueIndex;size:100;not null" json:"slug"`
	Name           string     `gorm:"size:255;not null" json:"name"`
	Description    string     `gorm:"type:text" json:"description"`
	Logo           string     `gorm:"type:text" json:"logo"`
	Banner         string     `gorm:"type:text" json:"banner"`
	Address        string     `gorm:"size:500" json:"address"`
	WhatsApp       string     `gorm:"size:20" json:"whatsapp"`
	PrimaryColor   string     `gorm:"size:20;default:#E63946" json:"primary_color"`
	SecondaryColor string     `gorm:"size:20;default:#1D3557" json:"secondary_color"`
	Font           string     `gorm:"size:100;default:Inter" json:"font"`
	IsOpen         bool       `gorm:"default:true" json:"is_open"`
	ClosedMessage  string     `gorm:"size:500;default:Estamos fechados no momento" json:"closed_message"`
	OpeningHours   JSONMap    `json:"opening_hours"`
	MinOrder       float64    `gorm:"default:0" json:"min_order"`
	DeliveryFee    float64    `gorm:"default:0" json:"delivery_fee"`
	PickupEnabled  bool       `gorm:"default:true" json:"pickup_enabled"`
	PaymentMethods StringList `json:"payment_methods"`
	WhatsAppText   string     `gorm:"type:text" json:"whatsapp_message"`
	ThankYouText   string     `gorm:"size:500;default:Obrigado pelo pedido!" json:"thank_you_message"`
	IsActive       bool       `gorm:"default:true" json:"is_active"`
	Plan           string     `gorm:"size:50;default:free" json:"plan"` // free, starter, pro
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	Users      []User     `gorm:"foreignKey:RestaurantID" json:"-"`
	Categories []Category `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"-"`
	Products   []Product  `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"-"`
	Orders     []Order    `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"-"`
}
