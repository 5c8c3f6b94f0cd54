package models

import "time"

type Product struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	RestaurantID uint       `gorm:"index;not null" json:"restaurant_id"`
	CategoryID   uint       `gorm:"index;not null" json:"category_id"`
	Name         string     `gorm:"size:255;not null" json:"name"`
	Description  string     `gorm:"type:text" json:"description"`
	Price        float64    `gorm:"not null" json:"price"`
	PromoPrice   float64    `json:"promo_price"`
	Image        string     `gorm:"type:text" json:"image"`
	Gallery      StringList `json:"gallery"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	IsFeatured   bool       `gorm:"default:false" json:"is_featured"`
	FeaturedTag  string     `gorm:"size:50" json:"featured_tag"` // mais_vendido, novo, recomendado
	Position     int        `gorm:"default:0" json:"position"`
	Views        int        `gorm:"default:0" json:"views"`
	Clicks       int        `gorm:"default:0" json:"clicks"`
	CartAdds     int        `gorm:"default:0" json:"cart_adds"`
	OrdersCount  int        `gorm:"default:0" json:"orders_count"`
	Revenue      float64    `gorm:"default:0" json:"revenue"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// EffectivePrice is the price charged when the product is added to a cart:
// the promo price when one is set, the regular price otherwise.
func (p Product) EffectivePrice() float64 {
	if p.PromoPrice > 0 && p.PromoPrice < p.Price {
		return p.PromoPrice
	}
	return p.Price
}
