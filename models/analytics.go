package models

import "time"

// AnalyticsEvent is a raw funnel event tracked from the public menu:
// page_view, product_view, product_click, add_to_cart, checkout_click.
type AnalyticsEvent struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	RestaurantID uint      `gorm:"index;not null" json:"restaurant_id"`
	EventType    string    `gorm:"size:50;index;not null" json:"event_type"`
	ProductID    *uint     `json:"product_id"`
	CategoryID   *uint     `json:"category_id"`
	Source       string    `gorm:"size:100" json:"source"`
	Metadata     JSONMap   `json:"metadata"`
	CreatedAt    time.Time `json:"created_at"`
}
