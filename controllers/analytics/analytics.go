package analyticsController

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cadefab1n/appsevenmenu/models"
)

type EventInput struct {
	EventType  string         `json:"event_type" binding:"required"`
	ProductID  *uint          `json:"product_id"`
	CategoryID *uint          `json:"category_id"`
	Source     string         `json:"source"`
	Metadata   models.JSONMap `json:"metadata"`
}

// POST /api/menu/:slug/analytics
// Tracks a funnel event from the public menu and bumps the matching
// product counter.
func TrackEvent(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var restaurant models.Restaurant
		if err := db.Where("slug = ?", c.Param("slug")).First(&restaurant).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
			return
		}

		var input EventInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		event := models.AnalyticsEvent{
			RestaurantID: restaurant.ID,
			EventType:    input.EventType,
			ProductID:    input.ProductID,
			CategoryID:   input.CategoryID,
			Source:       input.Source,
			Metadata:     input.Metadata,
		}
		if err := db.Create(&event).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to track event"})
			return
		}

		if input.ProductID != nil {
			var column string
			switch input.EventType {
			case "product_view":
				column = "views"
			case "product_click":
				column = "clicks"
			case "add_to_cart":
				column = "cart_adds"
			}
			if column != "" {
				db.Model(&models.Product{}).Where("id = ?", *input.ProductID).
					Update(column, gorm.Expr(column+" + 1"))
			}
		}

		c.JSON(http.StatusOK, gin.H{"message": "Event tracked"})
	}
}

// GET /api/analytics/dashboard
// Today's orders and revenue against yesterday's, the menu funnel, and
// the best-selling products.
func GetDashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurantID := c.GetUint("restaurant_id")

		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		yesterday := today.AddDate(0, 0, -1)

		var todayOrders, yesterdayOrders []models.Order
		if err := db.Where("restaurant_id = ? AND created_at >= ?", restaurantID, today).
			Find(&todayOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		if err := db.Where("restaurant_id = ? AND created_at >= ? AND created_at < ?", restaurantID, yesterday, today).
			Find(&yesterdayOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		todayRevenue := 0.0
		for _, o := range todayOrders {
			todayRevenue += o.Total
		}
		yesterdayRevenue := 0.0
		for _, o := range yesterdayOrders {
			yesterdayRevenue += o.Total
		}

		avgTicket := 0.0
		if len(todayOrders) > 0 {
			avgTicket = todayRevenue / float64(len(todayOrders))
		}
		revenueGrowth := 0.0
		if yesterdayRevenue > 0 {
			revenueGrowth = (todayRevenue - yesterdayRevenue) / yesterdayRevenue * 100
		}
		ordersGrowth := 0.0
		if len(yesterdayOrders) > 0 {
			ordersGrowth = float64(len(todayOrders)-len(yesterdayOrders)) / float64(len(yesterdayOrders)) * 100
		}

		countEvents := func(eventType string) int64 {
			var count int64
			db.Model(&models.AnalyticsEvent{}).
				Where("restaurant_id = ? AND event_type = ? AND created_at >= ?", restaurantID, eventType, today).
				Count(&count)
			return count
		}

		var topProducts []models.Product
		db.Where("restaurant_id = ?", restaurantID).Order("orders_count DESC").Limit(5).Find(&topProducts)

		top := make([]gin.H, 0, len(topProducts))
		for _, p := range topProducts {
			top = append(top, gin.H{"name": p.Name, "orders": p.OrdersCount, "revenue": p.Revenue})
		}

		c.JSON(http.StatusOK, gin.H{
			"today": gin.H{
				"orders":     len(todayOrders),
				"revenue":    todayRevenue,
				"avg_ticket": avgTicket,
			},
			"comparison": gin.H{
				"revenue_growth": revenueGrowth,
				"orders_growth":  ordersGrowth,
			},
			"funnel": gin.H{
				"page_views":      countEvents("page_view"),
				"cart_adds":       countEvents("add_to_cart"),
				"checkout_clicks": countEvents("checkout_click"),
				"orders_sent":     len(todayOrders),
			},
			"top_products": top,
		})
	}
}
