package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cadefab1n/appsevenmenu/cart"
	analyticsControllers "github.com/cadefab1n/appsevenmenu/controllers/analytics"
	cartControllers "github.com/cadefab1n/appsevenmenu/controllers/cart"
	orderControllers "github.com/cadefab1n/appsevenmenu/controllers/order"
	restaurantControllers "github.com/cadefab1n/appsevenmenu/controllers/restaurant"
)

// SetupPublicRoutes registers the customer-facing endpoints. No auth:
// customers are identified by their guest session id.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB, carts *cart.Manager) {
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public menu, checkout, and funnel events
	menuGroup := r.Group("/api/menu/:slug")
	{
		menuGroup.GET("", restaurantControllers.GetPublicMenu(db))
		menuGroup.POST("/orders", orderControllers.PlaceOrder(db, carts))
		menuGroup.POST("/analytics", analyticsControllers.TrackEvent(db))
	}

	// Guest cart, keyed by the X-Session-ID header
	cartGroup := r.Group("/api/cart")
	{
		cartGroup.GET("", cartControllers.GetCart(carts))
		cartGroup.POST("/items", cartControllers.AddItem(db, carts))
		cartGroup.PUT("/items/:product_id", cartControllers.UpdateQuantity(carts))
		cartGroup.DELETE("/items/:product_id", cartControllers.RemoveItem(carts))
		cartGroup.DELETE("", cartControllers.ClearCart(carts))
	}
}
