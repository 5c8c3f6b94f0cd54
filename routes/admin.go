package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	analyticsControllers "github.com/cadefab1n/appsevenmenu/controllers/analytics"
	categoryControllers "github.com/cadefab1n/appsevenmenu/controllers/category"
	orderControllers "github.com/cadefab1n/appsevenmenu/controllers/order"
	productControllers "github.com/cadefab1n/appsevenmenu/controllers/product"
	restaurantControllers "github.com/cadefab1n/appsevenmenu/controllers/restaurant"
	"github.com/cadefab1n/appsevenmenu/middleware"
)

// SetupOwnerRoutes registers the restaurant dashboard endpoints.
// Requires JWT middleware.
func SetupOwnerRoutes(r *gin.Engine, db *gorm.DB) {
	ownerGroup := r.Group("/api")
	ownerGroup.Use(middleware.ValidateToken)
	{
		// Restaurant profile
		ownerGroup.GET("/restaurant/me", restaurantControllers.GetMyRestaurant(db))
		ownerGroup.PUT("/restaurant/me", restaurantControllers.UpdateMyRestaurant(db))
		ownerGroup.GET("/restaurant/qrcode", restaurantControllers.GenerateQRCode(db))

		// Categories
		categoryGroup := ownerGroup.Group("/categories")
		{
			categoryGroup.GET("", categoryControllers.GetCategories(db))
			categoryGroup.POST("", categoryControllers.CreateCategory(db))
			categoryGroup.PUT("/reorder", categoryControllers.ReorderCategories(db))
			categoryGroup.PUT("/:id", categoryControllers.UpdateCategory(db))
			categoryGroup.DELETE("/:id", categoryControllers.DeleteCategory(db))
		}

		// Products
		productGroup := ownerGroup.Group("/products")
		{
			productGroup.GET("", productControllers.GetProducts(db))
			productGroup.POST("", productControllers.CreateProduct(db))
			productGroup.GET("/export-excel", productControllers.ExportProductsToExcel(db))
			productGroup.PUT("/:id", productControllers.UpdateProduct(db))
			productGroup.PATCH("/:id/toggle", productControllers.ToggleProduct(db))
			productGroup.DELETE("/:id", productControllers.DeleteProduct(db))
		}

		// Orders
		ownerGroup.GET("/orders", orderControllers.GetOrders(db))
		ownerGroup.GET("/orders/ws", orderControllers.OrderFeed) // live feed for the dashboard
		ownerGroup.PUT("/orders/:id/status", orderControllers.UpdateOrderStatus(db))

		// Analytics
		ownerGroup.GET("/analytics/dashboard", analyticsControllers.GetDashboard(db))
	}
}
