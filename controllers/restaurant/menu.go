package restaurantController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cadefab1n/appsevenmenu/models"
)

// GET /api/menu/:slug
// The public menu: restaurant settings plus active categories and
// products, in display order.
func GetPublicMenu(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")

		var restaurant models.Restaurant
		if err := db.Where("slug = ? AND is_active = ?", slug, true).First(&restaurant).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
			return
		}

		var categories []models.Category
		if err := db.Where("restaurant_id = ? AND is_active = ?", restaurant.ID, true).
			Order("position").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}

		var products []models.Product
		if err := db.Where("restaurant_id = ? AND is_active = ?", restaurant.ID, true).
			Order("position").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"restaurant": restaurant,
			"categories": categories,
			"products":   products,
		})
	}
}
