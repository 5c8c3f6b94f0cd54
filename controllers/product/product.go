package productController

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cadefab1n/appsevenmenu/models"
)

type CreateInput struct {
	CategoryID  uint              `json:"category_id" binding:"required"`
	Name        string            `json:"name" binding:"required"`
	Description string            `json:"description"`
	Price       float64           `json:"price" binding:"required"`
	PromoPrice  float64           `json:"promo_price"`
	Image       string            `json:"image"`
	Gallery     models.StringList `json:"gallery"`
	IsFeatured  bool              `json:"is_featured"`
	FeaturedTag string            `json:"featured_tag"`
	Position    int               `json:"position"`
}

type UpdateInput struct {
	CategoryID  *uint              `json:"category_id"`
	Name        *string            `json:"name"`
	Description *string            `json:"description"`
	Price       *float64           `json:"price"`
	PromoPrice  *float64           `json:"promo_price"`
	Image       *string            `json:"image"`
	Gallery     *models.StringList `json:"gallery"`
	IsActive    *bool              `json:"is_active"`
	IsFeatured  *bool              `json:"is_featured"`
	FeaturedTag *string            `json:"featured_tag"`
	Position    *int               `json:"position"`
}

// GET /api/products?category_id=
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurantID := c.GetUint("restaurant_id")

		query := db.Where("restaurant_id = ?", restaurantID)
		if categoryID := c.Query("category_id"); categoryID != "" {
			query = query.Where("category_id = ?", categoryID)
		}

		var products []models.Product
		if err := query.Order("position").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// POST /api/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurantID := c.GetUint("restaurant_id")

		var input CreateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// The category must belong to the caller's restaurant.
		var category models.Category
		if err := db.Where("id = ? AND restaurant_id = ?", input.CategoryID, restaurantID).First(&category).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
			return
		}

		product := models.Product{
			RestaurantID: restaurantID,
			CategoryID:   input.CategoryID,
			Name:         input.Name,
			Description:  input.Description,
			Price:        input.Price,
			PromoPrice:   input.PromoPrice,
			Image:        input.Image,
			Gallery:      input.Gallery,
			IsActive:     true,
			IsFeatured:   input.IsFeatured,
			FeaturedTag:  input.FeaturedTag,
			Position:     input.Position,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// PUT /api/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurantID := c.GetUint("restaurant_id")

		var product models.Product
		if err := db.Where("id = ? AND restaurant_id = ?", c.Param("id"), restaurantID).First(&product).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var input UpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.CategoryID != nil {
			var category models.Category
			if err := db.Where("id = ? AND restaurant_id = ?", *input.CategoryID, restaurantID).First(&category).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
				return
			}
		}

		updates := map[string]interface{}{}
		if input.CategoryID != nil {
			updates["category_id"] = *input.CategoryID
		}
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.Price != nil {
			updates["price"] = *input.Price
		}
		if input.PromoPrice != nil {
			updates["promo_price"] = *input.PromoPrice
		}
		if input.Image != nil {
			updates["image"] = *input.Image
		}
		if input.Gallery != nil {
			updates["gallery"] = *input.Gallery
		}
		if input.IsActive != nil {
			updates["is_active"] = *input.IsActive
		}
		if input.IsFeatured != nil {
			updates["is_featured"] = *input.IsFeatured
		}
		if input.FeaturedTag != nil {
			updates["featured_tag"] = *input.FeaturedTag
		}
		if input.Position != nil {
			updates["position"] = *input.Position
		}

		if len(updates) > 0 {
			if err := db.Model(&product).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
				return
			}
		}
		c.JSON(http.StatusOK, product)
	}
}

// DELETE /api/products/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurantID := c.GetUint("restaurant_id")

		result := db.Where("id = ? AND restaurant_id = ?", c.Param("id"), restaurantID).Delete(&models.Product{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}

// PATCH /api/products/:id/toggle
func ToggleProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurantID := c.GetUint("restaurant_id")

		var product models.Product
		if err := db.Where("id = ? AND restaurant_id = ?", c.Param("id"), restaurantID).First(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			}
			return
		}

		product.IsActive = !product.IsActive
		if err := db.Model(&product).Update("is_active", product.IsActive).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"is_active": product.IsActive})
	}
}
