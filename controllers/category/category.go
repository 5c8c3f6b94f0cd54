package categoryController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cadefab1n/appsevenmenu/models"
)

type CreateInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Image       string `json:"image"`
	Position    int    `json:"position"`
}

type UpdateInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Image       *string `json:"image"`
	Position    *int    `json:"position"`
	IsActive    *bool   `json:"is_active"`
}

type ReorderEntry struct {
	ID       uint `json:"id" binding:"required"`
	Position int  `json:"position"`
}

// GET /api/categories
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurantID := c.GetUint("restaurant_id")

		var categories []models.Category
		if err := db.Where("restaurant_id = ?", restaurantID).Order("position").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// POST /api/categories
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurantID := c.GetUint("restaurant_id")

		var input CreateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		category := models.Category{
			RestaurantID: restaurantID,
			Name:         input.Name,
			Description:  input.Description,
			Icon:         input.Icon,
			Image:        input.Image,
			Position:     input.Position,
			IsActive:     true,
		}
		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

// PUT /api/categories/:id
func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurantID := c.GetUint("restaurant_id")

		var category models.Category
		if err := db.Where("id = ? AND restaurant_id = ?", c.Param("id"), restaurantID).First(&category).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		var input UpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updates := map[string]interface{}{}
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.Icon != nil {
			updates["icon"] = *input.Icon
		}
		if input.Image != nil {
			updates["image"] = *input.Image
		}
		if input.Position != nil {
			updates["position"] = *input.Position
		}
		if input.IsActive != nil {
			updates["is_active"] = *input.IsActive
		}

		if len(updates) > 0 {
			if err := db.Model(&category).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
				return
			}
		}
		c.JSON(http.StatusOK, category)
	}
}

// DELETE /api/categories/:id
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurantID := c.GetUint("restaurant_id")

		result := db.Where("id = ? AND restaurant_id = ?", c.Param("id"), restaurantID).Delete(&models.Category{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
	}
}

// PUT /api/categories/reorder
func ReorderCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurantID := c.GetUint("restaurant_id")

		var entries []ReorderEntry
		if err := c.ShouldBindJSON(&entries); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := db.Transaction(func(tx *gorm.DB) error {
			for _, entry := range entries {
				if err := tx.Model(&models.Category{}).
					Where("id = ? AND restaurant_id = ?", entry.ID, restaurantID).
					Update("position", entry.Position).Error; err != nil {
					return err
				}
			}
			return nil
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reorder categories"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Categories reordered"})
	}
}
