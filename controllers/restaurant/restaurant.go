package restaurantController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cadefab1n/appsevenmenu/models"
)

type UpdateInput struct {
	Name            *string            `json:"name"`
	Description     *string            `json:"description"`
	Logo            *string            `json:"logo"`
	Banner          *string            `json:"banner"`
	Address         *string            `json:"address"`
	WhatsApp        *string            `json:"whatsapp"`
	PrimaryColor    *string            `json:"primary_color"`
	SecondaryColor  *string            `json:"secondary_color"`
	Font            *string            `json:"font"`
	IsOpen          *bool              `json:"is_open"`
	ClosedMessage   *string            `json:"closed_message"`
	OpeningHours    *models.JSONMap    `json:"opening_hours"`
	MinOrder        *float64           `json:"min_order"`
	DeliveryFee     *float64           `json:"delivery_fee"`
	PickupEnabled   *bool              `json:"pickup_enabled"`
	PaymentMethods  *models.StringList `json:"payment_methods"`
	WhatsAppText    *string            `json:"whatsapp_message"`
	ThankYouText    *string            `json:"thank_you_message"`
}

// GET /api/restaurant/me
func GetMyRestaurant(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurantID := c.GetUint("restaurant_id")

		var restaurant models.Restaurant
		if err := db.First(&restaurant, restaurantID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
			return
		}
		c.JSON(http.StatusOK, restaurant)
	}
}

// PUT /api/restaurant/me
// Only the fields present in the body are written.
func UpdateMyRestaurant(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurantID := c.GetUint("restaurant_id")

		var restaurant models.Restaurant
		if err := db.First(&restaurant, restaurantID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
			return
		}

		var input UpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updates := map[string]interface{}{}
		setString(updates, "name", input.Name)
		setString(updates, "description", input.Description)
		setString(updates, "logo", input.Logo)
		setString(updates, "banner", input.Banner)
		setString(updates, "address", input.Address)
		setString(updates, "whats_app", input.WhatsApp)
		setString(updates, "primary_color", input.PrimaryColor)
		setString(updates, "secondary_color", input.SecondaryColor)
		setString(updates, "font", input.Font)
		setString(updates, "closed_message", input.ClosedMessage)
		setString(updates, "whats_app_text", input.WhatsAppText)
		setString(updates, "thank_you_text", input.ThankYouText)
		if input.IsOpen != nil {
			updates["is_open"] = *input.IsOpen
		}
		if input.PickupEnabled != nil {
			updates["pickup_enabled"] = *input.PickupEnabled
		}
		if input.MinOrder != nil {
			updates["min_order"] = *input.MinOrder
		}
		if input.DeliveryFee != nil {
			updates["delivery_fee"] = *input.DeliveryFee
		}
		if input.OpeningHours != nil {
			updates["opening_hours"] = *input.OpeningHours
		}
		if input.PaymentMethods != nil {
			updates["payment_methods"] = *input.PaymentMethods
		}

		if len(updates) > 0 {
			if err := db.Model(&restaurant).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update restaurant"})
				return
			}
		}

		c.JSON(http.StatusOK, restaurant)
	}
}

func setString(updates map[string]interface{}, column string, value *string) {
	if value != nil {
		updates[column] = *value
	}
}
