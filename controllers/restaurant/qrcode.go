package restaurantController

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"

	"github.com/cadefab1n/appsevenmenu/models"
)

const qrImageSize = 512

// GET /api/restaurant/qrcode
// Renders the restaurant's public menu URL as a QR code and returns it
// as a base64 data URL, ready to print.
func GenerateQRCode(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurantID := c.GetUint("restaurant_id")

		var restaurant models.Restaurant
		if err := db.First(&restaurant, restaurantID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
			return
		}

		baseURL := os.Getenv("FRONTEND_URL")
		if baseURL == "" {
			baseURL = "https://sevenmenu.app"
		}
		menuURL := fmt.Sprintf("%s/%s", baseURL, restaurant.Slug)

		png, err := qrcode.Encode(menuURL, qrcode.Medium, qrImageSize)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"qr_code": "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
			"url":     menuURL,
		})
	}
}
