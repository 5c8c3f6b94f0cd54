package auth

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/cadefab1n/appsevenmenu/models"
)

type RegisterInput struct {
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=6"`
	Name           string `json:"name" binding:"required"`
	RestaurantName string `json:"restaurant_name" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/register
// Creates the restaurant with a unique slug, the owner account, and
// returns a signed token.
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var existing models.User
		if err := db.Where("email = ?", input.Email).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		slug := uniqueSlug(db, input.RestaurantName)
		restaurant := models.Restaurant{
			Slug:           slug,
			Name:           input.RestaurantName,
			IsOpen:         true,
			PickupEnabled:  true,
			IsActive:       true,
			PaymentMethods: models.StringList{"pix", "dinheiro", "cartao"},
			WhatsAppText:   fmt.Sprintf("Olá! Gostaria de fazer um pedido no %s.", input.RestaurantName),
		}

		user := models.User{
			Email:    input.Email,
			Name:     input.Name,
			Role:     "owner",
			IsActive: true,
		}

		if err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&restaurant).Error; err != nil {
				return err
			}
			user.PasswordHash = string(hash)
			user.RestaurantID = &restaurant.ID
			return tx.Create(&user).Error
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
			return
		}

		token, err := IssueToken(Claims{UserID: user.ID, RestaurantID: restaurant.ID, Email: user.Email})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"token":      token,
			"user":       user,
			"restaurant": restaurant,
		})
	}
}

// POST /api/auth/login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var user models.User
		if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		if !user.IsActive {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Account disabled"})
			return
		}

		var restaurantID uint
		var restaurant *models.Restaurant
		if user.RestaurantID != nil {
			restaurantID = *user.RestaurantID
			var r models.Restaurant
			if err := db.First(&r, restaurantID).Error; err == nil {
				restaurant = &r
			}
		}

		token, err := IssueToken(Claims{UserID: user.ID, RestaurantID: restaurantID, Email: user.Email})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token":      token,
			"user":       user,
			"restaurant": restaurant,
		})
	}
}

// GET /api/auth/me
func Me(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}

		var restaurant *models.Restaurant
		if user.RestaurantID != nil {
			var r models.Restaurant
			if err := db.First(&r, *user.RestaurantID).Error; err == nil {
				restaurant = &r
			}
		}

		c.JSON(http.StatusOK, gin.H{"user": user, "restaurant": restaurant})
	}
}

// uniqueSlug appends a counter until the slug is free.
func uniqueSlug(db *gorm.DB, name string) string {
	base := GenerateSlug(name)
	if base == "" {
		base = "restaurante"
	}
	slug := base
	for counter := 1; ; counter++ {
		var count int64
		db.Model(&models.Restaurant{}).Where("slug = ?", slug).Count(&count)
		if count == 0 {
			return slug
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
	}
}
