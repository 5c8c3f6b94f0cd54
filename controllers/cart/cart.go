package cartController

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cadefab1n/appsevenmenu/cart"
	"github.com/cadefab1n/appsevenmenu/metrics"
	"github.com/cadefab1n/appsevenmenu/models"
)

type AddItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
}

type UpdateQuantityInput struct {
	Quantity int `json:"quantity"`
}

// sessionID extracts the cart session from the request. Every visitor
// gets one from POST /api/auth/guest before touching the cart.
func sessionID(c *gin.Context) (string, bool) {
	if id := c.GetHeader("X-Session-ID"); id != "" {
		return id, true
	}
	if id := c.Query("session_id"); id != "" {
		return id, true
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "session id is required"})
	return "", false
}

func cartResponse(store *cart.Store) gin.H {
	lines := store.Lines()
	if lines == nil {
		lines = []cart.Line{}
	}
	return gin.H{
		"items":       lines,
		"total_items": store.TotalItemCount(),
		"total_price": store.TotalPrice(),
	}
}

// GET /api/cart
func GetCart(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := sessionID(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, cartResponse(carts.Get(session)))
	}
}

// POST /api/cart/items
// Looks the product up in the catalog and adds a snapshot of it to the
// session cart. Adding the same product again bumps its quantity.
func AddItem(db *gorm.DB, carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := sessionID(c)
		if !ok {
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.Where("id = ? AND is_active = ?", input.ProductID, true).First(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			}
			return
		}

		store := carts.Get(session)
		store.AddItem(cart.Candidate{
			ProductID: strconv.FormatUint(uint64(product.ID), 10),
			Name:      product.Name,
			UnitPrice: product.EffectivePrice(),
			ImageURL:  product.Image,
		})
		metrics.CartMutationsTotal.WithLabelValues("add").Inc()

		c.JSON(http.StatusOK, cartResponse(store))
	}
}

// PUT /api/cart/items/:product_id
// Sets the line's quantity to an absolute value; zero or less removes
// the line. Unknown products are left alone.
func UpdateQuantity(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := sessionID(c)
		if !ok {
			return
		}

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		store := carts.Get(session)
		store.UpdateQuantity(c.Param("product_id"), input.Quantity)
		metrics.CartMutationsTotal.WithLabelValues("update").Inc()

		c.JSON(http.StatusOK, cartResponse(store))
	}
}

// DELETE /api/cart/items/:product_id
func RemoveItem(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := sessionID(c)
		if !ok {
			return
		}

		store := carts.Get(session)
		store.RemoveItem(c.Param("product_id"))
		metrics.CartMutationsTotal.WithLabelValues("remove").Inc()

		c.JSON(http.StatusOK, cartResponse(store))
	}
}

// DELETE /api/cart
func ClearCart(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := sessionID(c)
		if !ok {
			return
		}

		store := carts.Get(session)
		store.Clear()
		metrics.CartMutationsTotal.WithLabelValues("clear").Inc()

		c.JSON(http.StatusOK, cartResponse(store))
	}
}
