package orderController

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cadefab1n/appsevenmenu/cart"
	"github.com/cadefab1n/appsevenmenu/metrics"
	"github.com/cadefab1n/appsevenmenu/models"
)

type PlaceOrderInput struct {
	SessionID       string  `json:"session_id" binding:"required"`
	CustomerName    string  `json:"customer_name"`
	CustomerPhone   string  `json:"customer_phone"`
	CustomerAddress string  `json:"customer_address"`
	PaymentMethod   string  `json:"payment_method"`
	OrderType       string  `json:"order_type"`
	Discount        float64 `json:"discount"`
	Source          string  `json:"source"`
	Notes           string  `json:"notes"`
}

type UpdateStatusInput struct {
	Status string `json:"status" binding:"required"`
}

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch models.OrderStatus(strings.ToLower(status)) {
	case models.OrderStatusPending,
		models.OrderStatusConfirmed,
		models.OrderStatusPreparing,
		models.OrderStatusReady,
		models.OrderStatusDelivering,
		models.OrderStatusCompleted,
		models.OrderStatusCancelled:
		return models.OrderStatus(strings.ToLower(status)), nil
	default:
		return "", errors.New("invalid order status")
	}
}

func generateOrderNumber() string {
	return fmt.Sprintf("#%04d", rand.Intn(9000)+1000)
}

// POST /api/menu/:slug/orders
// Checkout: snapshots the session cart into an order, bumps the product
// sales counters, clears the cart, and hands back the WhatsApp link the
// customer opens to send the order.
func PlaceOrder(db *gorm.DB, carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var restaurant models.Restaurant
		if err := db.Where("slug = ? AND is_active = ?", c.Param("slug"), true).First(&restaurant).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
			return
		}

		var input PlaceOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		store := carts.Get(input.SessionID)
		lines := store.Lines()
		if len(lines) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		orderType := input.OrderType
		if orderType == "" {
			orderType = "delivery"
		}
		source := input.Source
		if source == "" {
			source = "direct"
		}

		subtotal := store.TotalPrice()
		deliveryFee := 0.0
		if orderType == "delivery" {
			deliveryFee = restaurant.DeliveryFee
		}

		order := models.Order{
			RestaurantID:    restaurant.ID,
			OrderNumber:     generateOrderNumber(),
			Subtotal:        subtotal,
			DeliveryFee:     deliveryFee,
			Discount:        input.Discount,
			Total:           subtotal + deliveryFee - input.Discount,
			CustomerName:    input.CustomerName,
			CustomerPhone:   input.CustomerPhone,
			CustomerAddress: input.CustomerAddress,
			PaymentMethod:   input.PaymentMethod,
			OrderType:       orderType,
			Status:          models.OrderStatusPending,
			Source:          source,
			Notes:           input.Notes,
		}
		for _, line := range lines {
			productID, _ := strconv.ParseUint(line.ProductID, 10, 64)
			order.Items = append(order.Items, models.OrderItem{
				ProductID: uint(productID),
				Name:      line.Name,
				UnitPrice: line.UnitPrice,
				Quantity:  line.Quantity,
				Image:     line.ImageURL,
			})
		}

		if err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&order).Error; err != nil {
				return err
			}
			for _, item := range order.Items {
				if err := tx.Model(&models.Product{}).Where("id = ?", item.ProductID).
					Updates(map[string]interface{}{
						"orders_count": gorm.Expr("orders_count + ?", item.Quantity),
						"revenue":      gorm.Expr("revenue + ?", item.UnitPrice*float64(item.Quantity)),
					}).Error; err != nil {
					return err
				}
			}
			return nil
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		store.Clear()
		metrics.OrdersPlacedTotal.Inc()
		BroadcastNewOrder(order)

		message := BuildWhatsAppMessage(restaurant, order)
		c.JSON(http.StatusCreated, gin.H{
			"order":        order,
			"whatsapp_url": BuildWhatsAppLink(restaurant.WhatsApp, message),
		})
	}
}

// GET /api/orders?status=
func GetOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurantID := c.GetUint("restaurant_id")

		query := db.Where("restaurant_id = ?", restaurantID)
		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}

		var orders []models.Order
		if err := query.Preload("Items").Order("created_at DESC").Limit(100).Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PUT /api/orders/:id/status
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurantID := c.GetUint("restaurant_id")

		var input UpdateStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		status, err := mapOrderStatus(input.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result := db.Model(&models.Order{}).
			Where("id = ? AND restaurant_id = ?", c.Param("id"), restaurantID).
			Update("status", status)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
	}
}
