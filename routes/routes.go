package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/cadefab1n/appsevenmenu/cart"
)

// SetupRoutes is the single entry point that wires up the public menu,
// cart, auth, and owner route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, carts *cart.Manager) {
	// Public routes (no middleware)
	SetupPublicRoutes(r, db, carts)

	// Auth routes
	SetupAuthRoutes(r, db)

	// Owner routes (JWT-protected)
	SetupOwnerRoutes(r, db)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
