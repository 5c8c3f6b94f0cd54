package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/cadefab1n/appsevenmenu/cart"
	"github.com/cadefab1n/appsevenmenu/metrics"
	"github.com/cadefab1n/appsevenmenu/middleware"
	"github.com/cadefab1n/appsevenmenu/models"
	"github.com/cadefab1n/appsevenmenu/routes"
)

const cartTTL = 24 * time.Hour

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.Restaurant{},
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.AnalyticsEvent{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Guest carts: Redis when configured, local JSON files otherwise
	carts := newCartManager()

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Session-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.CollectMetrics)

	// Setup routes
	routes.SetupRoutes(r, db, carts)

	// Back up the SQLite database at 2 AM daily, keep 4 days of backups
	if sqlitePath := databaseFile(); sqlitePath != "" {
		backupDir := os.Getenv("BACKUP_DIR")
		if backupDir == "" {
			backupDir = "backups"
		}
		go startDailyBackupAtFixedTime(sqlitePath, backupDir, 4*24*time.Hour, 2, 0)
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection. Postgres when
// DATABASE_URL is set, a local SQLite file otherwise.
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	db, err := gorm.Open(sqlite.Open(databaseFile()), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

// databaseFile returns the SQLite path, or "" when running on Postgres.
func databaseFile() string {
	if os.Getenv("DATABASE_URL") != "" {
		return ""
	}
	if path := os.Getenv("SQLITE_PATH"); path != "" {
		return path
	}
	return "sevenmenu.db"
}

// newCartManager picks the cart persistence backend. Redis writes go
// through a background goroutine; file writes stay synchronous.
func newCartManager() *cart.Manager {
	onDegraded := cart.WithDegradedHandler(func(err error) {
		metrics.CartPersistenceFailures.Inc()
		log.Printf("❌ Cart persistence failed: %v", err)
	})

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		return cart.NewManager(func(key string) cart.Storage {
			return cart.NewRedisStorage(client, key, cartTTL)
		}, cart.WithAsyncWrites(), onDegraded)
	}

	dataDir := os.Getenv("CART_DATA_DIR")
	if dataDir == "" {
		dataDir = "cartdata"
	}
	return cart.NewManager(func(key string) cart.Storage {
		return cart.NewFileStorage(dataDir, key)
	}, onDegraded)
}

// startDailyBackupAtFixedTime copies the database file daily at a fixed
// hour and removes old backups
func startDailyBackupAtFixedTime(dbPath, backupDir string, retention time.Duration, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		sleepDuration := next.Sub(now)
		log.Printf("⏳ Next database backup scheduled at: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(sleepDuration)

		timestamp := time.Now().Format("2006-01-02_15-04-05")
		destPath := filepath.Join(backupDir, timestamp+".db")

		if err := copyFile(dbPath, destPath); err != nil {
			log.Printf("❌ Failed to back up database: %v", err)
		} else {
			log.Printf("✅ Database backed up to %s", destPath)
		}

		cleanupOldBackups(backupDir, retention)
	}
}

// copyFile copies a single file
func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}
	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

// cleanupOldBackups removes backups older than retention duration
func cleanupOldBackups(backupDir string, retention time.Duration) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		log.Printf("❌ Failed to read backup directory: %v", err)
		return
	}

	cutoff := time.Now().Add(-retention)

	for _, entry := range entries {
		path := filepath.Join(backupDir, entry.Name())
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.RemoveAll(path); err != nil {
				log.Printf("❌ Failed to remove old backup %s: %v", path, err)
			} else {
				log.Printf("🗑️ Removed old backup: %s", path)
			}
		}
	}
}
