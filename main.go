package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"canteen/internal/handlers"
	"canteen/internal/middleware"
	"canteen/internal/models"
	"canteen/internal/repositories"
	"canteen/internal/services"
	"canteen/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DB_DSN", "canteen.db")
	viper.SetDefault("RABBITMQ_URL", "") // empty disables eventing
	viper.SetDefault("JWT_SECRET", "canteen_dev_secret")
	viper.SetDefault("TOKEN_TTL_HOURS", 24)
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")

	// --- Database ---
	db, err := OpenDatabase(viper.GetString("DB_DRIVER"), viper.GetString("DB_DSN"))
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	if err := Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	if err := SeedCanteen(db); err != nil {
		log.Printf("Warning: seeding failed: %v", err)
	}

	// --- RabbitMQ (optional) ---
	var mqClient *rabbitmq.Client
	if url := viper.GetString("RABBITMQ_URL"); url != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: url})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	} else {
		log.Println("RABBITMQ_URL not set, event publication disabled")
	}

	// --- App ---
	tokenTTL := time.Duration(viper.GetInt("TOKEN_TTL_HOURS")) * time.Hour
	app := NewApp(db, mqClient, viper.GetString("JWT_SECRET"), tokenTTL)

	// --- Start HTTP server with graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Starting server on port %s", appPort)
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// OpenDatabase opens a GORM handle for the configured driver, "sqlite" or
// "postgres". The handle owns a connection pool; every request-scoped
// transaction is acquired from and released back to it.
func OpenDatabase(driver, dsn string) (*gorm.DB, error) {
	switch driver {
	case "sqlite":
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	case "postgres":
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}

// Migrate creates or updates the canteen tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.Customer{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.User{},
	)
}

// NewApp builds the Fiber app with all routes wired up. mqClient may be nil.
func NewApp(db *gorm.DB, mqClient *rabbitmq.Client, jwtSecret string, tokenTTL time.Duration) *fiber.App {
	// Repositories
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	customerRepo := repositories.NewGORMCustomerRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	paymentRepo := repositories.NewGORMPaymentRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)

	// Services
	categoryService := services.NewCategoryService(categoryRepo)
	productService := services.NewProductService(productRepo)
	customerService := services.NewCustomerService(customerRepo)
	orderService := services.NewOrderService(orderRepo, productRepo, mqClient)
	paymentService := services.NewPaymentService(paymentRepo, orderRepo, mqClient)
	authService := services.NewAuthService(userRepo, jwtSecret, tokenTTL)

	// Handlers
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	productHandler := handlers.NewProductHandler(productService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	orderHandler := handlers.NewOrderHandler(orderService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	authHandler := handlers.NewAuthHandler(authService)

	app := fiber.New()
	app.Use(logger.New())

	apiV1 := app.Group("/api/v1")

	// Staff authentication (public)
	authHandler.RegisterRoutes(apiV1)

	// Catalog mutations need a staff token; everything else is open to the
	// ordering kiosk. The guard is attached per route, not as group
	// middleware, which Fiber would apply to the whole /api/v1 prefix.
	staffAuth := middleware.AuthRequired(authService)
	categoryHandler.RegisterRoutes(apiV1, staffAuth)
	productHandler.RegisterRoutes(apiV1, staffAuth)

	customerHandler.RegisterRoutes(apiV1)
	orderHandler.RegisterRoutes(apiV1)
	paymentHandler.RegisterRoutes(apiV1)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return app
}

// SeedCanteen loads the demo menu, categories, and customers on first run.
// It is a no-op when the catalog already has products.
func SeedCanteen(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	catID := func(id uint) *uint { return &id }

	categories := []models.Category{
		{CategoryID: 1, Name: "Chinese", Description: "Chinese dishes"},
		{CategoryID: 2, Name: "Indian", Description: "Indian dishes"},
		{CategoryID: 3, Name: "Beverages", Description: "Drinks"},
		{CategoryID: 4, Name: "Snacks", Description: "Light snacks"},
	}
	products := []models.Product{
		{ProductID: 1, Name: "Chow Mein", Description: "Veg noodles", Price: decimal.NewFromInt(80), Stock: 30, CategoryID: catID(1)},
		{ProductID: 2, Name: "Gobi Manchurian", Description: "Crispy gobi", Price: decimal.NewFromInt(90), Stock: 20, CategoryID: catID(1)},
		{ProductID: 3, Name: "Paneer Butter Masala", Description: "Paneer curry", Price: decimal.NewFromInt(150), Stock: 60, CategoryID: catID(2)},
		{ProductID: 4, Name: "Masala Dosa", Description: "Dosa", Price: decimal.NewFromInt(70), Stock: 45, CategoryID: catID(2)},
		{ProductID: 5, Name: "Coke", Description: "Drink", Price: decimal.NewFromInt(30), Stock: 100, CategoryID: catID(3)},
		{ProductID: 6, Name: "Chips", Description: "Snack", Price: decimal.NewFromInt(25), Stock: 10, CategoryID: catID(4)},
		{ProductID: 7, Name: "Chicken Fried Rice", Description: "Rice", Price: decimal.NewFromInt(120), Stock: 40, CategoryID: catID(1)},
		{ProductID: 8, Name: "Spring Roll", Description: "Roll", Price: decimal.NewFromInt(60), Stock: 35, CategoryID: catID(4)},
	}
	customers := []models.Customer{
		{CustomerID: 1, FirstName: "John", LastName: "Doe", Email: "john@example.com", Phone: "1111", Address: "A St"},
		{CustomerID: 2, FirstName: "Jane", LastName: "Smith", Email: "jane@example.com", Phone: "2222", Address: "B St"},
		{CustomerID: 3, FirstName: "Bob", LastName: "Brown", Email: "bob@example.com", Phone: "3333", Address: "C St"},
	}

	if err := db.Create(&categories).Error; err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}
	if err := db.Create(&products).Error; err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}
	if err := db.Create(&customers).Error; err != nil {
		return fmt.Errorf("failed to seed customers: %w", err)
	}
	log.Printf("Seeded %d categories, %d products, %d customers", len(categories), len(products), len(customers))
	return nil
}
