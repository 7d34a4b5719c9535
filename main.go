package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tidylist/internal/handlers"
	"tidylist/internal/middleware"
	"tidylist/internal/models"
	"tidylist/internal/repositories"
	"tidylist/internal/response"
	"tidylist/internal/services"
	"tidylist/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DB_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=tidylist port=5432 sslmode=disable")
	viper.SetDefault("TOKEN_TTL_HOURS", 24)
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	jwtSecret := viper.GetString("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}
	tokenTTL := time.Duration(viper.GetInt("TOKEN_TTL_HOURS")) * time.Hour

	// --- Database ---
	db, err := openDatabase(viper.GetString("DB_DRIVER"), viper.GetString("DATABASE_URL"))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Category{}, &models.Task{}, &models.UserSettings{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	// Events are best-effort: an unset RABBITMQ_URL runs the API without a
	// broker and the services skip publishing.
	var mqClient *rabbitmq.Client
	var events services.EventPublisher
	if rabbitMQURL := viper.GetString("RABBITMQ_URL"); rabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Printf("Warning: RabbitMQ unavailable, domain events disabled: %v", err)
		} else {
			defer mqClient.Close()
			events = mqClient
		}
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	taskRepo := repositories.NewGORMTaskRepository(db)
	settingsRepo := repositories.NewGORMSettingsRepository(db)

	// --- Services ---
	authService := services.NewAuthService(userRepo, jwtSecret, tokenTTL)
	categoryService := services.NewCategoryService(categoryRepo, taskRepo, events)
	taskService := services.NewTaskService(taskRepo, categoryRepo, events)
	userService := services.NewUserService(settingsRepo)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	taskHandler := handlers.NewTaskHandler(taskService)
	userHandler := handlers.NewUserHandler(userService)

	// --- Fiber App ---
	app := fiber.New(fiber.Config{
		ErrorHandler: response.ErrorHandler,
	})
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Public auth routes plus the gated profile route.
	authRequired := middleware.AuthRequired(authService)
	authHandler.RegisterRoutes(app, authRequired)

	// Everything else sits behind the auth gate.
	protected := app.Group("", authRequired)
	categoryHandler.RegisterRoutes(protected)
	taskHandler.RegisterRoutes(protected)
	userHandler.RegisterRoutes(protected)

	// --- Domain-event consumer ---
	if mqClient != nil && events != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for domain events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received domain event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP server with graceful shutdown ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
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

// openDatabase opens the configured database. TranslateError turns driver
// unique-violation errors into gorm.ErrDuplicatedKey, which the repositories
// rely on as the authoritative duplicate guard.
func openDatabase(driver, dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}
	if driver == "sqlite" {
		return gorm.Open(sqlite.Open(dsn), cfg)
	}
	return gorm.Open(postgres.Open(dsn), cfg)
}
