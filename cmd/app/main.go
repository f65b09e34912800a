package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"blip/cmd"
	blipHTTP "blip/internal/adapters/in/http"
	"blip/internal/adapters/out/postgres/orderrepo"
	"blip/internal/adapters/out/postgres/userrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"golang.org/x/time/rate"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := mustOpenDatabase(configs)

	app := cmd.NewCompositionRoot(configs, db)
	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort:             envString("HTTP_PORT"),
		DBHost:               envString("DB_HOST"),
		DBPort:               envString("DB_PORT"),
		DBUser:               envString("DB_USER"),
		DBPassword:           envString("DB_PASSWORD"),
		DBName:               envString("DB_NAME"),
		DBSslMode:            envString("DB_SSLMODE"),
		JWTSecret:            envString("JWT_SECRET"),
		JWTExpiresIn:         envDuration("JWT_EXPIRES_IN"),
		LogLevel:             envString("LOG_LEVEL"),
		RateLimitWindow:      envDuration("RATE_LIMIT_WINDOW"),
		RateLimitMaxRequests: envInt("RATE_LIMIT_MAX_REQUESTS"),
		StalePendingMaxAge:   envDuration("STALE_PENDING_MAX_AGE"),
	}
}

func envString(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("%s env is not set", key)
	}
	return value
}

func envInt(key string) int {
	parsed, err := strconv.Atoi(envString(key))
	if err != nil {
		log.Fatalf("%s must be a number: %v", key, err)
	}
	return parsed
}

func envDuration(key string) time.Duration {
	parsed, err := time.ParseDuration(envString(key))
	if err != nil {
		log.Fatalf("%s must be a duration (e.g. 24h, 15m): %v", key, err)
	}
	return parsed
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&orderrepo.OrderDTO{}, &userrepo.UserDTO{}); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()
	e.Logger.SetLevel(logLevel(configs.LogLevel))
	e.Validator = blipHTTP.NewRequestValidator()
	e.HTTPErrorHandler = blipHTTP.NewHTTPErrorHandler(e)

	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(rateLimiter(configs))

	server := blipHTTP.NewServer(
		app.CreateLoginCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.TokenService(),
	)
	server.RegisterRoutes(e)

	jobManager := app.CreateJobManager(slog.Default())
	if err := jobManager.StartAll(); err != nil {
		e.Logger.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}

// rateLimiter applies the configured per-client request budget to every
// route except the health check. Uses echo's in-memory store, matching the
// single-instance deployment this service targets.
func rateLimiter(configs cmd.Config) echo.MiddlewareFunc {
	window := configs.RateLimitWindow
	if window <= 0 {
		window = time.Minute
	}
	perSecond := float64(configs.RateLimitMaxRequests) / window.Seconds()

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/health"
		},
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(perSecond),
			Burst:     configs.RateLimitMaxRequests,
			ExpiresIn: window,
		}),
	})
}

func logLevel(level string) log.Lvl {
	switch level {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	default:
		return log.INFO
	}
}
