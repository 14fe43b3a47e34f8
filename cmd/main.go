package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/nasr0000/bitrix-ruble-to-tenge/internal/facades"
	"github.com/nasr0000/bitrix-ruble-to-tenge/internal/handlers"
	"github.com/nasr0000/bitrix-ruble-to-tenge/internal/logger"
	"github.com/nasr0000/bitrix-ruble-to-tenge/internal/middlewares"
	"github.com/nasr0000/bitrix-ruble-to-tenge/internal/publishers"
	"github.com/nasr0000/bitrix-ruble-to-tenge/internal/rates"
	"github.com/nasr0000/bitrix-ruble-to-tenge/internal/repositories"
	"github.com/nasr0000/bitrix-ruble-to-tenge/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title bitrix-ruble-to-tenge API
// @version 1.0.0
// @description Webhook service converting a Bitrix24 deal's RUB amount into KZT using the scraped MiG sell rate
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		bitrixURL, rubleField, targetCurrency, userAgent, bitrixTimeoutSecond,
		rateURL, rateAnchor,
		rateTTLSecond, rateTimeoutSecond, rateRetries, rateRetryDelayMS,
		rateSellMin, rateSellMax, markup,
		syncProductRows, forceIdempotencyRead,
		redisAddr, redisPassword, redisDB,
		pgDSN, kafkaBrokers, kafkaTopic,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		bitrixURL, rubleField, targetCurrency, userAgent, bitrixTimeoutSecond,
		rateURL, rateAnchor,
		rateTTLSecond, rateTimeoutSecond, rateRetries, rateRetryDelayMS,
		rateSellMin, rateSellMax, markup,
		syncProductRows, forceIdempotencyRead,
		redisAddr, redisPassword, redisDB,
		pgDSN, kafkaBrokers, kafkaTopic,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, Bitrix, rate-source, conversion, Redis, Postgres and Kafka
// configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	bitrixURL, rubleField, targetCurrency, userAgent string, bitrixTimeoutSecond int,
	rateURL, rateAnchor string,
	rateTTLSecond, rateTimeoutSecond, rateRetries, rateRetryDelayMS int,
	rateSellMin, rateSellMax, markup float64,
	syncProductRows, forceIdempotencyRead bool,
	redisAddr, redisPassword string, redisDB int,
	pgDSN, kafkaBrokers, kafkaTopic string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Bitrix config
	bitrixURL = getEnv("BITRIX_WEBHOOK_URL", "")
	rubleField = getEnv("BITRIX_RUBLE_FIELD", "UF_CRM_1753277551304")
	targetCurrency = getEnv("TARGET_CURRENCY", "KZT")
	userAgent = getEnv("HTTP_USER_AGENT", "itnasr-b24-rub2kzt")
	if bitrixTimeoutSecond, err = strconv.Atoi(getEnv("BITRIX_TIMEOUT_SECOND", "8")); err != nil {
		return
	}

	// Rate source config
	rateURL = getEnv("RATE_SOURCE_URL", "https://mig.kz/api/v1/gadget/html")
	rateAnchor = getEnv("RATE_ANCHOR", "RUB")
	if rateTTLSecond, err = strconv.Atoi(getEnv("RATE_TTL_SECOND", "120")); err != nil {
		return
	}
	if rateTimeoutSecond, err = strconv.Atoi(getEnv("RATE_TIMEOUT_SECOND", "8")); err != nil {
		return
	}
	if rateRetries, err = strconv.Atoi(getEnv("RATE_RETRIES", "2")); err != nil {
		return
	}
	if rateRetryDelayMS, err = strconv.Atoi(getEnv("RATE_RETRY_DELAY_MS", "500")); err != nil {
		return
	}
	if rateSellMin, err = strconv.ParseFloat(getEnv("RATE_SELL_MIN", "0.5"), 64); err != nil {
		return
	}
	if rateSellMax, err = strconv.ParseFloat(getEnv("RATE_SELL_MAX", "50"), 64); err != nil {
		return
	}

	// Conversion config
	if markup, err = strconv.ParseFloat(getEnv("CONVERT_MARKUP", "1.0"), 64); err != nil {
		return
	}
	if syncProductRows, err = strconv.ParseBool(getEnv("CONVERT_SYNC_PRODUCT_ROWS", "false")); err != nil {
		return
	}
	if forceIdempotencyRead, err = strconv.ParseBool(getEnv("CONVERT_FORCE_IDEMPOTENCY_READ", "false")); err != nil {
		return
	}

	// Redis config (optional shared rate cache)
	redisAddr = getEnv("REDIS_ADDR", "")
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}

	// Postgres config (optional audit log)
	pgDSN = getEnv("POSTGRES_DSN", "")

	// Kafka config (optional conversion events)
	kafkaBrokers = getEnv("KAFKA_BROKERS", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "deal-conversions")

	if bitrixURL == "" {
		err = fmt.Errorf("BITRIX_WEBHOOK_URL is required")
	}
	return
}

// run initializes the logger, optional Redis, Postgres and Kafka
// collaborators, wires the conversion pipeline and serves HTTP until a
// shutdown signal arrives.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	bitrixURL, rubleField, targetCurrency, userAgent string, bitrixTimeoutSecond int,
	rateURL, rateAnchor string,
	rateTTLSecond, rateTimeoutSecond, rateRetries, rateRetryDelayMS int,
	rateSellMin, rateSellMax, markup float64,
	syncProductRows, forceIdempotencyRead bool,
	redisAddr, redisPassword string, redisDB int,
	pgDSN, kafkaBrokers, kafkaTopic string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	ttl := time.Duration(rateTTLSecond) * time.Second

	// Rate cache: Redis when configured, in-process otherwise
	var cache rates.Cache
	if redisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: redisPassword,
			DB:       redisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Fatal("Redis connection error:", err)
		}
		defer rdb.Close()
		cache = rates.NewRedisCache(rdb, "rate:"+rateAnchor, ttl)
		logger.Log.Infof("Using Redis rate cache at %s", redisAddr)
	} else {
		cache = rates.NewMemoryCache(ttl)
	}

	provider := rates.NewProvider(cache, rates.Config{
		URL:        rateURL,
		Anchor:     rateAnchor,
		UserAgent:  userAgent,
		Timeout:    time.Duration(rateTimeoutSecond) * time.Second,
		Retries:    rateRetries,
		RetryDelay: time.Duration(rateRetryDelayMS) * time.Millisecond,
		SellMin:    rateSellMin,
		SellMax:    rateSellMax,
	})

	bitrix := facades.NewBitrixFacade(bitrixURL, userAgent, time.Duration(bitrixTimeoutSecond)*time.Second)

	// Optional audit log
	var recorder services.ConversionRecorder
	var auditReader *repositories.ConversionReadRepository
	if pgDSN != "" {
		db, err := sqlx.ConnectContext(ctx, "pgx", pgDSN)
		if err != nil {
			logger.Log.Fatal("PostgreSQL connection error:", err)
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			logger.Log.Fatal("PostgreSQL ping failed:", err)
		}
		recorder = repositories.NewConversionWriteRepository(db)
		auditReader = repositories.NewConversionReadRepository(db)
		logger.Log.Info("Conversion audit log enabled")
	}

	// Optional conversion events
	var notifier services.ConversionNotifier
	if kafkaBrokers != "" {
		publisher := publishers.NewKafkaPublisher(strings.Split(kafkaBrokers, ","), kafkaTopic)
		defer publisher.Close()
		notifier = publisher
		logger.Log.Infof("Conversion events enabled on topic %s", kafkaTopic)
	}

	converter := services.NewConversionService(
		services.Config{
			RubleField:           rubleField,
			TargetCurrency:       targetCurrency,
			Markup:               markup,
			SyncProductRows:      syncProductRows,
			ForceIdempotencyRead: forceIdempotencyRead,
		},
		provider,
		bitrix,
		bitrix,
		bitrix,
		recorder,
		notifier,
	)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Post("/", handlers.NewDealWebhookHandler(converter, rubleField))
	r.Get("/healthz", handlers.NewHealthHandler())
	if auditReader != nil {
		r.Get("/conversions", handlers.NewRecentConversionsHandler(auditReader))
	}

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
