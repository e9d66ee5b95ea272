// File: travelagent/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"travelagent/config"
	"travelagent/cron"
	"travelagent/database"
	bookingRepo "travelagent/database/repository/booking"
	"travelagent/handlers"
	"travelagent/middleware"
	"travelagent/routes"
	"travelagent/services/booking"
	"travelagent/services/flightdata"
	ai "travelagent/services/intelligence"
	"travelagent/services/inventory"
	"travelagent/services/oauth"
	"travelagent/services/payment"
	"travelagent/services/search"
	"travelagent/services/tasks"
	"travelagent/services/user"
	"travelagent/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const chatHistoryTTL = 30 * time.Minute

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync() //nolint:errcheck

	cfg := config.AppConfig
	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	// Optional backing services.
	var cacheClient *redis.Client
	if cfg.RedisEnabled {
		client, err := utils.NewRedisClient(cfg.RedisCacheDB)
		if err != nil {
			logger.Warn("main: Redis unavailable, chat history kept in memory", zap.Error(err))
		} else {
			cacheClient = client
			defer cacheClient.Close()
		}
	}

	var mongoClient *mongo.Client
	var repo bookingRepo.BookingRepository = bookingRepo.NewMemoryBookingRepo()
	if strings.EqualFold(cfg.BookingStore, "mongo") {
		client, err := database.Connect(rootCtx)
		if err != nil {
			logger.Fatal("main: booking store is mongo but MongoDB is unreachable", zap.Error(err))
		}
		mongoClient = client
		defer mongoClient.Disconnect(context.Background()) //nolint:errcheck
		repo = bookingRepo.NewMongoBookingRepo(database.Database(mongoClient))
	}

	var notifier tasks.Enqueuer = tasks.NoopEnqueuer{}
	var worker *asynq.Server
	if cfg.TasksEnabled {
		enqueuer := tasks.NewAsynqEnqueuer(cron.RedisOpt())
		defer enqueuer.Close()
		notifier = enqueuer
		worker = cron.InitBookingWorker()
	}

	// Inventory and search.
	genOpts := []inventory.Option{}
	if cfg.CloudinaryURL != "" {
		cld, err := utils.Cloudinary(cfg.CloudinaryURL)
		if err != nil {
			logger.Warn("main: Cloudinary disabled, using placeholder images", zap.Error(err))
		} else {
			genOpts = append(genOpts, inventory.WithImages(inventory.NewCloudinaryImages(cld, "hotels")))
		}
	}
	generator := inventory.NewGenerator(genOpts...)

	var feed inventory.FlightFeed
	if cfg.AviationstackAPIKey != "" {
		feed = flightdata.NewClient(cfg.AviationstackBaseURL, cfg.AviationstackAPIKey, cfg.UpstreamTimeout(), logger)
	}
	searchService := search.NewSearchService(generator, feed)

	// Bookings and payments.
	bookingService := booking.NewBookingService(repo, notifier, logger)

	var gateway payment.Gateway
	switch strings.ToLower(cfg.PaymentGateway) {
	case "stripe":
		gateway = payment.NewStripeGateway(cfg.StripeSecretKey, cfg.StripeWebhookSecret)
	default:
		gateway = payment.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	}
	paymentService := payment.NewPaymentService(gateway, logger)

	// Chat.
	var ctxStore ai.ContextStore = ai.NewMemoryContextStore(chatHistoryTTL)
	if cacheClient != nil {
		ctxStore = ai.NewRedisContextStore(cacheClient, chatHistoryTTL)
	}
	var model ai.ChatModel
	if cfg.GeminiAPIKey != "" {
		gemini, err := ai.NewGeminiClient(rootCtx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Error("main: failed to initialize Gemini client", zap.Error(err))
		} else {
			defer gemini.Close()
			model = gemini
		}
	}
	chatService := ai.NewChatService(model, ctxStore, cfg.ChatTimeout(), logger)

	uberAuth := oauth.NewUberAuth(cfg.UberClientID, cfg.UberClientSecret, cfg.UberRedirectURL, oauth.NewTokenSlot())

	var monitor *utils.HealthMonitor
	if cacheClient != nil || mongoClient != nil {
		monitor = utils.NewHealthMonitor(cacheClient, mongoClient, 30*time.Second)
		monitor.Start(rootCtx)
	}

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	handlerBundle := &handlers.HandlerBundle{
		Search:  handlers.NewSearchHandler(searchService),
		Booking: handlers.NewBookingHandler(bookingService),
		Payment: handlers.NewPaymentHandler(paymentService),
		AI:      handlers.NewAIHandler(chatService),
		User:    handlers.NewUserHandler(user.NewUserService()),
		Uber:    handlers.NewUberHandler(uberAuth),
		Docs:    handlers.NewDocsHandler(cfg.DocsDir),
		Health:  handlers.NewHealthHandler(monitor),
	}
	routes.RegisterRoutes(router, handlerBundle, cfg.StaticDir)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if worker != nil {
		worker.Shutdown()
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
