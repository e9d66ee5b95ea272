package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"travelagent/handlers"
	"travelagent/services/search"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterSearchRoutes registers the flight, hotel and transport endpoints.
func RegisterSearchRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	h := hb.Search

	flights := r.Group("/api/flights")
	{
		flights.POST("/search", h.SearchFlightsHandler)
		flights.GET("/health", h.HealthHandler(search.DomainFlights))
		flights.GET("/test", h.SampleFlightsHandler)
		flights.GET("/:id", h.GetFlightHandler)
	}

	hotels := r.Group("/api/hotels")
	{
		hotels.POST("/search", h.SearchHotelsHandler)
		hotels.GET("/health", h.HealthHandler(search.DomainHotels))
		hotels.GET("/test", h.SampleHotelsHandler)
	}

	transport := r.Group("/api/transport")
	{
		transport.POST("/search", h.SearchTransportHandler)
		transport.GET("/health", h.HealthHandler(search.DomainTransport))
		transport.GET("/test", h.SampleTransportHandler)
		transport.GET("/:id", h.GetTransportHandler)
	}
}

// RegisterUberRoutes registers the Uber OAuth flow under /api/transport/uber.
func RegisterUberRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	if hb.Uber == nil {
		return
	}
	uber := r.Group("/api/transport/uber")
	{
		uber.GET("/login", hb.Uber.LoginHandler)
		uber.GET("/callback", hb.Uber.CallbackHandler)
		uber.GET("/status", hb.Uber.StatusHandler)
	}
}

// RegisterBookingRoutes sets up the booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.POST("/", hb.Booking.CreateBookingHandler)
		bookingGroup.GET("/", hb.Booking.ListBookingsHandler)
		bookingGroup.GET("/:id", hb.Booking.GetBookingHandler)
		bookingGroup.DELETE("/:id", hb.Booking.CancelBookingHandler)
	}
}

// RegisterPaymentRoutes sets up checkout endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	payments := r.Group("/api/payments")
	{
		payments.POST("/create-order", hb.Payment.CreateOrderHandler)
		payments.POST("/verify-payment", hb.Payment.VerifyPaymentHandler)
		payments.POST("/webhook", hb.Payment.WebhookHandler)
	}
}

// RegisterAIRoutes registers AI endpoints.
func RegisterAIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/ai")
	{
		api.POST("/chat", hb.AI.ChatHandler)
		api.GET("/health", hb.AI.HealthHandler)
	}
}

// RegisterUserRoutes registers the demo user endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.GET("/profile", hb.User.GetProfileHandler)
		api.GET("/preferences", hb.User.GetPreferencesHandler)
		api.PUT("/preferences", hb.User.UpdatePreferencesHandler)
	}
}

// RegisterOpsRoutes registers health, metrics and API docs.
func RegisterOpsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.Health.StatusHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if hb.Docs != nil {
		r.GET("/docs", hb.Docs.ReferenceHandler)
	}
}

// RegisterStatic serves the frontend build from dir for every unmatched GET
// outside /api, falling back to index.html for client-side routes.
func RegisterStatic(r *gin.Engine, dir string) {
	r.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if dir == "" || c.Request.Method != http.MethodGet || strings.HasPrefix(path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Not Found"})
			return
		}
		target := filepath.Join(dir, filepath.Clean("/"+path))
		if info, err := os.Stat(target); err == nil && !info.IsDir() {
			c.File(target)
			return
		}
		c.File(filepath.Join(dir, "index.html"))
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, staticDir string) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterSearchRoutes(r, hb)
	RegisterUberRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterAIRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterOpsRoutes(r, hb)
	RegisterStatic(r, staticDir)
}
