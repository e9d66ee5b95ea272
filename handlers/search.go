package handlers

import (
	"net/http"
	"strconv"

	"travelagent/models"
	"travelagent/services/search"
	"travelagent/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SearchHandler serves the flight, hotel and transport search endpoints.
type SearchHandler struct {
	Search search.SearchService
}

func NewSearchHandler(svc search.SearchService) *SearchHandler {
	return &SearchHandler{Search: svc}
}

// SearchFlightsHandler wraps the offers in {"flights": [...]}. Upstream
// failures are reported as 502.
func (h *SearchHandler) SearchFlightsHandler(c *gin.Context) {
	logger := getLogger(c)

	var q models.FlightQuery
	if err := c.ShouldBindJSON(&q); err != nil {
		logger.Warn("Invalid flight search body", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	flights, err := h.Search.SearchFlights(c.Request.Context(), q)
	if err != nil {
		logger.Error("Flight search failed", zap.String("from", q.From), zap.String("to", q.To), zap.Error(err))
		utils.WriteError(c, err, http.StatusBadGateway)
		return
	}
	c.JSON(http.StatusOK, gin.H{"flights": flights})
}

func (h *SearchHandler) SearchHotelsHandler(c *gin.Context) {
	logger := getLogger(c)

	var q models.HotelQuery
	if err := c.ShouldBindJSON(&q); err != nil {
		logger.Warn("Invalid hotel search body", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	hotels, err := h.Search.SearchHotels(c.Request.Context(), q)
	if err != nil {
		logger.Error("Hotel search failed", zap.String("location", q.Location), zap.Error(err))
		utils.WriteError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, hotels)
}

func (h *SearchHandler) SearchTransportHandler(c *gin.Context) {
	logger := getLogger(c)

	var q models.TransportQuery
	if err := c.ShouldBindJSON(&q); err != nil {
		logger.Warn("Invalid transport search body", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	options, err := h.Search.SearchTransport(c.Request.Context(), q)
	if err != nil {
		logger.Error("Transport search failed", zap.String("pickup", q.Pickup), zap.Error(err))
		utils.WriteError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, options)
}

// HealthHandler returns per-domain liveness.
func (h *SearchHandler) HealthHandler(domain string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": domain})
	}
}

func (h *SearchHandler) SampleFlightsHandler(c *gin.Context) {
	flights, err := h.Search.SampleFlights(c.Request.Context())
	if err != nil {
		utils.WriteError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, gin.H{"flights": flights})
}

func (h *SearchHandler) SampleHotelsHandler(c *gin.Context) {
	hotels, err := h.Search.SampleHotels(c.Request.Context())
	if err != nil {
		utils.WriteError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, hotels)
}

func (h *SearchHandler) SampleTransportHandler(c *gin.Context) {
	options, err := h.Search.SampleTransport(c.Request.Context())
	if err != nil {
		utils.WriteError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, options)
}

// GetFlightHandler looks up one of the demo flights.
func (h *SearchHandler) GetFlightHandler(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	flight, err := h.Search.GetFlight(id)
	if err != nil {
		utils.WriteError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, flight)
}

// GetTransportHandler looks up one of the demo transfers.
func (h *SearchHandler) GetTransportHandler(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	option, err := h.Search.GetTransport(id)
	if err != nil {
		utils.WriteError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, option)
}

// intParam parses a numeric path parameter, answering 400 when it is not one.
func intParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid "+name+": must be an integer")
		return 0, false
	}
	return id, true
}
