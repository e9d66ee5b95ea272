package handlers

import (
	"net/http"

	"travelagent/models"
	"travelagent/services/booking"
	"travelagent/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves /api/bookings.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBookingHandler records a confirmed booking.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid booking body", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	b, err := h.Service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create booking", zap.Error(err))
		utils.WriteError(c, err, http.StatusInternalServerError)
		return
	}
	logger.Info("Booking created", zap.Int("bookingID", b.ID), zap.String("type", b.BookingType))
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.ListBookings(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to list bookings", zap.Error(err))
		utils.WriteError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	b, err := h.Service.GetBooking(c.Request.Context(), id)
	if err != nil {
		utils.WriteError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CancelBookingHandler removes a booking.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	if err := h.Service.CancelBooking(c.Request.Context(), id); err != nil {
		utils.WriteError(c, err, http.StatusInternalServerError)
		return
	}
	getLogger(c).Info("Booking cancelled", zap.Int("bookingID", id))
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking cancelled"})
}
