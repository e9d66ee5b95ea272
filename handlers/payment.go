package handlers

import (
	"io"
	"net/http"
	"strconv"

	"travelagent/models"
	"travelagent/services/payment"
	"travelagent/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxWebhookBody caps the webhook payload read into memory.
const maxWebhookBody = 64 << 10

// PaymentHandler serves /api/payments.
type PaymentHandler struct {
	Service payment.PaymentService
}

func NewPaymentHandler(svc payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: svc}
}

// CreateOrderHandler opens a gateway order. The amount may also be given as
// the ?amount= query parameter, which wins over the body.
func (h *PaymentHandler) CreateOrderHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.OrderRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Invalid order body", zap.Error(err))
			utils.JSONError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
			return
		}
	}
	if raw := c.Query("amount"); raw != "" {
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid amount: must be a number")
			return
		}
		req.Amount = amount
	}

	order, err := h.Service.CreateOrder(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create order", zap.Float64("amount", req.Amount), zap.Error(err))
		utils.WriteError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, order)
}

// VerifyPaymentHandler checks the checkout callback signature.
func (h *PaymentHandler) VerifyPaymentHandler(c *gin.Context) {
	logger := getLogger(c)

	var v models.PaymentVerification
	if err := c.ShouldBindJSON(&v); err != nil {
		logger.Warn("Invalid verification body", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	res, err := h.Service.VerifyPayment(c.Request.Context(), v)
	if err != nil {
		logger.Warn("Payment verification failed", zap.String("orderID", v.OrderID), zap.Error(err))
		utils.WriteError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, res)
}

// WebhookHandler accepts signed gateway events.
func (h *PaymentHandler) WebhookHandler(c *gin.Context) {
	logger := getLogger(c)

	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Unable to read request body")
		return
	}

	eventType, err := h.Service.HandleWebhook(c.Request.Context(), payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		logger.Warn("Webhook rejected", zap.Error(err))
		utils.WriteError(c, err, http.StatusInternalServerError)
		return
	}
	logger.Info("Webhook received", zap.String("event", eventType))
	c.JSON(http.StatusOK, gin.H{"received": true, "type": eventType})
}
