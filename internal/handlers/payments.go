package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"medtour-server/internal/payment"
	"medtour-server/internal/utils"
)

// PaymentHandler creates payment intents for the checkout page.
type PaymentHandler struct {
	Provider payment.Provider // nil means demo mode
}

// NewPaymentHandler creates a new PaymentHandler. provider may be nil.
func NewPaymentHandler(provider payment.Provider) *PaymentHandler {
	return &PaymentHandler{Provider: provider}
}

// PaymentIntentRequest carries the amount in major currency units.
type PaymentIntentRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// PaymentIntentResponse is what the checkout page needs to confirm a payment.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
	Mode         string `json:"mode"`
}

// CreatePaymentIntent handles POST /api/create-payment-intent.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req PaymentIntentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	amountMinor, err := payment.ToMinorUnits(req.Amount)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	if h.Provider == nil {
		c.JSON(http.StatusOK, PaymentIntentResponse{ClientSecret: payment.DemoClientSecret, Mode: payment.ModeDemo})
		return
	}

	secret, err := h.Provider.CreateIntent(c.Request.Context(), amountMinor)
	if err != nil {
		// provider errors carry the provider's message verbatim
		utils.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, PaymentIntentResponse{ClientSecret: secret, Mode: payment.ModeLive})
}
