package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Dhruvsinh6969/Trade-Order-Sheet/internal/domain/models"
	"github.com/Dhruvsinh6969/Trade-Order-Sheet/internal/service/order"
)

// OrderHandler handles recommendation and submission requests.
type OrderHandler struct {
	svc    *order.Service
	logger *zap.Logger
}

// NewOrderHandler constructs the HTTP handler adapter.
func NewOrderHandler(svc *order.Service, logger *zap.Logger) *OrderHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderHandler{svc: svc, logger: logger}
}

// Recommend recomputes the suggested order quantity for the current form state.
func (h *OrderHandler) Recommend(c *gin.Context) {
	var req models.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid recommend payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	view, err := h.svc.Recommend(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, order.ErrMissingSelection) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("recommendation failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to compute recommendation"})
		return
	}

	c.JSON(http.StatusOK, view)
}

// Submit records one order line per SKU in the ledger.
func (h *OrderHandler) Submit(c *gin.Context) {
	var req models.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid order payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.svc.Submit(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, order.ErrMissingSelection) || errors.Is(err, order.ErrNoLines) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("order submission failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to submit order"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
