package api

import (
	"errors"
	"net/http"

	"smartkasir/internal/pos"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// posHandler holds the register service and implements the HTTP handlers
// the operator UI calls.
type posHandler struct {
	svc    *pos.Service
	logger *zap.Logger
}

// NewPosHandler creates a new register handler.
func NewPosHandler(svc *pos.Service, logger *zap.Logger) *posHandler {
	return &posHandler{
		svc:    svc,
		logger: logger,
	}
}

// writeError maps domain errors onto HTTP status codes.
func (h *posHandler) writeError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, pos.ErrValidation):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, pos.ErrProductNotFound), errors.Is(err, pos.ErrLineNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, pos.ErrEmptyCart):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, pos.ErrInvalidTransition):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, pos.ErrInsufficientPayment):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		h.logger.Error("unexpected error", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// handleListProducts handles GET /products with an optional ?category=
// filter.
func (h *posHandler) handleListProducts(ctx *gin.Context) {
	category := ctx.Query("category")
	ctx.JSON(http.StatusOK, gin.H{"products": h.svc.Products(category)})
}

// handleCreateProduct handles POST /products.
func (h *posHandler) handleCreateProduct(ctx *gin.Context) {
	var spec pos.ProductSpec
	if err := ctx.ShouldBindJSON(&spec); err != nil {
		h.logger.Warn("failed to bind product spec", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	p, err := h.svc.AddProduct(spec)
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, p)
}

// handleUpdateProduct handles PATCH /products/:id.
func (h *posHandler) handleUpdateProduct(ctx *gin.Context) {
	var patch pos.ProductPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	p, err := h.svc.UpdateProduct(ctx.Param("id"), patch)
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, p)
}

// handleDeleteProduct handles DELETE /products/:id.
func (h *posHandler) handleDeleteProduct(ctx *gin.Context) {
	if err := h.svc.RemoveProduct(ctx.Param("id")); err != nil {
		h.writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// handleGetCart handles GET /cart.
func (h *posHandler) handleGetCart(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"lines":    h.svc.CartLines(),
		"subtotal": h.svc.CartSubtotal(),
	})
}

// handleAddCartItem handles POST /cart/items. Quantity defaults to 1,
// matching a tap on a product tile.
func (h *posHandler) handleAddCartItem(ctx *gin.Context) {
	var req struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if err := h.svc.AddToCart(req.ProductID, req.Quantity); err != nil {
		h.writeError(ctx, err)
		return
	}
	h.handleGetCart(ctx)
}

// handleSetCartQuantity handles PATCH /cart/items/:id.
func (h *posHandler) handleSetCartQuantity(ctx *gin.Context) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	if err := h.svc.SetCartQuantity(ctx.Param("id"), req.Quantity); err != nil {
		h.writeError(ctx, err)
		return
	}
	h.handleGetCart(ctx)
}

// handleRemoveCartItem handles DELETE /cart/items/:id.
func (h *posHandler) handleRemoveCartItem(ctx *gin.Context) {
	h.svc.RemoveFromCart(ctx.Param("id"))
	ctx.Status(http.StatusNoContent)
}

// handleClearCart handles DELETE /cart.
func (h *posHandler) handleClearCart(ctx *gin.Context) {
	h.svc.ClearCart()
	ctx.Status(http.StatusNoContent)
}

// handleBeginCheckout handles POST /checkout.
func (h *posHandler) handleBeginCheckout(ctx *gin.Context) {
	if err := h.svc.BeginCheckout(); err != nil {
		h.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, h.svc.CheckoutState())
}

// handleSelectPaymentMethod handles POST /checkout/payment-method.
func (h *posHandler) handleSelectPaymentMethod(ctx *gin.Context) {
	var req struct {
		Method pos.PaymentMethod `json:"method"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	if err := h.svc.SelectPaymentMethod(req.Method); err != nil {
		h.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, h.svc.CheckoutState())
}

// handleSetReceivedAmount handles POST /checkout/received.
func (h *posHandler) handleSetReceivedAmount(ctx *gin.Context) {
	var req struct {
		Amount int64 `json:"amount"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	if err := h.svc.SetReceivedAmount(req.Amount); err != nil {
		h.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, h.svc.CheckoutState())
}

// handleGetCheckout handles GET /checkout.
func (h *posHandler) handleGetCheckout(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.svc.CheckoutState())
}

// handleCompleteCheckout handles POST /checkout/complete.
func (h *posHandler) handleCompleteCheckout(ctx *gin.Context) {
	trx, err := h.svc.CompleteCheckout()
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, trx)
}

// handleAbortCheckout handles POST /checkout/abort.
func (h *posHandler) handleAbortCheckout(ctx *gin.Context) {
	if err := h.svc.AbortCheckout(); err != nil {
		h.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, h.svc.CheckoutState())
}

// handleListTransactions handles GET /transactions, most recent first.
func (h *posHandler) handleListTransactions(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"transactions": h.svc.Transactions()})
}

// handleSummary handles GET /reports/summary.
func (h *posHandler) handleSummary(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.svc.Summary())
}
