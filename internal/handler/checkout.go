package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/formesean/tilltally/internal/cart"
	"github.com/formesean/tilltally/internal/catalog"
	"github.com/formesean/tilltally/internal/checkout"
	"github.com/formesean/tilltally/internal/pricing"
)

type CheckoutHandler struct {
	Recorder *checkout.Recorder
	Cart     *cart.Store
	Catalog  *catalog.Provider
}

// Begin opens the checkout dialog: captures the timestamp candidate and
// returns it with the current cart snapshot.
func (h *CheckoutHandler) Begin(c *gin.Context) {
	ts := h.Recorder.Begin()
	items := h.Cart.Items()
	subtotal := pricing.Subtotal(items)
	c.JSON(http.StatusOK, gin.H{
		"date_time": ts.Format(checkout.TimestampLayout),
		"items":     items,
		"subtotal":  subtotal.InexactFloat64(),
	})
}

// Preview computes the discounted total for a candidate code without
// committing anything.
func (h *CheckoutHandler) Preview(c *gin.Context) {
	code := c.Query("code")
	items := h.Cart.Items()
	total := pricing.DiscountedTotal(items, code, h.Catalog.DiscountCodes())
	c.JSON(http.StatusOK, gin.H{
		"code":            code,
		"total":           total.InexactFloat64(),
		"total_formatted": pricing.Format(total),
	})
}

type ConfirmRequest struct {
	// Cashier name and code are free text; empty strings are accepted.
	CashierName string `json:"cashier_name"`
	Code        string `json:"code"`
}

func (h *CheckoutHandler) Confirm(c *gin.Context) {
	var req ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tx, err := h.Recorder.Confirm(req.CashierName, req.Code)
	if err != nil {
		if errors.Is(err, checkout.ErrNotConfirming) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record checkout"})
		return
	}
	c.JSON(http.StatusCreated, tx)
}

func (h *CheckoutHandler) Cancel(c *gin.Context) {
	h.Recorder.Cancel()
	c.JSON(http.StatusOK, gin.H{"message": "Checkout cancelled"})
}
