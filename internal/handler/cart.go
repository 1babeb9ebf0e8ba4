package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/formesean/tilltally/internal/cart"
	"github.com/formesean/tilltally/internal/catalog"
	"github.com/formesean/tilltally/internal/pricing"
)

type CartHandler struct {
	Cart    *cart.Store
	Catalog *catalog.Provider
}

func (h *CartHandler) GetCart(c *gin.Context) {
	items := h.Cart.Items()
	subtotal := pricing.Subtotal(items)
	c.JSON(http.StatusOK, gin.H{
		"items":              items,
		"subtotal":           subtotal.InexactFloat64(),
		"subtotal_formatted": pricing.Format(subtotal),
	})
}

type AddItemRequest struct {
	ProductIndex *int   `json:"product_index" binding:"required"`
	Size         string `json:"size" binding:"required"`
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.Catalog.Product(*req.ProductIndex)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !product.HasSize(req.Size) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("size %q not available for %s", req.Size, product.ProductName)})
		return
	}

	item := h.Cart.Add(product, req.Size)
	c.JSON(http.StatusCreated, item)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid index"})
		return
	}

	if err := h.Cart.Remove(index); err != nil {
		if errors.Is(err, cart.ErrIndexOutOfRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	h.Cart.Clear()
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
