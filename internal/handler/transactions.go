package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/formesean/tilltally/internal/ledger"
)

type TransactionsHandler struct {
	Ledger *ledger.Ledger
}

func (h *TransactionsHandler) ListTransactions(c *gin.Context) {
	transactions := h.Ledger.List()
	c.JSON(http.StatusOK, gin.H{
		"data":  transactions,
		"total": len(transactions),
	})
}

func (h *TransactionsHandler) DeleteTransaction(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid index"})
		return
	}

	if err := h.Ledger.Delete(index); err != nil {
		if errors.Is(err, ledger.ErrIndexOutOfRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete transaction"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted"})
}
