package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/formesean/tilltally/internal/cart"
	"github.com/formesean/tilltally/internal/catalog"
	"github.com/formesean/tilltally/internal/checkout"
	"github.com/formesean/tilltally/internal/ledger"
	"github.com/formesean/tilltally/internal/middleware"
)

// Deps are the application-owned stores the handlers operate on.
type Deps struct {
	Catalog  *catalog.Provider
	Cart     *cart.Store
	Ledger   *ledger.Ledger
	Recorder *checkout.Recorder
	Logger   *zap.Logger
}

// RegisterRoutes mounts the API on the router.
func RegisterRoutes(r *gin.Engine, deps Deps) {
	r.Use(middleware.RequestLogger(deps.Logger))

	catalogHandler := &CatalogHandler{Catalog: deps.Catalog}
	catalogRoutes := r.Group("/api/v1/catalog")
	{
		catalogRoutes.GET("/products", catalogHandler.ListProducts)
		catalogRoutes.GET("/codes", catalogHandler.ListDiscountCodes)
		catalogRoutes.GET("/site-info", catalogHandler.GetSiteInfo)
	}

	cartHandler := &CartHandler{Cart: deps.Cart, Catalog: deps.Catalog}
	cartRoutes := r.Group("/api/v1/cart")
	{
		cartRoutes.GET("", cartHandler.GetCart)
		cartRoutes.POST("/items", cartHandler.AddItem)
		cartRoutes.DELETE("/items/:index", cartHandler.RemoveItem)
		cartRoutes.DELETE("", cartHandler.ClearCart)
	}

	checkoutHandler := &CheckoutHandler{Recorder: deps.Recorder, Cart: deps.Cart, Catalog: deps.Catalog}
	checkoutRoutes := r.Group("/api/v1/checkout")
	{
		checkoutRoutes.POST("", checkoutHandler.Begin)
		checkoutRoutes.GET("/preview", checkoutHandler.Preview)
		checkoutRoutes.POST("/confirm", checkoutHandler.Confirm)
		checkoutRoutes.POST("/cancel", checkoutHandler.Cancel)
	}

	transactionsHandler := &TransactionsHandler{Ledger: deps.Ledger}
	transactionRoutes := r.Group("/api/v1/transactions")
	{
		transactionRoutes.GET("", transactionsHandler.ListTransactions)
		transactionRoutes.DELETE("/:index", transactionsHandler.DeleteTransaction)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})
}
