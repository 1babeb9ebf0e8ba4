package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/formesean/tilltally/config"
	"github.com/formesean/tilltally/internal/catalog"
)

type CatalogHandler struct {
	Catalog *catalog.Provider
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.Catalog.Products())
}

func (h *CatalogHandler) ListDiscountCodes(c *gin.Context) {
	c.JSON(http.StatusOK, h.Catalog.DiscountCodes())
}

func (h *CatalogHandler) GetSiteInfo(c *gin.Context) {
	c.JSON(http.StatusOK, config.AppConfig.Site)
}
