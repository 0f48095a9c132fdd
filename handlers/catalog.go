package handlers

import (
	"net/http"

	"ecoclean/middleware"
	"ecoclean/services/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the browse-services page data.
type CatalogHandler struct {
	Svc *catalog.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler instance.
func NewCatalogHandler(svc *catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Svc: svc}
}

// ListServices handles GET /api/services. Guest-accessible; the fallback
// list inside the service keeps this from ever returning an error page.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services := h.Svc.ListAvailable(c.Request.Context(), middleware.SessionToken(c))
	c.JSON(http.StatusOK, gin.H{"services": services})
}
