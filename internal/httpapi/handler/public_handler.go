package handler

import (
	"net/http"

	"dmthub/internal/httpapi/middleware"
	"dmthub/internal/service"

	"github.com/gin-gonic/gin"
)

// PublicHandler serves the unauthenticated read surface: the active
// disaster, the infographic gallery and published documents. All of it
// is scoped to the globally active disaster; with none active the
// endpoints return empty payloads.
type PublicHandler struct {
	disasters service.DisasterService
	documents service.DocumentService
}

func NewPublicHandler(disasters service.DisasterService, documents service.DocumentService) *PublicHandler {
	return &PublicHandler{disasters: disasters, documents: documents}
}

func (h *PublicHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/disaster", h.ActiveDisaster)
	rg.GET("/infographics", h.Infographics)
	rg.GET("/reports", h.Reports)
	rg.GET("/notulensi", h.Notulensi)
}

func (h *PublicHandler) ActiveDisaster(c *gin.Context) {
	disaster, err := h.disasters.GetActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"disaster": disaster})
}

func (h *PublicHandler) Infographics(c *gin.Context) {
	infographics, err := h.documents.ListInfographics(c.Request.Context(), middleware.ScopeFrom(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"infographics": infographics})
}

func (h *PublicHandler) Reports(c *gin.Context) {
	reports, err := h.documents.ListReports(c.Request.Context(), middleware.ScopeFrom(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

func (h *PublicHandler) Notulensi(c *gin.Context) {
	notulensi, err := h.documents.ListNotulensi(c.Request.Context(), middleware.ScopeFrom(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notulensi": notulensi})
}
