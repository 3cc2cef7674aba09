package handler

import (
	"errors"
	"net/http"
	"strconv"

	"dmthub/internal/httpapi/dto"
	"dmthub/internal/httpapi/middleware"
	"dmthub/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SourceLinkHandler struct {
	svc service.SourceLinkService
}

func NewSourceLinkHandler(svc service.SourceLinkService) *SourceLinkHandler {
	return &SourceLinkHandler{svc: svc}
}

func (h *SourceLinkHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Save)
	rg.POST("/:id/scan", h.Rescan)
	rg.DELETE("/:id", h.Delete)
}

func (h *SourceLinkHandler) List(c *gin.Context) {
	links, err := h.svc.List(c.Request.Context(), middleware.ScopeFrom(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"links": links})
}

// Save stores a new source link and scans it right away. A failed scan
// still returns 201 with a warning; only the save itself can fail.
func (h *SourceLinkHandler) Save(c *gin.Context) {
	var req dto.SaveSourceLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	outcome, err := h.svc.Save(c.Request.Context(), middleware.ScopeFrom(c), service.SaveSourceLinkInput{
		Kind:  req.Kind,
		Title: req.Title,
		URL:   req.URL,
	})
	switch {
	case errors.Is(err, service.ErrNoActiveDisaster):
		c.JSON(http.StatusConflict, gin.H{"error": "no disaster selected"})
		return
	case errors.Is(err, service.ErrUnknownSourceKind):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, outcome)
}

func (h *SourceLinkHandler) Rescan(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid link id"})
		return
	}

	outcome, err := h.svc.Rescan(c.Request.Context(), middleware.ScopeFrom(c), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "link not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, outcome)
}

func (h *SourceLinkHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid link id"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), middleware.ScopeFrom(c), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "link not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
