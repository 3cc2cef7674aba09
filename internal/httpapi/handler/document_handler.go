package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"dmthub/internal/httpapi/middleware"
	"dmthub/internal/service"
	"dmthub/internal/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DocumentHandler serves the admin-uploaded reports and notulensi.
type DocumentHandler struct {
	svc     service.DocumentService
	uploads *storage.UploadStore
}

func NewDocumentHandler(svc service.DocumentService, uploads *storage.UploadStore) *DocumentHandler {
	return &DocumentHandler{svc: svc, uploads: uploads}
}

func (h *DocumentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/reports", h.ListReports)
	rg.POST("/reports", h.CreateReport)
	rg.DELETE("/reports/:id", h.DeleteReport)

	rg.GET("/notulensi", h.ListNotulensi)
	rg.POST("/notulensi", h.CreateNotulensi)
	rg.DELETE("/notulensi/:id", h.DeleteNotulensi)
}

func (h *DocumentHandler) ListReports(c *gin.Context) {
	reports, err := h.svc.ListReports(c.Request.Context(), middleware.ScopeFrom(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

func (h *DocumentHandler) CreateReport(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	path, err := h.uploads.Save(fh, "laporan")
	if err != nil {
		h.uploadError(c, err)
		return
	}

	report, err := h.svc.CreateReport(c.Request.Context(), middleware.ScopeFrom(c), c.PostForm("title"), path)
	switch {
	case errors.Is(err, service.ErrTitleRequired), errors.Is(err, service.ErrNoActiveDisaster):
		h.uploads.Remove(path)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		h.uploads.Remove(path)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, report)
}

func (h *DocumentHandler) DeleteReport(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report id"})
		return
	}

	if err := h.svc.DeleteReport(c.Request.Context(), middleware.ScopeFrom(c), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DocumentHandler) ListNotulensi(c *gin.Context) {
	notulensi, err := h.svc.ListNotulensi(c.Request.Context(), middleware.ScopeFrom(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notulensi": notulensi})
}

func (h *DocumentHandler) CreateNotulensi(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	var tanggal *time.Time
	if raw := c.PostForm("tanggal"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date: " + raw})
			return
		}
		tanggal = &t
	}

	path, err := h.uploads.Save(fh, "notulensi")
	if err != nil {
		h.uploadError(c, err)
		return
	}

	n, err := h.svc.CreateNotulensi(c.Request.Context(), middleware.ScopeFrom(c), c.PostForm("title"), path, tanggal)
	switch {
	case errors.Is(err, service.ErrTitleRequired), errors.Is(err, service.ErrNoActiveDisaster):
		h.uploads.Remove(path)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		h.uploads.Remove(path)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, n)
}

func (h *DocumentHandler) DeleteNotulensi(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notulensi id"})
		return
	}

	if err := h.svc.DeleteNotulensi(c.Request.Context(), middleware.ScopeFrom(c), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "notulensi not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DocumentHandler) uploadError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, storage.ErrFileTooLarge), errors.Is(err, storage.ErrUnsupportedType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
