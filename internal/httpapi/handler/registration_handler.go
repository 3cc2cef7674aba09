package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"dmthub/internal/httpapi/dto"
	"dmthub/internal/httpapi/middleware"
	"dmthub/internal/models"
	"dmthub/internal/repository"
	"dmthub/internal/service"
	"dmthub/internal/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const maxLogisticsFiles = 5

type RegistrationHandler struct {
	svc     service.RegistrationService
	uploads *storage.UploadStore
}

func NewRegistrationHandler(svc service.RegistrationService, uploads *storage.UploadStore) *RegistrationHandler {
	return &RegistrationHandler{svc: svc, uploads: uploads}
}

// RegisterRoutes mounts the scoped admin surface.
func (h *RegistrationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
	rg.PATCH("/:id/status", h.UpdateStatus)
	rg.DELETE("/:id", h.Delete)
}

// RegisterPublicRoutes mounts the self-service form endpoint and the
// public aggregate.
func (h *RegistrationHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/registrations", h.SubmitPublic)
	rg.GET("/stats", h.Stats)
}

func (h *RegistrationHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "25"))

	params := repository.RegistrationListParams{
		Search:   c.Query("search"),
		Status:   c.Query("status"),
		SortBy:   c.Query("sort_by"),
		SortDesc: c.Query("sort_dir") == "desc",
		Page:     page,
		PageSize: pageSize,
	}

	list, total, err := h.svc.List(c.Request.Context(), middleware.ScopeFrom(c), params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.RegistrationListResponse{
		Data:     list,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

func (h *RegistrationHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid registration id"})
		return
	}

	reg, err := h.svc.GetByID(c.Request.Context(), middleware.ScopeFrom(c), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "registration not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reg)
}

func (h *RegistrationHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid registration id"})
		return
	}

	var req dto.UpdateRegistrationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reg, err := h.svc.UpdateStatus(c.Request.Context(), middleware.ScopeFrom(c), id, req.Status)
	switch {
	case errors.Is(err, service.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "registration not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reg)
}

func (h *RegistrationHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid registration id"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), middleware.ScopeFrom(c), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "registration not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// SubmitPublic handles the multipart self-service registration form:
// scalar fields, up to three single documents and up to five attachments
// per logistics category.
func (h *RegistrationHandler) SubmitPublic(c *gin.Context) {
	var form dto.PublicRegistrationForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reg := &models.Registration{
		NamaTim:             form.NamaTim,
		KetuaTim:            form.KetuaTim,
		ContactPerson:       form.ContactPerson,
		Email:               form.Email,
		Telepon:             form.Telepon,
		InstitusiAsal:       form.InstitusiAsal,
		JenisLayanan:        form.JenisLayanan,
		KapasitasRawatJalan: form.KapasitasRawatJalan,
		KapasitasRawatInap:  form.KapasitasRawatInap,
		KapasitasBedah:      form.KapasitasBedah,
		JumlahDokter:        form.JumlahDokter,
		JumlahPerawat:       form.JumlahPerawat,
		JumlahTenagaLain:    form.JumlahTenagaLain,
		MasaPenugasanHari:   form.MasaPenugasanHari,
	}

	for _, d := range []struct {
		raw  *string
		dest **time.Time
	}{
		{form.TanggalKedatangan, &reg.TanggalKedatangan},
		{form.TanggalPelayananDimulai, &reg.TanggalPelayananDimulai},
		{form.TanggalPelayananDiakhiri, &reg.TanggalPelayananDiakhiri},
		{form.RencanaTanggalKepulangan, &reg.RencanaTanggalKepulangan},
	} {
		if d.raw == nil || *d.raw == "" {
			continue
		}
		t, err := time.Parse("2006-01-02", *d.raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date: " + *d.raw})
			return
		}
		*d.dest = &t
	}

	if !h.collectFiles(c, reg) {
		return
	}

	created, err := h.svc.SubmitPublic(c.Request.Context(), middleware.ScopeFrom(c), reg)
	switch {
	case errors.Is(err, service.ErrNoActiveDisaster):
		c.JSON(http.StatusConflict, gin.H{"error": "pendaftaran belum dibuka"})
		return
	case errors.Is(err, service.ErrTeamNameRequired), errors.Is(err, service.ErrServiceWindowInverted):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// collectFiles saves the form's file parts and attaches them to reg.
// Returns false after writing an error response.
func (h *RegistrationHandler) collectFiles(c *gin.Context, reg *models.Registration) bool {
	mf, err := c.MultipartForm()
	if err != nil || mf == nil {
		return true // no files attached
	}

	saveOne := func(field string) (*string, bool) {
		fhs := mf.File[field]
		if len(fhs) == 0 {
			return nil, true
		}
		path, err := h.uploads.Save(fhs[0], "dokumen")
		if err != nil {
			h.uploadError(c, err)
			return nil, false
		}
		return &path, true
	}

	var ok bool
	if reg.SuratTugasPath, ok = saveOne("surat_tugas"); !ok {
		return false
	}
	if reg.KredensialPath, ok = saveOne("kredensial"); !ok {
		return false
	}
	if reg.DaftarNamaPath, ok = saveOne("daftar_nama"); !ok {
		return false
	}

	for _, cat := range []struct {
		field    string
		kategori string
	}{
		{"logistik_medis", models.FileKategoriLogistikMedis},
		{"logistik_umum", models.FileKategoriLogistikUmum},
	} {
		fhs := mf.File[cat.field]
		if len(fhs) > maxLogisticsFiles {
			c.JSON(http.StatusBadRequest, gin.H{"error": "at most 5 files per logistics category"})
			return false
		}
		for _, fh := range fhs {
			path, err := h.uploads.Save(fh, "logistik")
			if err != nil {
				h.uploadError(c, err)
				return false
			}
			reg.Files = append(reg.Files, models.RegistrationFile{
				Kategori:     cat.kategori,
				Path:         path,
				OriginalName: fh.Filename,
				SizeBytes:    fh.Size,
			})
		}
	}
	return true
}

func (h *RegistrationHandler) uploadError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, storage.ErrFileTooLarge), errors.Is(err, storage.ErrUnsupportedType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (h *RegistrationHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context(), middleware.ScopeFrom(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
