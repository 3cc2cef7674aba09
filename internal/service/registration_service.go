package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"dmthub/internal/models"
	"dmthub/internal/repository"
	"dmthub/internal/scope"
	"dmthub/internal/status"
)

var (
	ErrInvalidStatus         = errors.New("unknown registration status")
	ErrNoActiveDisaster      = errors.New("no active disaster")
	ErrTeamNameRequired      = errors.New("nama_tim is required")
	ErrServiceWindowInverted = errors.New("tanggal_pelayanan_diakhiri precedes tanggal_pelayanan_dimulai")
)

// FileRemover deletes stored attachment files when a registration goes.
type FileRemover interface {
	Remove(path string) error
}

// StatsSummary is the public aggregate over a disaster's registrations.
// Operational counts are derived live at read time.
type StatsSummary struct {
	TotalTim            int `json:"total_tim"`
	BelumDatang         int `json:"belum_datang"`
	Aktif               int `json:"aktif"`
	Selesai             int `json:"selesai"`
	KapasitasRawatJalan int `json:"kapasitas_rawat_jalan"`
	KapasitasRawatInap  int `json:"kapasitas_rawat_inap"`
	KapasitasBedah      int `json:"kapasitas_bedah"`
	TotalDokter         int `json:"total_dokter"`
	TotalPerawat        int `json:"total_perawat"`
	TotalTenagaLain     int `json:"total_tenaga_lain"`
}

type RegistrationService interface {
	List(ctx context.Context, sc scope.DisasterScope, p repository.RegistrationListParams) ([]models.Registration, int64, error)
	GetByID(ctx context.Context, sc scope.DisasterScope, id int64) (*models.Registration, error)
	// SubmitPublic stores a self-service registration against the given
	// scope (the globally active disaster), auto-approves it and raises a
	// notification.
	SubmitPublic(ctx context.Context, sc scope.DisasterScope, reg *models.Registration) (*models.Registration, error)
	// UpdateStatus applies the approval workflow: pending and rejected
	// force fixed literals, approved bakes the derived status (Aktif when
	// nothing is derivable).
	UpdateStatus(ctx context.Context, sc scope.DisasterScope, id int64, newStatus string) (*models.Registration, error)
	Delete(ctx context.Context, sc scope.DisasterScope, id int64) error
	Stats(ctx context.Context, sc scope.DisasterScope) (StatsSummary, error)
}

type registrationService struct {
	repo          repository.RegistrationRepository
	notifications repository.NotificationRepository
	files         FileRemover
	now           func() time.Time
}

func NewRegistrationService(
	repo repository.RegistrationRepository,
	notifications repository.NotificationRepository,
	files FileRemover,
) RegistrationService {
	return &registrationService{
		repo:          repo,
		notifications: notifications,
		files:         files,
		now:           time.Now,
	}
}

// serviceWindow pulls the derivation inputs off a registration row.
func serviceWindow(reg *models.Registration) status.ServiceWindow {
	return status.ServiceWindow{
		TanggalKedatangan:        reg.TanggalKedatangan,
		TanggalPelayananDimulai:  reg.TanggalPelayananDimulai,
		TanggalPelayananDiakhiri: reg.TanggalPelayananDiakhiri,
		MasaPenugasanHari:        reg.MasaPenugasanHari,
	}
}

// applyLiveStatus recomputes status_penugasan for a read path. The stored
// snapshot only survives when the deriver has no usable dates. Pending and
// rejected rows keep their workflow literals.
func (s *registrationService) applyLiveStatus(reg *models.Registration) {
	if reg.StatusPendaftaran != nil && *reg.StatusPendaftaran != status.PendaftaranApproved {
		return
	}
	if derived := status.Derive(s.now(), serviceWindow(reg)); derived != "" {
		reg.StatusPenugasan = &derived
	}
}

func (s *registrationService) List(ctx context.Context, sc scope.DisasterScope, p repository.RegistrationListParams) ([]models.Registration, int64, error) {
	list, total, err := s.repo.List(ctx, sc, p)
	if err != nil {
		return nil, 0, err
	}
	for i := range list {
		s.applyLiveStatus(&list[i])
	}
	return list, total, nil
}

func (s *registrationService) GetByID(ctx context.Context, sc scope.DisasterScope, id int64) (*models.Registration, error) {
	reg, err := s.repo.GetByID(ctx, sc, id)
	if err != nil {
		return nil, err
	}
	s.applyLiveStatus(reg)
	return reg, nil
}

func (s *registrationService) SubmitPublic(ctx context.Context, sc scope.DisasterScope, reg *models.Registration) (*models.Registration, error) {
	if !sc.Valid() {
		return nil, ErrNoActiveDisaster
	}
	if reg.NamaTim == "" {
		return nil, ErrTeamNameRequired
	}
	if reg.TanggalPelayananDimulai != nil && reg.TanggalPelayananDiakhiri != nil &&
		reg.TanggalPelayananDiakhiri.Before(*reg.TanggalPelayananDimulai) {
		return nil, ErrServiceWindowInverted
	}

	reg.DisasterID = sc.DisasterID
	reg.Source = models.RegistrationSourceForm

	approved := status.PendaftaranApproved
	reg.StatusPendaftaran = &approved

	penugasan := status.Derive(s.now(), serviceWindow(reg))
	if penugasan == "" {
		penugasan = status.PenugasanAktif
	}
	reg.StatusPenugasan = &penugasan

	if err := s.repo.Create(ctx, reg); err != nil {
		return nil, err
	}

	notification := &models.Notification{
		Type:           "dmt_registration",
		Title:          "Pendaftaran DMT baru",
		Message:        fmt.Sprintf("Tim %s mendaftar untuk %s", reg.NamaTim, sc.Name),
		RegistrationID: &reg.ID,
		DisasterID:     &sc.DisasterID,
	}
	if err := s.notifications.Create(ctx, notification); err != nil {
		// Registration stands even if the notification write fails.
		log.Printf("[Registration] notification create failed: %v", err)
	}

	return reg, nil
}

func (s *registrationService) UpdateStatus(ctx context.Context, sc scope.DisasterScope, id int64, newStatus string) (*models.Registration, error) {
	if !status.IsValidPendaftaran(newStatus) {
		return nil, ErrInvalidStatus
	}

	reg, err := s.repo.GetByID(ctx, sc, id)
	if err != nil {
		return nil, err
	}

	reg.StatusPendaftaran = &newStatus

	var penugasan string
	switch newStatus {
	case status.PendaftaranPending:
		penugasan = status.PenugasanPending
	case status.PendaftaranRejected:
		penugasan = status.PenugasanDibatalkan
	case status.PendaftaranApproved:
		penugasan = status.Derive(s.now(), serviceWindow(reg))
		if penugasan == "" {
			// An approved team with no usable dates counts as deployed.
			penugasan = status.PenugasanAktif
		}
	}
	reg.StatusPenugasan = &penugasan

	if err := s.repo.Update(ctx, reg); err != nil {
		return nil, err
	}
	return reg, nil
}

func (s *registrationService) Delete(ctx context.Context, sc scope.DisasterScope, id int64) error {
	reg, err := s.repo.GetByID(ctx, sc, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, sc, id); err != nil {
		return err
	}

	// Attachment files go with the row; a leftover file is only noise.
	if s.files != nil {
		for _, path := range reg.AttachmentPaths() {
			if err := s.files.Remove(path); err != nil {
				log.Printf("[Registration] removing attachment %s: %v", path, err)
			}
		}
	}
	return nil
}

func (s *registrationService) Stats(ctx context.Context, sc scope.DisasterScope) (StatsSummary, error) {
	list, err := s.repo.ListAll(ctx, sc)
	if err != nil {
		return StatsSummary{}, err
	}

	var sum StatsSummary
	for i := range list {
		reg := &list[i]
		if reg.StatusPendaftaran != nil && *reg.StatusPendaftaran == status.PendaftaranRejected {
			continue
		}
		sum.TotalTim++
		switch status.Derive(s.now(), serviceWindow(reg)) {
		case status.PenugasanBelumDatang:
			sum.BelumDatang++
		case status.PenugasanAktif:
			sum.Aktif++
		case status.PenugasanSelesai:
			sum.Selesai++
		}
		sum.KapasitasRawatJalan += intOrZero(reg.KapasitasRawatJalan)
		sum.KapasitasRawatInap += intOrZero(reg.KapasitasRawatInap)
		sum.KapasitasBedah += intOrZero(reg.KapasitasBedah)
		sum.TotalDokter += intOrZero(reg.JumlahDokter)
		sum.TotalPerawat += intOrZero(reg.JumlahPerawat)
		sum.TotalTenagaLain += intOrZero(reg.JumlahTenagaLain)
	}
	return sum, nil
}

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
