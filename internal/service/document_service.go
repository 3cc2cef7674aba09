package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"dmthub/internal/models"
	"dmthub/internal/repository"
	"dmthub/internal/scope"
)

var ErrTitleRequired = errors.New("title is required")

// DocumentService covers the two admin-uploaded document collections,
// reports and notulensi (meeting notes).
type DocumentService interface {
	ListReports(ctx context.Context, sc scope.DisasterScope) ([]models.Report, error)
	GetReport(ctx context.Context, sc scope.DisasterScope, id int64) (*models.Report, error)
	CreateReport(ctx context.Context, sc scope.DisasterScope, title, filePath string) (*models.Report, error)
	DeleteReport(ctx context.Context, sc scope.DisasterScope, id int64) error

	ListNotulensi(ctx context.Context, sc scope.DisasterScope) ([]models.Notulensi, error)
	GetNotulensi(ctx context.Context, sc scope.DisasterScope, id int64) (*models.Notulensi, error)
	CreateNotulensi(ctx context.Context, sc scope.DisasterScope, title, filePath string, tanggal *time.Time) (*models.Notulensi, error)
	DeleteNotulensi(ctx context.Context, sc scope.DisasterScope, id int64) error

	// ListInfographics returns the mirrored Drive images in gallery order.
	ListInfographics(ctx context.Context, sc scope.DisasterScope) ([]models.Infographic, error)
}

type documentService struct {
	reports      repository.ReportRepository
	notulensi    repository.NotulensiRepository
	infographics repository.InfographicRepository
	files        FileRemover
}

func NewDocumentService(
	reports repository.ReportRepository,
	notulensi repository.NotulensiRepository,
	infographics repository.InfographicRepository,
	files FileRemover,
) DocumentService {
	return &documentService{reports: reports, notulensi: notulensi, infographics: infographics, files: files}
}

func (s *documentService) ListReports(ctx context.Context, sc scope.DisasterScope) ([]models.Report, error) {
	return s.reports.List(ctx, sc)
}

func (s *documentService) GetReport(ctx context.Context, sc scope.DisasterScope, id int64) (*models.Report, error) {
	return s.reports.GetByID(ctx, sc, id)
}

func (s *documentService) CreateReport(ctx context.Context, sc scope.DisasterScope, title, filePath string) (*models.Report, error) {
	if !sc.Valid() {
		return nil, ErrNoActiveDisaster
	}
	if strings.TrimSpace(title) == "" {
		return nil, ErrTitleRequired
	}
	rep := &models.Report{
		DisasterID: sc.DisasterID,
		Title:      strings.TrimSpace(title),
		FilePath:   filePath,
	}
	if err := s.reports.Create(ctx, rep); err != nil {
		return nil, err
	}
	return rep, nil
}

func (s *documentService) DeleteReport(ctx context.Context, sc scope.DisasterScope, id int64) error {
	rep, err := s.reports.GetByID(ctx, sc, id)
	if err != nil {
		return err
	}
	if err := s.reports.Delete(ctx, sc, id); err != nil {
		return err
	}
	s.removeFile(rep.FilePath)
	return nil
}

func (s *documentService) ListNotulensi(ctx context.Context, sc scope.DisasterScope) ([]models.Notulensi, error) {
	return s.notulensi.List(ctx, sc)
}

func (s *documentService) GetNotulensi(ctx context.Context, sc scope.DisasterScope, id int64) (*models.Notulensi, error) {
	return s.notulensi.GetByID(ctx, sc, id)
}

func (s *documentService) CreateNotulensi(ctx context.Context, sc scope.DisasterScope, title, filePath string, tanggal *time.Time) (*models.Notulensi, error) {
	if !sc.Valid() {
		return nil, ErrNoActiveDisaster
	}
	if strings.TrimSpace(title) == "" {
		return nil, ErrTitleRequired
	}
	n := &models.Notulensi{
		DisasterID: sc.DisasterID,
		Title:      strings.TrimSpace(title),
		FilePath:   filePath,
		Tanggal:    tanggal,
	}
	if err := s.notulensi.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *documentService) DeleteNotulensi(ctx context.Context, sc scope.DisasterScope, id int64) error {
	n, err := s.notulensi.GetByID(ctx, sc, id)
	if err != nil {
		return err
	}
	if err := s.notulensi.Delete(ctx, sc, id); err != nil {
		return err
	}
	s.removeFile(n.FilePath)
	return nil
}

func (s *documentService) ListInfographics(ctx context.Context, sc scope.DisasterScope) ([]models.Infographic, error) {
	if !sc.Valid() {
		return []models.Infographic{}, nil
	}
	return s.infographics.ListByDisaster(ctx, sc.DisasterID)
}

func (s *documentService) removeFile(path string) {
	if s.files == nil || path == "" {
		return
	}
	if err := s.files.Remove(path); err != nil {
		log.Printf("[Document] removing file %s: %v", path, err)
	}
}
