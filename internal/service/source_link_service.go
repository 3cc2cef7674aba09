package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"dmthub/internal/ingestion/drive"
	"dmthub/internal/ingestion/sheets"
	"dmthub/internal/models"
	"dmthub/internal/repository"
	"dmthub/internal/scope"
)

var ErrUnknownSourceKind = errors.New("unknown source kind")

// Scanner mirrors one external source. Both sync services satisfy it.
type Scanner interface {
	Scan(ctx context.Context, link models.SourceLink) (int, error)
}

type SaveSourceLinkInput struct {
	Kind  string
	Title string
	URL   string
}

// ScanOutcome reports a finished scan. Warning is set when the save
// succeeded but the follow-up scan did not; the caller surfaces it
// without failing the request.
type ScanOutcome struct {
	Link    *models.SourceLink `json:"link"`
	Rows    int                `json:"rows"`
	Warning string             `json:"warning,omitempty"`
}

type SourceLinkService interface {
	List(ctx context.Context, sc scope.DisasterScope) ([]models.SourceLink, error)
	// Save stores the link, then scans it synchronously. A scan failure
	// never fails the save: it comes back as a warning and is recorded on
	// the link row.
	Save(ctx context.Context, sc scope.DisasterScope, in SaveSourceLinkInput) (ScanOutcome, error)
	// Rescan re-runs the scan for an existing link.
	Rescan(ctx context.Context, sc scope.DisasterScope, id int64) (ScanOutcome, error)
	Delete(ctx context.Context, sc scope.DisasterScope, id int64) error
}

type sourceLinkService struct {
	repo       repository.SourceLinkRepository
	sheetScans Scanner
	driveScans Scanner
}

func NewSourceLinkService(repo repository.SourceLinkRepository, sheetScans, driveScans Scanner) SourceLinkService {
	return &sourceLinkService{repo: repo, sheetScans: sheetScans, driveScans: driveScans}
}

func (s *sourceLinkService) List(ctx context.Context, sc scope.DisasterScope) ([]models.SourceLink, error) {
	return s.repo.List(ctx, sc)
}

func extractExternalID(kind, rawURL string) (string, error) {
	switch kind {
	case models.SourceKindDmtSheet:
		return sheets.ExtractSpreadsheetID(rawURL)
	case models.SourceKindInfographicFolder, models.SourceKindReportFolder:
		return drive.ExtractFolderID(rawURL)
	default:
		return "", ErrUnknownSourceKind
	}
}

func (s *sourceLinkService) Save(ctx context.Context, sc scope.DisasterScope, in SaveSourceLinkInput) (ScanOutcome, error) {
	if !sc.Valid() {
		return ScanOutcome{}, ErrNoActiveDisaster
	}

	externalID, err := extractExternalID(in.Kind, strings.TrimSpace(in.URL))
	if err != nil {
		return ScanOutcome{}, err
	}

	link := &models.SourceLink{
		DisasterID: sc.DisasterID,
		Kind:       in.Kind,
		Title:      strings.TrimSpace(in.Title),
		URL:        strings.TrimSpace(in.URL),
		ExternalID: externalID,
	}
	if err := s.repo.Create(ctx, link); err != nil {
		return ScanOutcome{}, err
	}

	return s.scan(ctx, link), nil
}

func (s *sourceLinkService) Rescan(ctx context.Context, sc scope.DisasterScope, id int64) (ScanOutcome, error) {
	link, err := s.repo.GetByID(ctx, sc, id)
	if err != nil {
		return ScanOutcome{}, err
	}
	return s.scan(ctx, link), nil
}

func (s *sourceLinkService) Delete(ctx context.Context, sc scope.DisasterScope, id int64) error {
	return s.repo.Delete(ctx, sc, id)
}

func (s *sourceLinkService) scannerFor(kind string) Scanner {
	switch kind {
	case models.SourceKindDmtSheet:
		return s.sheetScans
	case models.SourceKindInfographicFolder:
		return s.driveScans
	default:
		// report folders are linked for reference, not mirrored
		return nil
	}
}

// scan runs the mirror for a link and records the outcome on the row.
// External failures stay contained here; only a warning escapes.
func (s *sourceLinkService) scan(ctx context.Context, link *models.SourceLink) ScanOutcome {
	out := ScanOutcome{Link: link}

	scanner := s.scannerFor(link.Kind)
	if scanner == nil {
		return out
	}

	now := time.Now()
	rows, err := scanner.Scan(ctx, *link)
	if err != nil {
		log.Printf("[SourceLink] scan of link %d failed: %v", link.ID, err)
		msg := err.Error()
		out.Warning = fmt.Sprintf("tersimpan, tetapi pemindaian gagal: %s", msg)
		if recErr := s.repo.RecordScanResult(ctx, link.ID, now, &msg); recErr != nil {
			log.Printf("[SourceLink] recording scan failure for link %d: %v", link.ID, recErr)
		}
		link.LastScannedAt = &now
		link.LastScanError = &msg
		return out
	}

	out.Rows = rows
	if recErr := s.repo.RecordScanResult(ctx, link.ID, now, nil); recErr != nil {
		log.Printf("[SourceLink] recording scan result for link %d: %v", link.ID, recErr)
	}
	link.LastScannedAt = &now
	link.LastScanError = nil
	return out
}
