package sheets

import (
	"context"
	"fmt"
	"log"

	"dmthub/internal/models"
)

// ValuesFetcher is the sheet-reading side of the Client, split out so the
// sync service can be tested against a fake.
type ValuesFetcher interface {
	FetchValues(ctx context.Context, spreadsheetID, readRange string) (*ValueRange, error)
}

// Replacer writes a mirrored snapshot atomically.
type Replacer interface {
	Replace(ctx context.Context, disasterID int64, regs []models.Registration) error
}

// The whole registration sheet is read in one request.
const defaultRange = "A1:AZ10000"

// SyncService mirrors registration spreadsheets into dmt_data.
type SyncService struct {
	client   ValuesFetcher
	snapshot Replacer
}

func NewSyncService(client ValuesFetcher, snapshot Replacer) *SyncService {
	return &SyncService{client: client, snapshot: snapshot}
}

// Scan fetches the sheet behind a source link and replaces the mirror.
// Returns the number of imported rows.
func (s *SyncService) Scan(ctx context.Context, link models.SourceLink) (int, error) {
	if link.Kind != models.SourceKindDmtSheet {
		return 0, fmt.Errorf("source link %d is not a sheet source", link.ID)
	}

	vr, err := s.client.FetchValues(ctx, link.ExternalID, defaultRange)
	if err != nil {
		return 0, fmt.Errorf("scan sheet %s: %w", link.ExternalID, err)
	}

	regs := MapRows(vr, link.DisasterID)
	if err := s.snapshot.Replace(ctx, link.DisasterID, regs); err != nil {
		return 0, fmt.Errorf("scan sheet %s: %w", link.ExternalID, err)
	}

	log.Printf("[SheetSync] Mirrored %d rows for disaster %d from %s",
		len(regs), link.DisasterID, link.ExternalID)
	return len(regs), nil
}
