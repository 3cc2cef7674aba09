package drive

import (
	"context"
	"fmt"
	"log"
	"sort"

	"dmthub/internal/models"
	"dmthub/internal/repository"
)

// Lister is the folder-reading side of the Client, split out for tests.
type Lister interface {
	ListImages(ctx context.Context, folderID string) ([]File, error)
}

// SyncService reconciles a Drive folder with the local infographic
// mirror: present files are upserted by their Drive id, vanished ones are
// removed. Unlike the sheet mirror this is an in-place reconciliation,
// not a snapshot replace.
type SyncService struct {
	client Lister
	repo   repository.InfographicRepository
}

func NewSyncService(client Lister, repo repository.InfographicRepository) *SyncService {
	return &SyncService{client: client, repo: repo}
}

// Scan lists the folder behind a source link and reconciles the mirror.
// Returns the number of files now mirrored.
func (s *SyncService) Scan(ctx context.Context, link models.SourceLink) (int, error) {
	if link.Kind != models.SourceKindInfographicFolder {
		return 0, fmt.Errorf("source link %d is not an infographic folder", link.ID)
	}

	files, err := s.client.ListImages(ctx, link.ExternalID)
	if err != nil {
		return 0, fmt.Errorf("scan folder %s: %w", link.ExternalID, err)
	}

	sort.Slice(files, func(i, j int) bool {
		return NaturalLess(files[i].Name, files[j].Name)
	})

	keep := make([]string, 0, len(files))
	for i, f := range files {
		info := &models.Infographic{
			DisasterID: link.DisasterID,
			FileID:     f.ID,
			Name:       f.Name,
			ViewURL:    f.WebContentLink,
			SizeBytes:  f.SizeBytes(),
			MimeType:   f.MimeType,
			Position:   i,
		}
		if f.ThumbnailLink != "" {
			thumb := f.ThumbnailLink
			info.ThumbnailURL = &thumb
		}
		if err := s.repo.Upsert(ctx, info); err != nil {
			return 0, fmt.Errorf("scan folder %s: %w", link.ExternalID, err)
		}
		keep = append(keep, f.ID)
	}

	removed, err := s.repo.DeleteMissing(ctx, link.DisasterID, keep)
	if err != nil {
		return 0, fmt.Errorf("scan folder %s: %w", link.ExternalID, err)
	}

	log.Printf("[DriveSync] Mirrored %d files for disaster %d from %s (%d removed)",
		len(files), link.DisasterID, link.ExternalID, removed)
	return len(files), nil
}
