package repository

import (
	"context"
	"fmt"
	"time"

	"dmthub/internal/models"
	"dmthub/internal/scope"

	"gorm.io/gorm"
)

// SourceLinkRepository handles database operations for configured
// spreadsheet/folder sources.
type SourceLinkRepository interface {
	List(ctx context.Context, sc scope.DisasterScope) ([]models.SourceLink, error)
	ListByKind(ctx context.Context, kind string) ([]models.SourceLink, error)
	GetByID(ctx context.Context, sc scope.DisasterScope, id int64) (*models.SourceLink, error)
	Create(ctx context.Context, link *models.SourceLink) error
	Update(ctx context.Context, link *models.SourceLink) error
	Delete(ctx context.Context, sc scope.DisasterScope, id int64) error
	// RecordScanResult stamps last_scanned_at and stores the scan warning
	// (nil clears a previous one).
	RecordScanResult(ctx context.Context, id int64, at time.Time, scanErr *string) error
}

type sourceLinkRepository struct {
	db *gorm.DB
}

func NewSourceLinkRepository(db *gorm.DB) SourceLinkRepository {
	return &sourceLinkRepository{db: db}
}

func (r *sourceLinkRepository) List(ctx context.Context, sc scope.DisasterScope) ([]models.SourceLink, error) {
	if !sc.Valid() {
		return []models.SourceLink{}, nil
	}
	var list []models.SourceLink
	if err := r.db.WithContext(ctx).
		Where("disaster_id = ?", sc.DisasterID).
		Order("created_at desc").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *sourceLinkRepository) ListByKind(ctx context.Context, kind string) ([]models.SourceLink, error) {
	var list []models.SourceLink
	if err := r.db.WithContext(ctx).Where("kind = ?", kind).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *sourceLinkRepository) GetByID(ctx context.Context, sc scope.DisasterScope, id int64) (*models.SourceLink, error) {
	if !sc.Valid() {
		return nil, gorm.ErrRecordNotFound
	}
	var link models.SourceLink
	if err := r.db.WithContext(ctx).
		Where("disaster_id = ?", sc.DisasterID).
		First(&link, id).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *sourceLinkRepository) Create(ctx context.Context, link *models.SourceLink) error {
	if err := r.db.WithContext(ctx).Create(link).Error; err != nil {
		return fmt.Errorf("create source link: %w", err)
	}
	return nil
}

func (r *sourceLinkRepository) Update(ctx context.Context, link *models.SourceLink) error {
	if err := r.db.WithContext(ctx).Save(link).Error; err != nil {
		return fmt.Errorf("update source link: %w", err)
	}
	return nil
}

func (r *sourceLinkRepository) Delete(ctx context.Context, sc scope.DisasterScope, id int64) error {
	if !sc.Valid() {
		return gorm.ErrRecordNotFound
	}
	res := r.db.WithContext(ctx).
		Where("disaster_id = ?", sc.DisasterID).
		Delete(&models.SourceLink{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete source link: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *sourceLinkRepository) RecordScanResult(ctx context.Context, id int64, at time.Time, scanErr *string) error {
	return r.db.WithContext(ctx).
		Model(&models.SourceLink{}).
		Where("id = ?", id).
		Updates(map[string]any{"last_scanned_at": at, "last_scan_error": scanErr}).Error
}
