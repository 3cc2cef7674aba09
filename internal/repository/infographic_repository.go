package repository

import (
	"context"
	"fmt"

	"dmthub/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InfographicRepository mirrors a Drive folder listing. Reconciliation is
// upsert-by-file-id plus deletion of rows that disappeared remotely, not
// a full replace.
type InfographicRepository interface {
	ListByDisaster(ctx context.Context, disasterID int64) ([]models.Infographic, error)
	Upsert(ctx context.Context, info *models.Infographic) error
	// DeleteMissing removes the disaster's rows whose file_id is not in keep.
	DeleteMissing(ctx context.Context, disasterID int64, keep []string) (int64, error)
}

type infographicRepository struct {
	db *gorm.DB
}

func NewInfographicRepository(db *gorm.DB) InfographicRepository {
	return &infographicRepository{db: db}
}

func (r *infographicRepository) ListByDisaster(ctx context.Context, disasterID int64) ([]models.Infographic, error) {
	var list []models.Infographic
	if err := r.db.WithContext(ctx).
		Where("disaster_id = ?", disasterID).
		Order("position asc").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *infographicRepository) Upsert(ctx context.Context, info *models.Infographic) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "disaster_id"}, {Name: "file_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "view_url", "thumbnail_url", "size_bytes", "mime_type", "position", "updated_at",
		}),
	}).Create(info).Error
	if err != nil {
		return fmt.Errorf("upsert infographic %s: %w", info.FileID, err)
	}
	return nil
}

func (r *infographicRepository) DeleteMissing(ctx context.Context, disasterID int64, keep []string) (int64, error) {
	q := r.db.WithContext(ctx).Where("disaster_id = ?", disasterID)
	if len(keep) > 0 {
		q = q.Where("file_id NOT IN ?", keep)
	}
	res := q.Delete(&models.Infographic{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete missing infographics: %w", res.Error)
	}
	return res.RowsAffected, nil
}
