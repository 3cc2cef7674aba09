package repository

import (
	"context"
	"fmt"

	"dmthub/internal/models"
	"dmthub/internal/scope"

	"gorm.io/gorm"
)

type ReportRepository interface {
	List(ctx context.Context, sc scope.DisasterScope) ([]models.Report, error)
	GetByID(ctx context.Context, sc scope.DisasterScope, id int64) (*models.Report, error)
	Create(ctx context.Context, rep *models.Report) error
	Delete(ctx context.Context, sc scope.DisasterScope, id int64) error
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) List(ctx context.Context, sc scope.DisasterScope) ([]models.Report, error) {
	if !sc.Valid() {
		return []models.Report{}, nil
	}
	var list []models.Report
	if err := r.db.WithContext(ctx).
		Where("disaster_id = ?", sc.DisasterID).
		Order("created_at desc").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *reportRepository) GetByID(ctx context.Context, sc scope.DisasterScope, id int64) (*models.Report, error) {
	if !sc.Valid() {
		return nil, gorm.ErrRecordNotFound
	}
	var rep models.Report
	if err := r.db.WithContext(ctx).
		Where("disaster_id = ?", sc.DisasterID).
		First(&rep, id).Error; err != nil {
		return nil, err
	}
	return &rep, nil
}

func (r *reportRepository) Create(ctx context.Context, rep *models.Report) error {
	if err := r.db.WithContext(ctx).Create(rep).Error; err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	return nil
}

func (r *reportRepository) Delete(ctx context.Context, sc scope.DisasterScope, id int64) error {
	if !sc.Valid() {
		return gorm.ErrRecordNotFound
	}
	res := r.db.WithContext(ctx).
		Where("disaster_id = ?", sc.DisasterID).
		Delete(&models.Report{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete report: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// NotulensiRepository mirrors ReportRepository for meeting notes.
type NotulensiRepository interface {
	List(ctx context.Context, sc scope.DisasterScope) ([]models.Notulensi, error)
	GetByID(ctx context.Context, sc scope.DisasterScope, id int64) (*models.Notulensi, error)
	Create(ctx context.Context, n *models.Notulensi) error
	Delete(ctx context.Context, sc scope.DisasterScope, id int64) error
}

type notulensiRepository struct {
	db *gorm.DB
}

func NewNotulensiRepository(db *gorm.DB) NotulensiRepository {
	return &notulensiRepository{db: db}
}

func (r *notulensiRepository) List(ctx context.Context, sc scope.DisasterScope) ([]models.Notulensi, error) {
	if !sc.Valid() {
		return []models.Notulensi{}, nil
	}
	var list []models.Notulensi
	if err := r.db.WithContext(ctx).
		Where("disaster_id = ?", sc.DisasterID).
		Order("tanggal desc NULLS LAST, created_at desc").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *notulensiRepository) GetByID(ctx context.Context, sc scope.DisasterScope, id int64) (*models.Notulensi, error) {
	if !sc.Valid() {
		return nil, gorm.ErrRecordNotFound
	}
	var n models.Notulensi
	if err := r.db.WithContext(ctx).
		Where("disaster_id = ?", sc.DisasterID).
		First(&n, id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *notulensiRepository) Create(ctx context.Context, n *models.Notulensi) error {
	if err := r.db.WithContext(ctx).Create(n).Error; err != nil {
		return fmt.Errorf("create notulensi: %w", err)
	}
	return nil
}

func (r *notulensiRepository) Delete(ctx context.Context, sc scope.DisasterScope, id int64) error {
	if !sc.Valid() {
		return gorm.ErrRecordNotFound
	}
	res := r.db.WithContext(ctx).
		Where("disaster_id = ?", sc.DisasterID).
		Delete(&models.Notulensi{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete notulensi: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
