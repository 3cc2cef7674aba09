package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dmthub/internal/models"

	"gorm.io/gorm"
)

// DisasterRepository handles database operations for disasters, including
// the single-active invariant.
type DisasterRepository interface {
	GetAll(ctx context.Context) ([]models.Disaster, error)
	GetByID(ctx context.Context, id int64) (*models.Disaster, error)
	// GetActive returns (nil, nil) when no disaster is active.
	GetActive(ctx context.Context) (*models.Disaster, error)
	SlugTaken(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, d *models.Disaster) error
	Update(ctx context.Context, d *models.Disaster) error
	Delete(ctx context.Context, id int64) error
	// Activate makes id the only active disaster: every other active row
	// is deactivated with ended_at stamped, and the target's started_at is
	// stamped only if it was never set. Runs in one transaction.
	Activate(ctx context.Context, id int64, now time.Time) (*models.Disaster, error)
	// Deactivate turns off the given disaster and stamps its ended_at.
	Deactivate(ctx context.Context, id int64, now time.Time) (*models.Disaster, error)
}

type disasterRepository struct {
	db *gorm.DB
}

func NewDisasterRepository(db *gorm.DB) DisasterRepository {
	return &disasterRepository{db: db}
}

func (r *disasterRepository) GetAll(ctx context.Context) ([]models.Disaster, error) {
	var list []models.Disaster
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *disasterRepository) GetByID(ctx context.Context, id int64) (*models.Disaster, error) {
	var d models.Disaster
	if err := r.db.WithContext(ctx).First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *disasterRepository) GetActive(ctx context.Context) (*models.Disaster, error) {
	var d models.Disaster
	err := r.db.WithContext(ctx).Where("is_active = ?", true).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *disasterRepository) SlugTaken(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Disaster{}).
		Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *disasterRepository) Create(ctx context.Context, d *models.Disaster) error {
	if err := r.db.WithContext(ctx).Create(d).Error; err != nil {
		return fmt.Errorf("create disaster: %w", err)
	}
	return nil
}

func (r *disasterRepository) Update(ctx context.Context, d *models.Disaster) error {
	if err := r.db.WithContext(ctx).Save(d).Error; err != nil {
		return fmt.Errorf("update disaster: %w", err)
	}
	return nil
}

func (r *disasterRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Disaster{}, id).Error; err != nil {
		return fmt.Errorf("delete disaster: %w", err)
	}
	return nil
}

func (r *disasterRepository) Activate(ctx context.Context, id int64, now time.Time) (*models.Disaster, error) {
	var activated models.Disaster

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&activated, id).Error; err != nil {
			return err
		}

		// Deactivate everything else that is still active.
		if err := tx.Model(&models.Disaster{}).
			Where("id <> ? AND is_active = ?", id, true).
			Updates(map[string]any{"is_active": false, "ended_at": now}).Error; err != nil {
			return err
		}

		updates := map[string]any{"is_active": true, "ended_at": nil}
		if activated.StartedAt == nil {
			updates["started_at"] = now
			activated.StartedAt = &now
		}
		if err := tx.Model(&activated).Updates(updates).Error; err != nil {
			return err
		}
		activated.IsActive = true
		activated.EndedAt = nil
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("activate disaster %d: %w", id, err)
	}
	return &activated, nil
}

func (r *disasterRepository) Deactivate(ctx context.Context, id int64, now time.Time) (*models.Disaster, error) {
	var d models.Disaster
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&d, id).Error; err != nil {
			return err
		}
		if !d.IsActive {
			return nil
		}
		if err := tx.Model(&d).
			Updates(map[string]any{"is_active": false, "ended_at": now}).Error; err != nil {
			return err
		}
		d.IsActive = false
		d.EndedAt = &now
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("deactivate disaster %d: %w", id, err)
	}
	return &d, nil
}
