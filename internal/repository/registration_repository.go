package repository

import (
	"context"
	"fmt"
	"strings"

	"dmthub/internal/models"
	"dmthub/internal/scope"

	"gorm.io/gorm"
)

// RegistrationListParams carries the admin list-page query parameters.
type RegistrationListParams struct {
	Search   string // matches team name, leader, institution
	Status   string // status_pendaftaran filter
	SortBy   string // whitelisted column
	SortDesc bool
	Page     int
	PageSize int
}

var registrationSortColumns = map[string]string{
	"nama_tim":           "nama_tim",
	"tanggal_kedatangan": "tanggal_kedatangan",
	"created_at":         "created_at",
	"status_pendaftaran": "status_pendaftaran",
}

// RegistrationRepository handles database operations for DMT rows. Every
// method takes the caller's DisasterScope; an invalid scope yields empty
// results, never the whole table.
type RegistrationRepository interface {
	List(ctx context.Context, sc scope.DisasterScope, p RegistrationListParams) ([]models.Registration, int64, error)
	ListAll(ctx context.Context, sc scope.DisasterScope) ([]models.Registration, error)
	GetByID(ctx context.Context, sc scope.DisasterScope, id int64) (*models.Registration, error)
	Create(ctx context.Context, reg *models.Registration) error
	Update(ctx context.Context, reg *models.Registration) error
	Delete(ctx context.Context, sc scope.DisasterScope, id int64) error
}

type registrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &registrationRepository{db: db}
}

func (r *registrationRepository) scoped(ctx context.Context, sc scope.DisasterScope) *gorm.DB {
	return r.db.WithContext(ctx).Where("disaster_id = ?", sc.DisasterID)
}

func (r *registrationRepository) List(ctx context.Context, sc scope.DisasterScope, p RegistrationListParams) ([]models.Registration, int64, error) {
	if !sc.Valid() {
		return []models.Registration{}, 0, nil
	}

	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 || p.PageSize > 100 {
		p.PageSize = 20
	}

	q := r.scoped(ctx, sc).Model(&models.Registration{})

	if s := strings.TrimSpace(p.Search); s != "" {
		pat := "%" + s + "%"
		q = q.Where("nama_tim ILIKE ? OR COALESCE(ketua_tim,'') ILIKE ? OR COALESCE(institusi_asal,'') ILIKE ?", pat, pat, pat)
	}
	if p.Status != "" {
		q = q.Where("status_pendaftaran = ?", p.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "created_at desc"
	if col, ok := registrationSortColumns[p.SortBy]; ok {
		dir := "asc"
		if p.SortDesc {
			dir = "desc"
		}
		order = col + " " + dir
	}

	var list []models.Registration
	if err := q.Preload("Files").
		Order(order).
		Limit(p.PageSize).
		Offset((p.Page - 1) * p.PageSize).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *registrationRepository) ListAll(ctx context.Context, sc scope.DisasterScope) ([]models.Registration, error) {
	if !sc.Valid() {
		return []models.Registration{}, nil
	}
	var list []models.Registration
	if err := r.scoped(ctx, sc).Order("created_at desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *registrationRepository) GetByID(ctx context.Context, sc scope.DisasterScope, id int64) (*models.Registration, error) {
	if !sc.Valid() {
		return nil, gorm.ErrRecordNotFound
	}
	var reg models.Registration
	if err := r.scoped(ctx, sc).Preload("Files").First(&reg, id).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *registrationRepository) Create(ctx context.Context, reg *models.Registration) error {
	if err := r.db.WithContext(ctx).Create(reg).Error; err != nil {
		return fmt.Errorf("create registration: %w", err)
	}
	return nil
}

func (r *registrationRepository) Update(ctx context.Context, reg *models.Registration) error {
	if err := r.db.WithContext(ctx).Save(reg).Error; err != nil {
		return fmt.Errorf("update registration: %w", err)
	}
	return nil
}

func (r *registrationRepository) Delete(ctx context.Context, sc scope.DisasterScope, id int64) error {
	if !sc.Valid() {
		return gorm.ErrRecordNotFound
	}
	res := r.scoped(ctx, sc).Delete(&models.Registration{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete registration: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
