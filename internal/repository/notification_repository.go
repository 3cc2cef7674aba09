package repository

import (
	"context"
	"time"

	"dmthub/internal/models"
	"dmthub/internal/scope"

	"gorm.io/gorm"
)

// NotificationRepository handles database operations for notifications.
// Rows with a nil disaster_id are visible in every scope.
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	ListForScope(ctx context.Context, sc scope.DisasterScope) ([]models.Notification, error)
	CountUnread(ctx context.Context, sc scope.DisasterScope) (int64, error)
	MarkAsRead(ctx context.Context, id int64, readAt time.Time) error
	MarkAllAsRead(ctx context.Context, sc scope.DisasterScope, readAt time.Time) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) visible(ctx context.Context, sc scope.DisasterScope) *gorm.DB {
	q := r.db.WithContext(ctx)
	if sc.Valid() {
		return q.Where("disaster_id IS NULL OR disaster_id = ?", sc.DisasterID)
	}
	return q.Where("disaster_id IS NULL")
}

func (r *notificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepository) ListForScope(ctx context.Context, sc scope.DisasterScope) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.visible(ctx, sc).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepository) CountUnread(ctx context.Context, sc scope.DisasterScope) (int64, error) {
	var count int64
	err := r.visible(ctx, sc).
		Model(&models.Notification{}).
		Where("is_read = false").
		Count(&count).Error
	return count, err
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id int64, readAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_read": true, "read_at": readAt}).Error
}

func (r *notificationRepository) MarkAllAsRead(ctx context.Context, sc scope.DisasterScope, readAt time.Time) error {
	return r.visible(ctx, sc).
		Model(&models.Notification{}).
		Where("is_read = false").
		Updates(map[string]any{"is_read": true, "read_at": readAt}).Error
}
