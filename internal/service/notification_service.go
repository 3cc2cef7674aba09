package service

import (
	"context"
	"time"

	"dmthub/internal/models"
	"dmthub/internal/repository"
	"dmthub/internal/scope"
)

type NotificationService interface {
	List(ctx context.Context, sc scope.DisasterScope) ([]models.Notification, error)
	CountUnread(ctx context.Context, sc scope.DisasterScope) (int64, error)
	MarkAsRead(ctx context.Context, id int64) error
	MarkAllAsRead(ctx context.Context, sc scope.DisasterScope) error
}

type notificationService struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) List(ctx context.Context, sc scope.DisasterScope) ([]models.Notification, error) {
	return s.repo.ListForScope(ctx, sc)
}

func (s *notificationService) CountUnread(ctx context.Context, sc scope.DisasterScope) (int64, error) {
	return s.repo.CountUnread(ctx, sc)
}

func (s *notificationService) MarkAsRead(ctx context.Context, id int64) error {
	return s.repo.MarkAsRead(ctx, id, time.Now())
}

func (s *notificationService) MarkAllAsRead(ctx context.Context, sc scope.DisasterScope) error {
	return s.repo.MarkAllAsRead(ctx, sc, time.Now())
}
