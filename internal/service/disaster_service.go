package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"dmthub/internal/models"
	"dmthub/internal/repository"
	"dmthub/internal/scope"
	"dmthub/internal/sluger"
)

var ErrNameRequired = errors.New("name is required")

// ScopeSession is the part of the session store the disaster service
// needs: updating an admin's active-disaster pointer.
type ScopeSession interface {
	Set(ctx context.Context, userID string, sc scope.DisasterScope) error
}

type CreateDisasterInput struct {
	Name        string
	Description *string
	IsActive    bool
}

type UpdateDisasterInput struct {
	Name        *string
	Description *string
	IsActive    *bool
}

type DisasterService interface {
	GetAll(ctx context.Context) ([]models.Disaster, error)
	GetByID(ctx context.Context, id int64) (*models.Disaster, error)
	// GetActive returns (nil, nil) when no disaster is active; public
	// pages render placeholders in that case.
	GetActive(ctx context.Context) (*models.Disaster, error)
	Create(ctx context.Context, adminID string, in CreateDisasterInput) (*models.Disaster, error)
	Update(ctx context.Context, adminID string, id int64, in UpdateDisasterInput) (*models.Disaster, error)
	Delete(ctx context.Context, id int64) error
	// Switch points the admin's session at an existing disaster.
	Switch(ctx context.Context, adminID string, id int64) (scope.DisasterScope, error)
}

type disasterService struct {
	repo     repository.DisasterRepository
	sessions ScopeSession
}

func NewDisasterService(repo repository.DisasterRepository, sessions ScopeSession) DisasterService {
	return &disasterService{repo: repo, sessions: sessions}
}

func (s *disasterService) GetAll(ctx context.Context) ([]models.Disaster, error) {
	return s.repo.GetAll(ctx)
}

func (s *disasterService) GetByID(ctx context.Context, id int64) (*models.Disaster, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *disasterService) GetActive(ctx context.Context) (*models.Disaster, error) {
	return s.repo.GetActive(ctx)
}

func (s *disasterService) Create(ctx context.Context, adminID string, in CreateDisasterInput) (*models.Disaster, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	slug, err := sluger.Unique(ctx, sluger.Slugify(name), s.repo.SlugTaken)
	if err != nil {
		return nil, err
	}

	d := &models.Disaster{
		Name:        name,
		Slug:        slug,
		Description: in.Description,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}

	if in.IsActive {
		activated, err := s.repo.Activate(ctx, d.ID, time.Now())
		if err != nil {
			return nil, err
		}
		d = activated
		s.pointSession(ctx, adminID, d)
	}

	return d, nil
}

func (s *disasterService) Update(ctx context.Context, adminID string, id int64, in UpdateDisasterInput) (*models.Disaster, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		d.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		d.Description = in.Description
	}
	if err := s.repo.Update(ctx, d); err != nil {
		return nil, err
	}

	if in.IsActive != nil {
		switch {
		case *in.IsActive:
			d, err = s.repo.Activate(ctx, id, time.Now())
			if err != nil {
				return nil, err
			}
			s.pointSession(ctx, adminID, d)
		case d.IsActive:
			// Deactivating the current one stamps its ended_at; the admin
			// keeps viewing the now-inactive disaster's data.
			d, err = s.repo.Deactivate(ctx, id, time.Now())
			if err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}

func (s *disasterService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *disasterService) Switch(ctx context.Context, adminID string, id int64) (scope.DisasterScope, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return scope.DisasterScope{}, err
	}

	sc := scope.DisasterScope{DisasterID: d.ID, Name: d.Name}
	if s.sessions != nil {
		if err := s.sessions.Set(ctx, adminID, sc); err != nil {
			return scope.DisasterScope{}, err
		}
	}
	return sc, nil
}

// pointSession updates the admin's pointer after an activation; a session
// write failure must not undo the activation itself.
func (s *disasterService) pointSession(ctx context.Context, adminID string, d *models.Disaster) {
	if s.sessions == nil || adminID == "" {
		return
	}
	_ = s.sessions.Set(ctx, adminID, scope.DisasterScope{DisasterID: d.ID, Name: d.Name})
}
