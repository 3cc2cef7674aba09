package service

import (
	"context"
	"testing"
	"time"

	"dmthub/internal/models"
	"dmthub/internal/scope"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockDisasterRepository mocks the DisasterRepository interface
type MockDisasterRepository struct {
	mock.Mock
}

func (m *MockDisasterRepository) GetAll(ctx context.Context) ([]models.Disaster, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Disaster), args.Error(1)
}

func (m *MockDisasterRepository) GetByID(ctx context.Context, id int64) (*models.Disaster, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Disaster), args.Error(1)
}

func (m *MockDisasterRepository) GetActive(ctx context.Context) (*models.Disaster, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Disaster), args.Error(1)
}

func (m *MockDisasterRepository) SlugTaken(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockDisasterRepository) Create(ctx context.Context, d *models.Disaster) error {
	args := m.Called(ctx, d)
	d.ID = 1
	return args.Error(0)
}

func (m *MockDisasterRepository) Update(ctx context.Context, d *models.Disaster) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDisasterRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDisasterRepository) Activate(ctx context.Context, id int64, now time.Time) (*models.Disaster, error) {
	args := m.Called(ctx, id, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Disaster), args.Error(1)
}

func (m *MockDisasterRepository) Deactivate(ctx context.Context, id int64, now time.Time) (*models.Disaster, error) {
	args := m.Called(ctx, id, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Disaster), args.Error(1)
}

// MockScopeSession mocks the ScopeSession interface
type MockScopeSession struct {
	mock.Mock
}

func (m *MockScopeSession) Set(ctx context.Context, userID string, sc scope.DisasterScope) error {
	args := m.Called(ctx, userID, sc)
	return args.Error(0)
}

func TestDisasterCreate_SlugsAndStaysInactive(t *testing.T) {
	repo := new(MockDisasterRepository)
	svc := NewDisasterService(repo, nil)

	repo.On("SlugTaken", mock.Anything, "banjir-agam-2025").Return(false, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Disaster")).Return(nil)

	d, err := svc.Create(context.Background(), "admin-1", CreateDisasterInput{Name: "Banjir Agam 2025"})

	assert.NoError(t, err)
	assert.Equal(t, "banjir-agam-2025", d.Slug)
	assert.False(t, d.IsActive)
	repo.AssertNotCalled(t, "Activate", mock.Anything, mock.Anything, mock.Anything)
}

func TestDisasterCreate_TakenSlugGetsSuffix(t *testing.T) {
	repo := new(MockDisasterRepository)
	svc := NewDisasterService(repo, nil)

	repo.On("SlugTaken", mock.Anything, "banjir-agam-2025").Return(true, nil)
	repo.On("SlugTaken", mock.Anything, "banjir-agam-2025-1").Return(false, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Disaster")).Return(nil)

	d, err := svc.Create(context.Background(), "admin-1", CreateDisasterInput{Name: "Banjir Agam 2025"})

	assert.NoError(t, err)
	assert.Equal(t, "banjir-agam-2025-1", d.Slug)
}

func TestDisasterCreate_ActiveActivatesAndPointsSession(t *testing.T) {
	repo := new(MockDisasterRepository)
	sessions := new(MockScopeSession)
	svc := NewDisasterService(repo, sessions)

	activated := &models.Disaster{ID: 1, Name: "Gempa Cianjur", Slug: "gempa-cianjur", IsActive: true}

	repo.On("SlugTaken", mock.Anything, "gempa-cianjur").Return(false, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Disaster")).Return(nil)
	repo.On("Activate", mock.Anything, int64(1), mock.AnythingOfType("time.Time")).Return(activated, nil)
	sessions.On("Set", mock.Anything, "admin-1", scope.DisasterScope{DisasterID: 1, Name: "Gempa Cianjur"}).Return(nil)

	d, err := svc.Create(context.Background(), "admin-1", CreateDisasterInput{Name: "Gempa Cianjur", IsActive: true})

	assert.NoError(t, err)
	assert.True(t, d.IsActive)
	sessions.AssertExpectations(t)
}

func TestDisasterUpdate_ActivateDisplacesOthers(t *testing.T) {
	repo := new(MockDisasterRepository)
	sessions := new(MockScopeSession)
	svc := NewDisasterService(repo, sessions)

	existing := &models.Disaster{ID: 2, Name: "Erupsi Marapi", Slug: "erupsi-marapi"}
	activated := &models.Disaster{ID: 2, Name: "Erupsi Marapi", Slug: "erupsi-marapi", IsActive: true}
	active := true

	repo.On("GetByID", mock.Anything, int64(2)).Return(existing, nil)
	repo.On("Update", mock.Anything, existing).Return(nil)
	repo.On("Activate", mock.Anything, int64(2), mock.AnythingOfType("time.Time")).Return(activated, nil)
	sessions.On("Set", mock.Anything, "admin-1", mock.Anything).Return(nil)

	d, err := svc.Update(context.Background(), "admin-1", 2, UpdateDisasterInput{IsActive: &active})

	assert.NoError(t, err)
	assert.True(t, d.IsActive)
	repo.AssertExpectations(t)
}

func TestDisasterUpdate_DeactivateStampsEnd(t *testing.T) {
	repo := new(MockDisasterRepository)
	svc := NewDisasterService(repo, nil)

	now := time.Now()
	existing := &models.Disaster{ID: 2, Name: "Erupsi Marapi", IsActive: true}
	deactivated := &models.Disaster{ID: 2, Name: "Erupsi Marapi", IsActive: false, EndedAt: &now}
	inactive := false

	repo.On("GetByID", mock.Anything, int64(2)).Return(existing, nil)
	repo.On("Update", mock.Anything, existing).Return(nil)
	repo.On("Deactivate", mock.Anything, int64(2), mock.AnythingOfType("time.Time")).Return(deactivated, nil)

	d, err := svc.Update(context.Background(), "admin-1", 2, UpdateDisasterInput{IsActive: &inactive})

	assert.NoError(t, err)
	assert.False(t, d.IsActive)
	assert.NotNil(t, d.EndedAt)
}

func TestDisasterSwitch_PointsSessionAtTarget(t *testing.T) {
	repo := new(MockDisasterRepository)
	sessions := new(MockScopeSession)
	svc := NewDisasterService(repo, sessions)

	target := &models.Disaster{ID: 7, Name: "Banjir Demak"}
	repo.On("GetByID", mock.Anything, int64(7)).Return(target, nil)
	sessions.On("Set", mock.Anything, "admin-1", scope.DisasterScope{DisasterID: 7, Name: "Banjir Demak"}).Return(nil)

	sc, err := svc.Switch(context.Background(), "admin-1", 7)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), sc.DisasterID)
	sessions.AssertExpectations(t)
}

func TestDisasterCreate_EmptyNameRejected(t *testing.T) {
	repo := new(MockDisasterRepository)
	svc := NewDisasterService(repo, nil)

	_, err := svc.Create(context.Background(), "admin-1", CreateDisasterInput{Name: "   "})

	assert.ErrorIs(t, err, ErrNameRequired)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
