package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"dmthub/internal/models"
	"dmthub/internal/scope"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockSourceLinkRepository mocks the SourceLinkRepository interface
type MockSourceLinkRepository struct {
	mock.Mock
}

func (m *MockSourceLinkRepository) List(ctx context.Context, sc scope.DisasterScope) ([]models.SourceLink, error) {
	args := m.Called(ctx, sc)
	return args.Get(0).([]models.SourceLink), args.Error(1)
}

func (m *MockSourceLinkRepository) ListByKind(ctx context.Context, kind string) ([]models.SourceLink, error) {
	args := m.Called(ctx, kind)
	return args.Get(0).([]models.SourceLink), args.Error(1)
}

func (m *MockSourceLinkRepository) GetByID(ctx context.Context, sc scope.DisasterScope, id int64) (*models.SourceLink, error) {
	args := m.Called(ctx, sc, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SourceLink), args.Error(1)
}

func (m *MockSourceLinkRepository) Create(ctx context.Context, link *models.SourceLink) error {
	args := m.Called(ctx, link)
	link.ID = 1
	return args.Error(0)
}

func (m *MockSourceLinkRepository) Update(ctx context.Context, link *models.SourceLink) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockSourceLinkRepository) Delete(ctx context.Context, sc scope.DisasterScope, id int64) error {
	args := m.Called(ctx, sc, id)
	return args.Error(0)
}

func (m *MockSourceLinkRepository) RecordScanResult(ctx context.Context, id int64, at time.Time, scanErr *string) error {
	args := m.Called(ctx, id, at, scanErr)
	return args.Error(0)
}

// MockScanner mocks the Scanner interface
type MockScanner struct {
	mock.Mock
}

func (m *MockScanner) Scan(ctx context.Context, link models.SourceLink) (int, error) {
	args := m.Called(ctx, link)
	return args.Int(0), args.Error(1)
}

const sheetURL = "https://docs.google.com/spreadsheets/d/1AbCdEfGhIjKlMnOp/edit#gid=0"

func TestSaveSourceLink_ScansOnSave(t *testing.T) {
	repo := new(MockSourceLinkRepository)
	scanner := new(MockScanner)
	svc := NewSourceLinkService(repo, scanner, nil)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.SourceLink")).Return(nil)
	scanner.On("Scan", mock.Anything, mock.AnythingOfType("models.SourceLink")).Return(42, nil)
	repo.On("RecordScanResult", mock.Anything, int64(1), mock.AnythingOfType("time.Time"), (*string)(nil)).Return(nil)

	out, err := svc.Save(context.Background(), testScope, SaveSourceLinkInput{
		Kind: models.SourceKindDmtSheet,
		URL:  sheetURL,
	})

	assert.NoError(t, err)
	assert.Equal(t, 42, out.Rows)
	assert.Empty(t, out.Warning)
	assert.Equal(t, "1AbCdEfGhIjKlMnOp", out.Link.ExternalID)
	assert.NotNil(t, out.Link.LastScannedAt)
	assert.Nil(t, out.Link.LastScanError)
}

func TestSaveSourceLink_ScanFailureStillSaves(t *testing.T) {
	repo := new(MockSourceLinkRepository)
	scanner := new(MockScanner)
	svc := NewSourceLinkService(repo, scanner, nil)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.SourceLink")).Return(nil)
	scanner.On("Scan", mock.Anything, mock.Anything).Return(0, errors.New("sheets API: 403"))
	repo.On("RecordScanResult", mock.Anything, int64(1), mock.AnythingOfType("time.Time"), mock.AnythingOfType("*string")).Return(nil)

	out, err := svc.Save(context.Background(), testScope, SaveSourceLinkInput{
		Kind: models.SourceKindDmtSheet,
		URL:  sheetURL,
	})

	assert.NoError(t, err)
	assert.Contains(t, out.Warning, "pemindaian gagal")
	assert.NotNil(t, out.Link.LastScanError)
	repo.AssertExpectations(t)
}

func TestSaveSourceLink_BadURLFailsSave(t *testing.T) {
	repo := new(MockSourceLinkRepository)
	svc := NewSourceLinkService(repo, new(MockScanner), nil)

	_, err := svc.Save(context.Background(), testScope, SaveSourceLinkInput{
		Kind: models.SourceKindDmtSheet,
		URL:  "https://example.com/not-a-sheet",
	})

	assert.Error(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSaveSourceLink_RequiresScope(t *testing.T) {
	svc := NewSourceLinkService(new(MockSourceLinkRepository), new(MockScanner), nil)

	_, err := svc.Save(context.Background(), scope.DisasterScope{}, SaveSourceLinkInput{
		Kind: models.SourceKindDmtSheet,
		URL:  sheetURL,
	})

	assert.ErrorIs(t, err, ErrNoActiveDisaster)
}

func TestRescan_RefreshesExistingLink(t *testing.T) {
	repo := new(MockSourceLinkRepository)
	scanner := new(MockScanner)
	svc := NewSourceLinkService(repo, nil, scanner)

	link := &models.SourceLink{
		ID:         9,
		DisasterID: 1,
		Kind:       models.SourceKindInfographicFolder,
		ExternalID: "folder-abc",
	}
	repo.On("GetByID", mock.Anything, testScope, int64(9)).Return(link, nil)
	scanner.On("Scan", mock.Anything, *link).Return(12, nil)
	repo.On("RecordScanResult", mock.Anything, int64(9), mock.AnythingOfType("time.Time"), (*string)(nil)).Return(nil)

	out, err := svc.Rescan(context.Background(), testScope, 9)

	assert.NoError(t, err)
	assert.Equal(t, 12, out.Rows)
}
