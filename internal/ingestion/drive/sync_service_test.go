package drive

import (
	"context"
	"errors"
	"testing"

	"dmthub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockLister mocks the Lister interface
type MockLister struct {
	mock.Mock
}

func (m *MockLister) ListImages(ctx context.Context, folderID string) ([]File, error) {
	args := m.Called(ctx, folderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]File), args.Error(1)
}

// MockInfographicRepository mocks repository.InfographicRepository
type MockInfographicRepository struct {
	mock.Mock
}

func (m *MockInfographicRepository) ListByDisaster(ctx context.Context, disasterID int64) ([]models.Infographic, error) {
	args := m.Called(ctx, disasterID)
	return args.Get(0).([]models.Infographic), args.Error(1)
}

func (m *MockInfographicRepository) Upsert(ctx context.Context, info *models.Infographic) error {
	args := m.Called(ctx, info)
	return args.Error(0)
}

func (m *MockInfographicRepository) DeleteMissing(ctx context.Context, disasterID int64, keep []string) (int64, error) {
	args := m.Called(ctx, disasterID, keep)
	return args.Get(0).(int64), args.Error(1)
}

var folderLink = models.SourceLink{
	ID:         1,
	DisasterID: 7,
	Kind:       models.SourceKindInfographicFolder,
	ExternalID: "folder-abc",
}

func TestScan_ReconcilesFolder(t *testing.T) {
	lister := new(MockLister)
	repo := new(MockInfographicRepository)
	svc := NewSyncService(lister, repo)

	// remote folder now holds B, C, D; A was deleted upstream
	lister.On("ListImages", mock.Anything, "folder-abc").Return([]File{
		{ID: "id-d", Name: "update 10.png", MimeType: "image/png"},
		{ID: "id-b", Name: "update 1.png", MimeType: "image/png"},
		{ID: "id-c", Name: "update 2.png", MimeType: "image/png"},
	}, nil)

	var positions []int
	var order []string
	repo.On("Upsert", mock.Anything, mock.AnythingOfType("*models.Infographic")).Run(func(args mock.Arguments) {
		info := args.Get(1).(*models.Infographic)
		positions = append(positions, info.Position)
		order = append(order, info.FileID)
		assert.Equal(t, int64(7), info.DisasterID)
	}).Return(nil)
	repo.On("DeleteMissing", mock.Anything, int64(7), []string{"id-b", "id-c", "id-d"}).Return(int64(1), nil)

	n, err := svc.Scan(context.Background(), folderLink)

	assert.NoError(t, err)
	assert.Equal(t, 3, n)
	// natural name order decides gallery position
	assert.Equal(t, []string{"id-b", "id-c", "id-d"}, order)
	assert.Equal(t, []int{0, 1, 2}, positions)
	repo.AssertExpectations(t)
}

func TestScan_EmptyFolderClearsMirror(t *testing.T) {
	lister := new(MockLister)
	repo := new(MockInfographicRepository)
	svc := NewSyncService(lister, repo)

	lister.On("ListImages", mock.Anything, "folder-abc").Return([]File{}, nil)
	repo.On("DeleteMissing", mock.Anything, int64(7), []string{}).Return(int64(4), nil)

	n, err := svc.Scan(context.Background(), folderLink)

	assert.NoError(t, err)
	assert.Equal(t, 0, n)
	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestScan_ListFailureLeavesMirrorAlone(t *testing.T) {
	lister := new(MockLister)
	repo := new(MockInfographicRepository)
	svc := NewSyncService(lister, repo)

	lister.On("ListImages", mock.Anything, "folder-abc").Return(nil, errors.New("drive API: 403"))

	_, err := svc.Scan(context.Background(), folderLink)

	assert.Error(t, err)
	repo.AssertNotCalled(t, "DeleteMissing", mock.Anything, mock.Anything, mock.Anything)
}

func TestScan_RejectsWrongKind(t *testing.T) {
	svc := NewSyncService(new(MockLister), new(MockInfographicRepository))

	_, err := svc.Scan(context.Background(), models.SourceLink{ID: 2, Kind: models.SourceKindDmtSheet})

	assert.Error(t, err)
}
