package sheets

import (
	"context"
	"errors"
	"testing"

	"dmthub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockValuesFetcher mocks the ValuesFetcher interface
type MockValuesFetcher struct {
	mock.Mock
}

func (m *MockValuesFetcher) FetchValues(ctx context.Context, spreadsheetID, readRange string) (*ValueRange, error) {
	args := m.Called(ctx, spreadsheetID, readRange)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ValueRange), args.Error(1)
}

// MockReplacer mocks the Replacer interface and records each snapshot.
type MockReplacer struct {
	mock.Mock
	snapshots [][]models.Registration
}

func (m *MockReplacer) Replace(ctx context.Context, disasterID int64, regs []models.Registration) error {
	m.snapshots = append(m.snapshots, regs)
	args := m.Called(ctx, disasterID, regs)
	return args.Error(0)
}

var sheetLink = models.SourceLink{
	ID:         1,
	DisasterID: 7,
	Kind:       models.SourceKindDmtSheet,
	ExternalID: "sheet-abc",
}

func sheetGrid() *ValueRange {
	return &ValueRange{
		Values: [][]any{
			{"Nama Tim", "Institusi Asal", "Jumlah Dokter"},
			{"EMT Bulan Sabit", "RS Islam Jakarta", float64(4)},
			{"EMT Medika", "RSUD Padang", float64(2)},
			{"", "baris tanpa tim", float64(9)},
		},
	}
}

func TestSheetScan_MapsAndReplaces(t *testing.T) {
	fetcher := new(MockValuesFetcher)
	snapshot := new(MockReplacer)
	svc := NewSyncService(fetcher, snapshot)

	fetcher.On("FetchValues", mock.Anything, "sheet-abc", defaultRange).Return(sheetGrid(), nil)
	snapshot.On("Replace", mock.Anything, int64(7), mock.Anything).Return(nil)

	n, err := svc.Scan(context.Background(), sheetLink)

	assert.NoError(t, err)
	assert.Equal(t, 2, n)

	regs := snapshot.snapshots[0]
	assert.Len(t, regs, 2)
	assert.Equal(t, "EMT Bulan Sabit", regs[0].NamaTim)
	assert.Equal(t, models.RegistrationSourceSheet, regs[0].Source)
	assert.Equal(t, int64(7), regs[0].DisasterID)
}

func TestSheetScan_IdempotentOnIdenticalFetch(t *testing.T) {
	fetcher := new(MockValuesFetcher)
	snapshot := new(MockReplacer)
	svc := NewSyncService(fetcher, snapshot)

	fetcher.On("FetchValues", mock.Anything, "sheet-abc", defaultRange).Return(sheetGrid(), nil)
	snapshot.On("Replace", mock.Anything, int64(7), mock.Anything).Return(nil)

	n1, err := svc.Scan(context.Background(), sheetLink)
	assert.NoError(t, err)
	n2, err := svc.Scan(context.Background(), sheetLink)
	assert.NoError(t, err)

	// the same sheet content produces the same snapshot every time
	assert.Equal(t, n1, n2)
	assert.Len(t, snapshot.snapshots, 2)
	assert.Equal(t, snapshot.snapshots[0], snapshot.snapshots[1])
}

func TestSheetScan_FetchErrorLeavesMirrorAlone(t *testing.T) {
	fetcher := new(MockValuesFetcher)
	snapshot := new(MockReplacer)
	svc := NewSyncService(fetcher, snapshot)

	fetcher.On("FetchValues", mock.Anything, "sheet-abc", defaultRange).
		Return(nil, errors.New("sheets API: 429"))

	_, err := svc.Scan(context.Background(), sheetLink)

	assert.Error(t, err)
	snapshot.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything, mock.Anything)
}

func TestSheetScan_ReplaceErrorPropagates(t *testing.T) {
	fetcher := new(MockValuesFetcher)
	snapshot := new(MockReplacer)
	svc := NewSyncService(fetcher, snapshot)

	fetcher.On("FetchValues", mock.Anything, "sheet-abc", defaultRange).Return(sheetGrid(), nil)
	snapshot.On("Replace", mock.Anything, int64(7), mock.Anything).Return(errors.New("tx aborted"))

	_, err := svc.Scan(context.Background(), sheetLink)

	assert.Error(t, err)
}

func TestSheetScan_RejectsWrongKind(t *testing.T) {
	svc := NewSyncService(new(MockValuesFetcher), new(MockReplacer))

	_, err := svc.Scan(context.Background(), models.SourceLink{ID: 2, Kind: models.SourceKindInfographicFolder})

	assert.Error(t, err)
}
