package history

import (
	"context"
	"testing"

	"ecoclean/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockLister struct {
	mock.Mock
}

func (m *mockLister) ListBookings(ctx context.Context, token string) ([]models.ServiceBooking, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ServiceBooking), args.Error(1)
}

func (m *mockLister) ListPickups(ctx context.Context, token string) ([]models.PickupRequest, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PickupRequest), args.Error(1)
}

func newTestService(backend *mockLister) *HistoryService {
	return &HistoryService{Backend: backend, Logger: zap.NewNop()}
}

func TestHistoryMergesAndSortsNewestFirst(t *testing.T) {
	backend := new(mockLister)
	backend.On("ListBookings", mock.Anything, "tok").Return([]models.ServiceBooking{
		{ID: "b1", Date: "2024-07-01", Status: "Completed"},
		{ID: "b2", Date: "2024-07-10", Status: "Pending"},
	}, nil)
	backend.On("ListPickups", mock.Anything, "tok").Return([]models.PickupRequest{
		{ID: "p1", Date: "2024-07-05", Status: "Completed"},
	}, nil)

	items, err := newTestService(backend).History(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, []string{"b2", "p1", "b1"}, []string{items[0].ID, items[1].ID, items[2].ID})
}

func TestSortUnparsableDatesFallBackToLexical(t *testing.T) {
	items := []models.HistoryItem{
		NormalizeBooking(models.ServiceBooking{ID: "raw-a", Date: "around easter"}),
		NormalizeBooking(models.ServiceBooking{ID: "ok", Date: "2024-03-01"}),
		NormalizeBooking(models.ServiceBooking{ID: "raw-z", Date: "zzz unknown"}),
	}
	SortByDateDesc(items)

	// Parsed dates first, then raw strings in descending lexical order.
	assert.Equal(t, "ok", items[0].ID)
	assert.Equal(t, "raw-z", items[1].ID)
	assert.Equal(t, "raw-a", items[2].ID)
}

func TestSortIsStableForEqualDates(t *testing.T) {
	items := []models.HistoryItem{
		NormalizeBooking(models.ServiceBooking{ID: "first", Date: "2024-07-01"}),
		NormalizeBooking(models.ServiceBooking{ID: "second", Date: "2024-07-01"}),
	}
	SortByDateDesc(items)

	assert.Equal(t, "first", items[0].ID)
	assert.Equal(t, "second", items[1].ID)
}

func TestFilterByStatus(t *testing.T) {
	items := []models.HistoryItem{
		{ID: "a", Status: "pending"},
		{ID: "b", Status: "completed"},
		{ID: "c", Status: "pending"},
	}

	got := Filter{Status: "Pending"}.Apply(items)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}

func TestFilterByFreeText(t *testing.T) {
	items := []models.HistoryItem{
		{ID: "a", Kind: models.KindPickupRequest, Date: "Jul 5, 2024", Address: "12 Green Lane"},
		{ID: "b", Kind: models.KindServiceBooking, Date: "Jul 10, 2024", Address: "4 Mill Road"},
	}

	assert.Len(t, Filter{Query: "green"}.Apply(items), 1)
	assert.Len(t, Filter{Query: "JUL"}.Apply(items), 2)
	assert.Len(t, Filter{Query: "pickup"}.Apply(items), 1)
	assert.Empty(t, Filter{Query: "warehouse"}.Apply(items))
}

func TestTrackFindsRecordWithoutExtraCalls(t *testing.T) {
	backend := new(mockLister)
	backend.On("ListBookings", mock.Anything, "tok").Return([]models.ServiceBooking{
		{ID: "b1", Date: "2024-07-01", Status: "In Progress"},
	}, nil).Once()
	backend.On("ListPickups", mock.Anything, "tok").Return([]models.PickupRequest{}, nil).Once()

	item, found, err := newTestService(backend).Track(context.Background(), "tok", "b1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "in progress", item.Status)
	backend.AssertExpectations(t)
}

func TestSummarizeCountsByStatus(t *testing.T) {
	backend := new(mockLister)
	backend.On("ListBookings", mock.Anything, "tok").Return([]models.ServiceBooking{
		{ID: "b1", Date: "2024-07-01", Status: "Completed"},
		{ID: "b2", Date: "2024-07-10", Status: "Pending"},
	}, nil)
	backend.On("ListPickups", mock.Anything, "tok").Return([]models.PickupRequest{
		{ID: "p1", Date: "2024-07-05", Status: "Canceled"},
	}, nil)

	sum, err := newTestService(backend).Summarize(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, 3, sum.Total)
	assert.Equal(t, 1, sum.ByStatus["completed"])
	assert.Equal(t, 1, sum.ByStatus["pending"])
	assert.Equal(t, 1, sum.ByStatus["canceled"])
	require.NotNil(t, sum.Upcoming)
	assert.Equal(t, "b2", sum.Upcoming.ID)
}
