package history

import (
	"context"
	"sort"
	"strings"

	"ecoclean/models"

	"go.uber.org/zap"
)

// Lister is the slice of the backend client the history views need.
type Lister interface {
	ListBookings(ctx context.Context, token string) ([]models.ServiceBooking, error)
	ListPickups(ctx context.Context, token string) ([]models.PickupRequest, error)
}

// HistoryService builds the merged booking+pickup history views.
type HistoryService struct {
	Backend Lister
	Logger  *zap.Logger
}

// Filter is the client-side predicate over the merged list. Zero value
// matches everything.
type Filter struct {
	Status string // matched against the lowercased status, exact
	Query  string // case-insensitive substring over kind, date, address
}

// History fetches both lists, normalizes and merges them, newest first.
func (s *HistoryService) History(ctx context.Context, token string) ([]models.HistoryItem, error) {
	bookings, err := s.Backend.ListBookings(ctx, token)
	if err != nil {
		return nil, err
	}
	pickups, err := s.Backend.ListPickups(ctx, token)
	if err != nil {
		return nil, err
	}

	items := make([]models.HistoryItem, 0, len(bookings)+len(pickups))
	for _, b := range bookings {
		items = append(items, NormalizeBooking(b))
	}
	for _, p := range pickups {
		items = append(items, NormalizePickup(p))
	}
	SortByDateDesc(items)
	return items, nil
}

// SortByDateDesc orders items newest first. The sort is stable; records
// whose dates did not parse sort after parsed ones, ordered by the raw
// string's lexical order as a degraded fallback.
func SortByDateDesc(items []models.HistoryItem) {
	sort.SliceStable(items, func(i, j int) bool {
		di, iOK := items[i].ParsedDate()
		dj, jOK := items[j].ParsedDate()
		switch {
		case iOK && jOK:
			return di.After(dj)
		case iOK:
			return true
		case jOK:
			return false
		default:
			return items[i].Date > items[j].Date
		}
	})
}

// Apply filters the merged list in memory.
func (f Filter) Apply(items []models.HistoryItem) []models.HistoryItem {
	out := make([]models.HistoryItem, 0, len(items))
	query := strings.ToLower(strings.TrimSpace(f.Query))
	for _, item := range items {
		if f.Status != "" && item.Status != strings.ToLower(f.Status) {
			continue
		}
		if query != "" && !matchesQuery(item, query) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesQuery(item models.HistoryItem, query string) bool {
	return strings.Contains(strings.ToLower(item.Kind), query) ||
		strings.Contains(strings.ToLower(item.Date), query) ||
		strings.Contains(strings.ToLower(item.Address), query)
}

// Track returns the single history record with the given id from the
// already-merged set. No extra round-trip beyond the two list fetches.
func (s *HistoryService) Track(ctx context.Context, token, id string) (*models.HistoryItem, bool, error) {
	items, err := s.History(ctx, token)
	if err != nil {
		return nil, false, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], true, nil
		}
	}
	return nil, false, nil
}

// Summary is the dashboard view: per-status counts plus the next upcoming
// item, if any.
type Summary struct {
	Total    int                 `json:"total"`
	ByStatus map[string]int      `json:"byStatus"`
	Upcoming *models.HistoryItem `json:"upcoming,omitempty"`
}

// Summarize derives the dashboard summary from the merged history.
func (s *HistoryService) Summarize(ctx context.Context, token string) (*Summary, error) {
	items, err := s.History(ctx, token)
	if err != nil {
		return nil, err
	}
	sum := &Summary{Total: len(items), ByStatus: make(map[string]int)}
	for i := range items {
		sum.ByStatus[items[i].Status]++
	}
	// items are newest first; the last matching entry is the soonest one.
	for i := range items {
		if items[i].Status == "pending" || items[i].Status == "confirmed" {
			sum.Upcoming = &items[i]
		}
	}
	return sum, nil
}
