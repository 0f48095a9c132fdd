package history

import (
	"context"
	"strings"

	"ecoclean/models"
)

// Milestone thresholds for reward ranks. Fixed table, compared against a
// locally computed point total; server-side balances are not consulted.
var milestones = []models.Milestone{
	{Rank: "Bronze", Threshold: 0},
	{Rank: "Silver", Threshold: 5},
	{Rank: "Gold", Threshold: 15},
	{Rank: "Platinum", Threshold: 30},
}

// Rewards computes the reward-points view: one point per Completed record
// across bookings and pickups. Non-authoritative by design of the view.
func (s *HistoryService) Rewards(ctx context.Context, token string) (*models.RewardSummary, error) {
	bookings, err := s.Backend.ListBookings(ctx, token)
	if err != nil {
		return nil, err
	}
	pickups, err := s.Backend.ListPickups(ctx, token)
	if err != nil {
		return nil, err
	}

	completedBookings := 0
	for _, b := range bookings {
		if isCompleted(b.Status) {
			completedBookings++
		}
	}
	completedPickups := 0
	for _, p := range pickups {
		if isCompleted(p.Status) {
			completedPickups++
		}
	}

	summary := &models.RewardSummary{
		Points:            completedBookings + completedPickups,
		CompletedBookings: completedBookings,
		CompletedPickups:  completedPickups,
		Milestones:        milestones,
	}
	summary.Rank, summary.NextRank, summary.PointsToNext = rankFor(summary.Points)
	return summary, nil
}

func isCompleted(status string) bool {
	return strings.EqualFold(status, models.StatusCompleted)
}

// rankFor resolves the current rank and the distance to the next one.
func rankFor(points int) (rank, next string, toNext int) {
	rank = milestones[0].Rank
	for i, m := range milestones {
		if points >= m.Threshold {
			rank = m.Rank
			if i+1 < len(milestones) {
				next = milestones[i+1].Rank
				toNext = milestones[i+1].Threshold - points
			} else {
				next = ""
				toNext = 0
			}
		}
	}
	return rank, next, toNext
}
