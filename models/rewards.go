package models

// Milestone is a reward rank threshold. Thresholds are a fixed table; the
// point total they are compared against is computed locally from completed
// records and is not authoritative.
type Milestone struct {
	Rank      string `json:"rank"`
	Threshold int    `json:"threshold"`
}

// RewardSummary is the reward-points view model.
type RewardSummary struct {
	Points            int         `json:"points"`
	CompletedBookings int         `json:"completedBookings"`
	CompletedPickups  int         `json:"completedPickups"`
	Rank              string      `json:"rank"`
	NextRank          string      `json:"nextRank,omitempty"`
	PointsToNext      int         `json:"pointsToNext,omitempty"`
	Milestones        []Milestone `json:"milestones"`
}
