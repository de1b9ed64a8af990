package domain

// EngagementMetrics feeds the marketing engagement widget. The numbers are
// synthetic until a real analytics store exists.
type EngagementMetrics struct {
	ActiveUsers     int       `json:"activeUsers"`
	TournamentsWon  int       `json:"tournamentsWon"`
	ImprovementRate int       `json:"improvementRate"`
	AverageRating   float64   `json:"averageRating"`
	RatingTrend     []float64 `json:"ratingTrend"`
	UpdatedAt       int64     `json:"updatedAt"`
}
