package domain

import "time"

// HealthStatus classifies a feed's recent reliability
type HealthStatus string

// feed health statuses
const (
	HealthHealthy  HealthStatus = "healthy"
	HealthWarning  HealthStatus = "warning"
	HealthCritical HealthStatus = "critical"
	HealthUnknown  HealthStatus = "unknown"
)

// HealthAction is the recommended change to a feed's polling
type HealthAction string

// recommended actions
const (
	ActionIncreaseFrequency HealthAction = "increase_frequency"
	ActionDecreaseFrequency HealthAction = "decrease_frequency"
	ActionMaintain          HealthAction = "maintain"
	ActionDisable           HealthAction = "disable"
)

// FetchOutcome is a single fetch attempt reported to the health tracker
type FetchOutcome struct {
	Success       bool
	ResponseTime  time.Duration
	ArticlesFound int
	Error         string
}

// FetchRecord is a persisted fetch outcome
type FetchRecord struct {
	FeedID int64
	FetchOutcome
	FetchedAt time.Time
}

// FetchStats aggregates fetch records of one feed over a window
type FetchStats struct {
	FeedID              int64
	TotalFetches        int
	SuccessfulFetches   int
	ConsecutiveFailures int
	AvgResponseTimeMs   float64
	AvgArticles         float64
}

// FeedHealth is the derived health snapshot of a feed
type FeedHealth struct {
	FeedID              int64        `json:"feed_id"`
	TotalFetches        int          `json:"total_fetches"`
	SuccessfulFetches   int          `json:"successful_fetches"`
	SuccessRate         float64      `json:"success_rate"`
	ConsecutiveFailures int          `json:"consecutive_failures"`
	AvgResponseTimeMs   float64      `json:"avg_response_time_ms"`
	AvgArticles         float64      `json:"avg_articles"`
	Status              HealthStatus `json:"status"`
	Action              HealthAction `json:"recommended_action"`
}
