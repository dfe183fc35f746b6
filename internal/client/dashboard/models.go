// Package dashboard provides the data behind the protected dashboard views:
// stat cards, facility rows, feedback score breakdowns, and the monthly
// reviews trend. Data is served from in-memory fixtures; a real backend feed
// is an external concern.
package dashboard

// TrendDirection labels a stat card's movement since the previous period.
type TrendDirection string

const (
	TrendUp      TrendDirection = "up"
	TrendDown    TrendDirection = "down"
	TrendNeutral TrendDirection = "neutral"
)

// Performance buckets a facility's overall standing.
type Performance string

const (
	PerformanceGood   Performance = "good"
	PerformanceBad    Performance = "bad"
	PerformanceNormal Performance = "normal"
)

// StatCard is one headline figure on the dashboard.
type StatCard struct {
	ID             string
	Title          string
	Value          string
	Trend          string
	TrendLabel     string
	TrendDirection TrendDirection
}

// FacilityRow is one row of the facility details table.
type FacilityRow struct {
	ID                  string
	Name                string
	Reviews             int
	ConversionRate      float64
	AverageRate         float64
	FeedbackNotReviewed float64
	ReviewNotResponded  int
	Performance         Performance
}

// FeedbackStat is one labelled progress-bar value, in percent.
type FeedbackStat struct {
	Name  string
	Value int
}

// TrendPoint is one day of the reviews trend chart.
type TrendPoint struct {
	Day        int
	Reviews    int
	DisplayDay string
}

// NavItem is one entry of the shell's navigation menu.
type NavItem struct {
	ID    string
	Label string
	Href  string
}
