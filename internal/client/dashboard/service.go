package dashboard

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Service hands out dashboard data. The trend generator uses the service's
// own random source, so tests can pass a seeded one.
type Service struct {
	rnd *rand.Rand
}

// NewService builds a Service with a time-seeded random source.
func NewService() *Service {
	return NewServiceWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewServiceWithRand builds a Service around the given source.
func NewServiceWithRand(rnd *rand.Rand) *Service {
	return &Service{rnd: rnd}
}

// Stats returns the headline stat cards.
func (s *Service) Stats() []StatCard {
	return []StatCard{
		{
			ID:             uuid.NewString(),
			Title:          "Total Reviews",
			Value:          "40,689",
			Trend:          "8.5%",
			TrendLabel:     "Up from yesterday",
			TrendDirection: TrendUp,
		},
		{
			ID:             uuid.NewString(),
			Title:          "Conversion rate",
			Value:          "92%",
			Trend:          "1.3%",
			TrendLabel:     "Up from yesterday",
			TrendDirection: TrendUp,
		},
		{
			ID:             uuid.NewString(),
			Title:          "Delivery Success Rate",
			Value:          "89%",
			Trend:          "4.3%",
			TrendLabel:     "Down from yesterday",
			TrendDirection: TrendDown,
		},
		{
			ID:             uuid.NewString(),
			Title:          "New Reviews",
			Value:          "2040",
			Trend:          "1.8%",
			TrendLabel:     "Up from yesterday",
			TrendDirection: TrendUp,
		},
	}
}

// Facilities returns the facility details table rows.
func (s *Service) Facilities() []FacilityRow {
	return []FacilityRow{
		{
			ID:                  uuid.NewString(),
			Name:                "Golden Storage",
			Reviews:             159,
			ConversionRate:      6.0,
			AverageRate:         24,
			FeedbackNotReviewed: 4.0,
			ReviewNotResponded:  40,
			Performance:         PerformanceGood,
		},
	}
}

// FeedbackStats returns the per-category feedback score breakdown.
func (s *Service) FeedbackStats() []FeedbackStat {
	return []FeedbackStat{
		{Name: "Communication", Value: 60},
		{Name: "Team Friendliness", Value: 72},
		{Name: "Facility Cleanliness", Value: 78},
		{Name: "Unit Selection", Value: 38},
		{Name: "Rental Process", Value: 38},
	}
}

// NavItems returns the shell's navigation menu, main group first.
func (s *Service) NavItems() []NavItem {
	return []NavItem{
		{ID: "home", Label: "Home", Href: "/home/dashboard"},
		{ID: "reviews", Label: "Reviews", Href: "/home/reviews"},
		{ID: "facilities", Label: "Facilities", Href: "/home/facilities"},
		{ID: "campaigns", Label: "Campaigns", Href: "/home/campaigns"},
		{ID: "analytics", Label: "Analytics", Href: "/home/analytics"},
		{ID: "customers", Label: "Customers", Href: "/home/customers"},
		{ID: "es-templates", Label: "Email/SMS templates", Href: "/home/es-templates"},
		{ID: "team-management", Label: "Team Management", Href: "/home/team-management"},
		{ID: "feedback", Label: "Feedback Submissions", Href: "/home/feedbackSubmission"},
		{ID: "review-management", Label: "Review Management", Href: "/home/reviewManagement"},
		{ID: "support", Label: "Support", Href: "/home/support"},
		{ID: "audit-logs", Label: "Audit Logs", Href: "/home/audit-logs"},
		{ID: "settings", Label: "Settings", Href: "/home/settings"},
	}
}
