package dashboard

import (
	"fmt"
	"math"
	"time"
)

// monthInfo drives the trend generator for one month.
type monthInfo struct {
	days      int
	abbrev    string
	baseValue float64
}

var trendMonths = map[string]monthInfo{
	"January":   {31, "Jan", 8000},
	"February":  {28, "Feb", 9000},
	"March":     {31, "Mar", 12000},
	"April":     {30, "Apr", 14000},
	"May":       {31, "May", 13000},
	"June":      {30, "Jun", 15000},
	"July":      {31, "Jul", 16000},
	"August":    {31, "Aug", 17000},
	"September": {30, "Sep", 18000},
	"October":   {31, "Oct", 1000},
	"November":  {30, "Nov", 11000},
	"December":  {31, "Dec", 1000},
}

// CurrentMonth returns the full English month name for the given instant.
func CurrentMonth(now time.Time) string {
	return now.Month().String()
}

// Trend synthesizes a month of daily review counts: a ramp-up over the first
// ten days, a sine-shaped peak until mid-month, then a gentle decline, with
// jitter on every day. Values never drop below 1000. An unknown month yields
// an empty slice.
func (s *Service) Trend(month string) []TrendPoint {
	info, ok := trendMonths[month]
	if !ok {
		return nil
	}

	points := make([]TrendPoint, 0, info.days)
	midMonth := info.days / 2

	for day := 1; day <= info.days; day++ {
		var reviews float64

		switch {
		case day <= 10:
			reviews = info.baseValue*(0.7+float64(day)/10*0.3) + s.rnd.Float64()*1000
		case day <= midMonth:
			peakFactor := 1 + 0.4*math.Sin(float64(day-10)/float64(midMonth-10)*math.Pi)
			reviews = info.baseValue*peakFactor + s.rnd.Float64()*1500
		default:
			declineFactor := 1 - float64(day-midMonth)/float64(info.days-midMonth)*0.2
			reviews = info.baseValue*declineFactor + s.rnd.Float64()*1000
		}

		points = append(points, TrendPoint{
			Day:        day,
			Reviews:    int(math.Max(1000, math.Round(reviews))),
			DisplayDay: fmt.Sprintf("%s %d", info.abbrev, day),
		})
	}

	return points
}
