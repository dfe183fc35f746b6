package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/storedash/internal/client/dashboard"
)

// outWriter is a test seam for tabular output.
var outWriter io.Writer = os.Stdout

// Stats renders the headline stat cards.
func (a *App) Stats(ctx context.Context) error {
	if !a.guard(ctx) {
		return nil
	}

	w := tabwriter.NewWriter(outWriter, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE\tTREND")
	for _, s := range a.dash.Stats() {
		arrow := " "
		switch s.TrendDirection {
		case dashboard.TrendUp:
			arrow = "↑"
		case dashboard.TrendDown:
			arrow = "↓"
		}
		fmt.Fprintf(w, "%s\t%s\t%s %s (%s)\n", s.Title, s.Value, arrow, s.Trend, s.TrendLabel)
	}
	return w.Flush()
}

// Facilities renders the facility details table.
func (a *App) Facilities(ctx context.Context) error {
	if !a.guard(ctx) {
		return nil
	}

	w := tabwriter.NewWriter(outWriter, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FACILITY\tREVIEWS\tCONV%\tAVG\tUNREVIEWED\tUNRESPONDED\tPERF")
	for _, f := range a.dash.Facilities() {
		fmt.Fprintf(w, "%s\t%d\t%.1f\t%.1f\t%.1f\t%d\t%s\n",
			f.Name, f.Reviews, f.ConversionRate, f.AverageRate,
			f.FeedbackNotReviewed, f.ReviewNotResponded, f.Performance)
	}
	return w.Flush()
}

// Feedback renders the per-category feedback scores as progress bars.
func (a *App) Feedback(ctx context.Context) error {
	if !a.guard(ctx) {
		return nil
	}

	w := tabwriter.NewWriter(outWriter, 0, 4, 2, ' ', 0)
	for _, s := range a.dash.FeedbackStats() {
		filled := s.Value / 5
		bar := strings.Repeat("█", filled) + strings.Repeat("░", 20-filled)
		fmt.Fprintf(w, "%s\t%s\t%d%%\n", s.Name, bar, s.Value)
	}
	return w.Flush()
}

// Trend renders the daily reviews trend for the given month, defaulting to
// the current one.
func (a *App) Trend(ctx context.Context, month string) error {
	if !a.guard(ctx) {
		return nil
	}

	if month == "" {
		month = dashboard.CurrentMonth(a.nowFn())
	} else {
		month = strings.ToUpper(month[:1]) + strings.ToLower(month[1:])
	}

	points := a.dash.Trend(month)
	if len(points) == 0 {
		printlnFn("Unknown month: " + month)
		return nil
	}

	max := 0
	for _, p := range points {
		if p.Reviews > max {
			max = p.Reviews
		}
	}

	w := tabwriter.NewWriter(outWriter, 0, 4, 2, ' ', 0)
	for _, p := range points {
		bar := strings.Repeat("▇", p.Reviews*40/max)
		fmt.Fprintf(w, "%s\t%s\t%d\n", p.DisplayDay, bar, p.Reviews)
	}
	return w.Flush()
}

// Nav prints the navigation menu of the shell.
func (a *App) Nav(ctx context.Context) error {
	if !a.guard(ctx) {
		return nil
	}

	w := tabwriter.NewWriter(outWriter, 0, 4, 2, ' ', 0)
	for _, item := range a.dash.NavItems() {
		fmt.Fprintf(w, "%s\t%s\n", item.Label, item.Href)
	}
	return w.Flush()
}

// Whoami shows the signed-in user and the advisory session expiry.
func (a *App) Whoami(ctx context.Context) error {
	if !a.guard(ctx) {
		return nil
	}

	cur := a.store.Snapshot()
	if cur.User != nil {
		printlnFn(fmt.Sprintf("%s %s <%s>", cur.User.FirstName, cur.User.LastName, cur.User.Email))
	}
	if cur.ExpiresAt > 0 {
		printlnFn(fmt.Sprintf("session expires at %d (epoch ms, advisory)", cur.ExpiresAt))
	}
	return nil
}
