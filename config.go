package twitter

import (
	"fmt"
	"time"
)

// Config selects the tweets an analysis runs over and how much of the
// result to keep.
type Config struct {
	// Authors restricts the analysis to tweets written by these users.
	// Empty means every author.
	Authors []string

	// Keywords keeps only tweets containing at least one of these words.
	// Empty means no keyword filtering.
	Keywords []string

	// Since and Until bound the tweet timestamps, inclusive.
	// A zero value leaves that side open.
	Since time.Time
	Until time.Time

	// Top caps the number of influencers in the report.
	// Default: 10. Negative means no cap.
	Top int
}

// defaults fills in zero-value config fields with sensible defaults.
func (cfg *Config) defaults() {
	if cfg.Top == 0 {
		cfg.Top = 10
	}
}

// Select returns the tweets cfg keeps, in their original order: those
// written by one of Authors, inside the Since/Until window and containing
// one of Keywords. Empty criteria keep everything. The input is not
// modified.
func (cfg Config) Select(tweets []Tweet) ([]Tweet, error) {
	selected := tweets
	if len(cfg.Authors) > 0 {
		selected = writtenByAny(selected, cfg.Authors)
	}
	window, ok, err := cfg.window()
	if err != nil {
		return nil, fmt.Errorf("tweet window: %w", err)
	}
	if ok {
		selected = InTimespan(selected, window)
	}
	if len(cfg.Keywords) > 0 {
		selected = Containing(selected, cfg.Keywords)
	}
	return selected, nil
}

// writtenByAny keeps the tweets written by any of authors, in input order.
func writtenByAny(tweets []Tweet, authors []string) []Tweet {
	var result []Tweet
	for _, t := range tweets {
		if ContainsUsername(authors, t.Author) {
			result = append(result, t)
		}
	}
	return result
}

// window returns the time window described by Since and Until.
func (cfg Config) window() (Timespan, bool, error) {
	if cfg.Since.IsZero() && cfg.Until.IsZero() {
		return Timespan{}, false, nil
	}
	end := cfg.Until
	if end.IsZero() {
		end = maxTime
	}
	ts, err := NewTimespan(cfg.Since, end)
	if err != nil {
		return Timespan{}, false, err
	}
	return ts, true, nil
}

// maxTime is a practical upper bound for open-ended windows.
var maxTime = time.Date(9999, time.December, 31, 23, 59, 59, 999999999, time.UTC)
