package twitter

import (
	"fmt"
	"time"
)

// Tweet represents a single tweet. Values are never mutated once built.
// The JSON form is the archive record read by ParseTweetsJSON.
type Tweet struct {
	ID        int64     `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Timespan is a closed time interval [Start, End] with Start <= End.
type Timespan struct {
	Start time.Time
	End   time.Time
}

// NewTimespan builds a Timespan, rejecting start after end.
func NewTimespan(start, end time.Time) (Timespan, error) {
	if start.After(end) {
		return Timespan{}, fmt.Errorf("%w: start %s after end %s",
			ErrInvalidTimespan, start.Format(time.RFC3339Nano), end.Format(time.RFC3339Nano))
	}
	return Timespan{Start: start, End: end}, nil
}

// Contains reports whether t lies within the interval, bounds included.
func (ts Timespan) Contains(t time.Time) bool {
	return !t.Before(ts.Start) && !t.After(ts.End)
}

// Duration returns End - Start.
func (ts Timespan) Duration() time.Duration {
	return ts.End.Sub(ts.Start)
}

// Influencer is a username together with its follower count in a FollowsGraph.
type Influencer struct {
	Username  string `json:"username"`
	Followers int    `json:"followers"`
}
