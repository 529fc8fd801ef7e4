package twitter

import "log/slog"

// Report collects every extraction over the tweets selected by a Config.
type Report struct {
	// Tweets is the number of tweets that passed the filters.
	Tweets int
	// Timespan is nil when no tweet passed the filters.
	Timespan    *Timespan
	Mentions    UsernameSet
	Graph       FollowsGraph
	Influencers []Influencer
}

// Analyze filters tweets by cfg and runs the extractions over the rest.
// The input slice is not modified.
func Analyze(tweets []Tweet, cfg Config) (*Report, error) {
	cfg.defaults()

	selected, err := cfg.Select(tweets)
	if err != nil {
		return nil, err
	}

	r := &Report{
		Tweets:   len(selected),
		Mentions: MentionedUsers(selected),
		Graph:    GuessFollowsGraph(selected),
	}
	if ts, err := GetTimespan(selected); err == nil {
		r.Timespan = &ts
	}
	r.Influencers = RankInfluencers(r.Graph)
	if cfg.Top > 0 && len(r.Influencers) > cfg.Top {
		r.Influencers = r.Influencers[:cfg.Top]
	}

	slog.Debug("analysis done",
		slog.Int("input", len(tweets)),
		slog.Int("selected", r.Tweets),
		slog.Int("mentions", r.Mentions.Len()),
		slog.Int("users", r.Graph.Len()))
	return r, nil
}
