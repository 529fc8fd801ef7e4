package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	twitter "github.com/BardiaBoghrati/Tweet-Tweet"
)

var (
	headerColor = color.New(color.Bold)
	nameColor   = color.New(color.FgCyan)
	countColor  = color.New(color.FgGreen)
)

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// utcTweets returns a copy of tweets with timestamps in UTC, so JSON
// output does not depend on the archive's zone offsets.
func utcTweets(tweets []twitter.Tweet) []twitter.Tweet {
	out := make([]twitter.Tweet, len(tweets))
	for i, t := range tweets {
		t.Timestamp = t.Timestamp.UTC()
		out[i] = t
	}
	return out
}

// graphJSON maps each user to the sorted list of users they follow.
func graphJSON(g twitter.FollowsGraph) map[string][]string {
	out := make(map[string][]string, g.Len())
	g.Each(func(user string, followees []string) {
		out[user] = followees
	})
	return out
}

func printTimespan(w io.Writer, ts twitter.Timespan) {
	headerColor.Fprintln(w, "Timespan")
	fmt.Fprintf(w, "  start:    %s\n", ts.Start.UTC().Format(time.RFC3339Nano))
	fmt.Fprintf(w, "  end:      %s\n", ts.End.UTC().Format(time.RFC3339Nano))
	fmt.Fprintf(w, "  duration: %s\n", ts.Duration())
}

func printMentions(w io.Writer, mentions twitter.UsernameSet) {
	headerColor.Fprintf(w, "Mentioned users (%d)\n", mentions.Len())
	for _, name := range mentions.Names() {
		nameColor.Fprintf(w, "  @%s\n", name)
	}
}

func printGraph(w io.Writer, g twitter.FollowsGraph) {
	headerColor.Fprintf(w, "Follows graph (%d users)\n", g.Len())
	g.Each(func(user string, followees []string) {
		nameColor.Fprintf(w, "  %s", user)
		if len(followees) == 0 {
			fmt.Fprintln(w, " follows nobody")
			return
		}
		fmt.Fprint(w, " ->")
		for _, f := range followees {
			fmt.Fprintf(w, " %s", f)
		}
		fmt.Fprintln(w)
	})
}

func printInfluencers(w io.Writer, ranking []twitter.Influencer) {
	headerColor.Fprintf(w, "%-4s %-24s %s\n", "#", "USER", "FOLLOWERS")
	for i, in := range ranking {
		fmt.Fprintf(w, "%-4d ", i+1)
		nameColor.Fprintf(w, "%-24s ", in.Username)
		countColor.Fprintf(w, "%d\n", in.Followers)
	}
}
