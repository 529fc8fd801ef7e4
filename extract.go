package twitter

import (
	"regexp"
	"strings"
)

// mentionRe matches a whole run that is exactly one "@" followed by
// username characters. Runs are produced by splitMentionRuns.
var mentionRe = regexp.MustCompile(`^@([a-z0-9_]+)$`)

// GetTimespan returns the minimal interval containing the timestamp of every
// tweet. It returns ErrNoTweets for an empty slice.
func GetTimespan(tweets []Tweet) (Timespan, error) {
	if len(tweets) == 0 {
		return Timespan{}, ErrNoTweets
	}
	ts := Timespan{Start: tweets[0].Timestamp, End: tweets[0].Timestamp}
	for _, t := range tweets[1:] {
		if t.Timestamp.Before(ts.Start) {
			ts.Start = t.Timestamp
		}
		if t.Timestamp.After(ts.End) {
			ts.End = t.Timestamp
		}
	}
	return ts, nil
}

// MentionedUsers returns the usernames mentioned in the text of tweets.
//
// A mention is "@" followed by username characters (letters, digits, "_")
// that is neither preceded nor followed by a username character, so an
// email address like bitdiddle@mit.edu does not mention "mit". Mentions are
// returned lower-cased, each username at most once.
func MentionedUsers(tweets []Tweet) UsernameSet {
	mentions := make(UsernameSet)
	for _, t := range tweets {
		for _, name := range extractMentions(t.Text) {
			mentions.Add(name)
		}
	}
	return mentions
}

// extractMentions returns the mentions found in a single text, in order of
// appearance, duplicates included.
func extractMentions(text string) []string {
	var result []string
	for _, run := range splitMentionRuns(strings.ToLower(text)) {
		if m := mentionRe.FindStringSubmatch(run); m != nil {
			result = append(result, m[1])
		}
	}
	return result
}

// splitMentionRuns splits lower-cased text into maximal runs of username
// characters and "@". Every other rune separates runs.
func splitMentionRuns(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !isUsernameRune(r) && r != '@'
	})
}

func isUsernameRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_'
}
