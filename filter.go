package twitter

import "strings"

// WrittenBy returns the tweets authored by username, in their original order.
// Author comparison is case-insensitive.
func WrittenBy(tweets []Tweet, username string) []Tweet {
	var result []Tweet
	for _, t := range tweets {
		if EqualsUsername(t.Author, username) {
			result = append(result, t)
		}
	}
	return result
}

// InTimespan returns the tweets sent within ts (bounds inclusive), in their
// original order.
func InTimespan(tweets []Tweet, ts Timespan) []Tweet {
	var result []Tweet
	for _, t := range tweets {
		if ts.Contains(t.Timestamp) {
			result = append(result, t)
		}
	}
	return result
}

// Containing returns the tweets whose text includes at least one of words,
// in their original order. A word in a tweet is a maximal run of
// non-whitespace characters; matching ignores case. "talk" matches
// "TALK now" but not "talk." or "talking".
func Containing(tweets []Tweet, words []string) []Tweet {
	if len(words) == 0 {
		return nil
	}
	wanted := make(map[string]struct{}, len(words))
	for _, w := range words {
		wanted[strings.ToLower(w)] = struct{}{}
	}

	var result []Tweet
	for _, t := range tweets {
		for _, tok := range strings.Fields(t.Text) {
			if _, ok := wanted[strings.ToLower(tok)]; ok {
				result = append(result, t)
				break
			}
		}
	}
	return result
}
