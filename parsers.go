package twitter

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// twitterTimeLayout is the created_at layout used by Twitter's APIs.
const twitterTimeLayout = "Mon Jan 02 15:04:05 +0000 2006"

// tweetRecord is the flat archive form of a Tweet.
type tweetRecord struct {
	ID        int64  `json:"id" yaml:"id"`
	Author    string `json:"author" yaml:"author"`
	Text      string `json:"text" yaml:"text"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`
}

func (r tweetRecord) toTweet(idx int) (Tweet, error) {
	if strings.TrimSpace(r.Author) == "" {
		return Tweet{}, fmt.Errorf("%w %d: missing author", ErrInvalidRecord, idx)
	}
	ts, err := parseTimestamp(r.Timestamp)
	if err != nil {
		return Tweet{}, fmt.Errorf("%w %d: %v", ErrInvalidRecord, idx, err)
	}
	return Tweet{ID: r.ID, Author: r.Author, Text: r.Text, Timestamp: ts}, nil
}

// parseTimestamp accepts RFC 3339 or Twitter's created_at layout.
func parseTimestamp(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, fmt.Errorf("missing timestamp")
	}
	if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
		return t, nil
	}
	t, err := time.Parse(twitterTimeLayout, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad timestamp %q", v)
	}
	return t, nil
}

func recordsToTweets(records []tweetRecord) ([]Tweet, error) {
	tweets := make([]Tweet, 0, len(records))
	for i, r := range records {
		t, err := r.toTweet(i)
		if err != nil {
			return nil, err
		}
		tweets = append(tweets, t)
	}
	return tweets, nil
}

// ParseTweetsJSON parses either a JSON array of tweet records or a saved
// GraphQL timeline response (SearchTimeline or UserTweets).
func ParseTweetsJSON(body []byte) ([]Tweet, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if trimmed[0] == '[' {
		var records []tweetRecord
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("unmarshal tweet records: %w", err)
		}
		return recordsToTweets(records)
	}
	return parseTimelineResponse(trimmed)
}

// ParseTweetsJSONL parses one JSON tweet record per line. Blank lines are skipped.
func ParseTweetsJSONL(r io.Reader) ([]Tweet, error) {
	var tweets []Tweet
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for line := 0; sc.Scan(); line++ {
		raw := bytes.TrimSpace(sc.Bytes())
		if len(raw) == 0 {
			continue
		}
		var rec tweetRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("%w %d: %v", ErrInvalidRecord, line, err)
		}
		t, err := rec.toTweet(line)
		if err != nil {
			return nil, err
		}
		tweets = append(tweets, t)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read jsonl: %w", err)
	}
	return tweets, nil
}

// ParseTweetsYAML parses a YAML sequence of tweet records.
func ParseTweetsYAML(body []byte) ([]Tweet, error) {
	var records []tweetRecord
	if err := yaml.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("unmarshal yaml tweets: %w", err)
	}
	return recordsToTweets(records)
}

// --- Timeline types ---

type timelineObj struct {
	Instructions []timelineInstruction `json:"instructions"`
}

type timelineInstruction struct {
	Type    string          `json:"type"`
	Entries []timelineEntry `json:"entries"`
	Entry   *timelineEntry  `json:"entry"`
}

type timelineEntry struct {
	EntryID string          `json:"entryId"`
	Content timelineContent `json:"content"`
}

type timelineContent struct {
	EntryType   string          `json:"entryType"`
	ItemContent json.RawMessage `json:"itemContent"`
}

type tweetResult struct {
	TypeName string `json:"__typename"`
	RestID   string `json:"rest_id"`
	Core     struct {
		UserResults struct {
			Result struct {
				Legacy struct {
					ScreenName string `json:"screen_name"`
				} `json:"legacy"`
			} `json:"result"`
		} `json:"user_results"`
	} `json:"core"`
	Legacy struct {
		FullText  string `json:"full_text"`
		CreatedAt string `json:"created_at"`
	} `json:"legacy"`
}

// parseTimelineResponse reads the tweets out of a SearchTimeline or
// UserTweets GraphQL response body.
func parseTimelineResponse(body []byte) ([]Tweet, error) {
	var raw struct {
		Data struct {
			SearchByRawQuery struct {
				SearchTimeline struct {
					Timeline timelineObj `json:"timeline"`
				} `json:"search_timeline"`
			} `json:"search_by_raw_query"`
			User struct {
				Result struct {
					Timeline struct {
						Timeline timelineObj `json:"timeline"`
					} `json:"timeline"`
					TimelineV2 struct {
						Timeline timelineObj `json:"timeline"`
					} `json:"timeline_v2"`
				} `json:"result"`
			} `json:"user"`
		} `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal timeline: %w", err)
	}
	if len(raw.Errors) > 0 {
		return nil, fmt.Errorf("timeline contains API error: %s", raw.Errors[0].Message)
	}

	tl := raw.Data.SearchByRawQuery.SearchTimeline.Timeline
	if len(tl.Instructions) == 0 {
		tl = raw.Data.User.Result.Timeline.Timeline
	}
	if len(tl.Instructions) == 0 {
		tl = raw.Data.User.Result.TimelineV2.Timeline
	}
	return extractTweetsFromTimeline(tl), nil
}

func extractTweetsFromTimeline(tl timelineObj) []Tweet {
	var tweets []Tweet
	for _, instruction := range tl.Instructions {
		entries := instruction.Entries
		if instruction.Entry != nil {
			entries = append(entries, *instruction.Entry)
		}
		for _, entry := range entries {
			if entry.Content.ItemContent == nil {
				continue
			}
			var item struct {
				TypeName     string `json:"__typename"`
				TweetResults struct {
					Result tweetResult `json:"result"`
				} `json:"tweet_results"`
			}
			if err := json.Unmarshal(entry.Content.ItemContent, &item); err != nil {
				continue
			}
			if item.TypeName != "TimelineTweet" {
				continue
			}
			t, err := parseTweetResult(item.TweetResults.Result)
			if err != nil {
				slog.Debug("skip tweet parse error", slog.String("entry", entry.EntryID), slog.Any("error", err))
				continue
			}
			tweets = append(tweets, t)
		}
	}
	return tweets
}

func parseTweetResult(r tweetResult) (Tweet, error) {
	if r.RestID == "" {
		return Tweet{}, fmt.Errorf("empty tweet rest_id")
	}
	id, err := strconv.ParseInt(r.RestID, 10, 64)
	if err != nil {
		return Tweet{}, fmt.Errorf("tweet rest_id %q: %w", r.RestID, err)
	}
	author := r.Core.UserResults.Result.Legacy.ScreenName
	if author == "" {
		return Tweet{}, fmt.Errorf("tweet %s has no author screen_name", r.RestID)
	}
	createdAt, err := time.Parse(twitterTimeLayout, r.Legacy.CreatedAt)
	if err != nil {
		return Tweet{}, fmt.Errorf("tweet %s created_at: %w", r.RestID, err)
	}
	return Tweet{
		ID:        id,
		Author:    author,
		Text:      r.Legacy.FullText,
		Timestamp: createdAt,
	}, nil
}
