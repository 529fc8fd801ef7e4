package twitter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	fd3 = time.Date(3024, 2, 17, 22, 0, 0, 0, time.UTC)
	fd4 = time.Date(1000, 2, 17, 8, 0, 0, 0, time.UTC)

	tweet1 = tw(1, "alyssa", "is it reasonable to talk about rivest so much?", d1)
	tweet2 = tw(2, "bbitdiddle", "rivest talk in 30 minutes #hype", d2)
	tweet3 = tw(3, "john", "A\nB B C", fd3)
	tweet4 = tw(4, "JoHn", "B Bb C\ta", fd4)
	tweet5 = tw(5, "donald", " \rA\f b  ", d2)
	tweet6 = tw(6, "george", "A;B:c,D?e.", d2)
)

func TestWrittenBy(t *testing.T) {
	tests := []struct {
		name   string
		tweets []Tweet
		author string
		want   []Tweet
	}{
		{"no tweets", nil, "john", nil},
		{"no match", []Tweet{tweet1, tweet2}, "john", nil},
		{"single match", []Tweet{tweet1, tweet2}, "alyssa", []Tweet{tweet1}},
		{"case-insensitive, order kept", []Tweet{tweet1, tweet3, tweet4}, "john", []Tweet{tweet3, tweet4}},
		{"query casing ignored", []Tweet{tweet6}, "GEORGE", []Tweet{tweet6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WrittenBy(tt.tweets, tt.author))
		})
	}
}

func TestInTimespan(t *testing.T) {
	span := func(start, end time.Time) Timespan {
		ts, err := NewTimespan(start, end)
		require.NoError(t, err)
		return ts
	}

	tests := []struct {
		name   string
		tweets []Tweet
		ts     Timespan
		want   []Tweet
	}{
		{
			name:   "both inside, order kept",
			tweets: []Tweet{tweet1, tweet2},
			ts:     span(time.Date(2016, 2, 17, 9, 0, 0, 0, time.UTC), time.Date(2016, 2, 17, 12, 0, 0, 0, time.UTC)),
			want:   []Tweet{tweet1, tweet2},
		},
		{
			name:   "zero-length window on a tweet",
			tweets: []Tweet{tweet4, tweet1, tweet3},
			ts:     span(d1, d1),
			want:   []Tweet{tweet1},
		},
		{
			name:   "just outside both bounds",
			tweets: []Tweet{tweet1, tweet2},
			ts:     span(d1.Add(time.Millisecond), d2.Add(-time.Millisecond)),
			want:   nil,
		},
		{
			name:   "just inside both bounds",
			tweets: []Tweet{tweet1, tweet2},
			ts:     span(d1.Add(-time.Millisecond), d2.Add(time.Millisecond)),
			want:   []Tweet{tweet1, tweet2},
		},
		{
			name:   "widest window",
			tweets: []Tweet{tweet4, tweet3},
			ts:     span(minTime, maxT),
			want:   []Tweet{tweet4, tweet3},
		},
		{
			name:   "no tweets",
			tweets: nil,
			ts:     span(d1, d2),
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InTimespan(tt.tweets, tt.ts))
		})
	}
}

func TestContaining(t *testing.T) {
	tests := []struct {
		name   string
		tweets []Tweet
		words  []string
		want   []Tweet
	}{
		{"single word, order kept", []Tweet{tweet1, tweet2}, []string{"talk"}, []Tweet{tweet1, tweet2}},
		{"no tweets", nil, []string{"talk"}, nil},
		{"punctuation is not a separator", []Tweet{tweet6}, []string{"A", "B", "C", "D", "E"}, nil},
		{"words at ends of text", []Tweet{tweet3, tweet1, tweet4}, []string{"A", "D"}, []Tweet{tweet3, tweet4}},
		{"long whitespace runs", []Tweet{tweet5}, []string{"a", "B"}, []Tweet{tweet5}},
		{"no words", []Tweet{tweet1}, nil, nil},
		{"partial word does not match", []Tweet{tweet2}, []string{"hyp", "minute"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Containing(tt.tweets, tt.words))
		})
	}
}
