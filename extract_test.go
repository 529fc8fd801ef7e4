package twitter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	d1 = time.Date(2016, 2, 17, 10, 0, 0, 0, time.UTC)
	d2 = time.Date(2016, 2, 17, 11, 0, 0, 0, time.UTC)
	d3 = time.Date(1939, 9, 1, 12, 0, 0, 0, time.UTC)
	d4 = time.Date(1945, 9, 1, 12, 0, 0, 0, time.UTC)
	d5 = time.Date(1776, 7, 1, 12, 0, 0, 0, time.UTC)

	epoch   = time.Unix(0, 0).UTC()
	minTime = time.Time{}
	maxT    = time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC)
)

func tw(id int64, author, text string, ts time.Time) Tweet {
	return Tweet{ID: id, Author: author, Text: text, Timestamp: ts}
}

func TestGetTimespan(t *testing.T) {
	tests := []struct {
		name      string
		tweets    []Tweet
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "two tweets",
			tweets:    []Tweet{tw(1, "alyssa", "talk about rivest", d1), tw(2, "bbitdiddle", "rivest talk", d2)},
			wantStart: d1,
			wantEnd:   d2,
		},
		{
			name:      "across epoch, extremes in the middle",
			tweets:    []Tweet{tw(7, "me", "", d3), tw(12, "me", "x", epoch), tw(2, "me", "x", d2), tw(8, "me", "x", d4)},
			wantStart: d3,
			wantEnd:   d2,
		},
		{
			name:      "latest first",
			tweets:    []Tweet{tw(1, "me", "x", d3), tw(2, "me", "x", d4), tw(3, "me", "x", d5)},
			wantStart: d5,
			wantEnd:   d4,
		},
		{
			name:      "widest possible",
			tweets:    []Tweet{tw(1, "me", "x", d1), tw(2, "me", "x", minTime), tw(3, "me", "x", maxT)},
			wantStart: minTime,
			wantEnd:   maxT,
		},
		{
			name: "sub-second differences",
			tweets: []Tweet{
				tw(4, "me", "x", d1.Add(10*time.Millisecond)),
				tw(6, "me", "x", d1.Add(20*time.Millisecond)),
				tw(3, "me", "x", d1.Add(5*time.Millisecond)),
				tw(5, "me", "x", d1.Add(15*time.Millisecond)),
			},
			wantStart: d1.Add(5 * time.Millisecond),
			wantEnd:   d1.Add(20 * time.Millisecond),
		},
		{
			name:      "single tweet",
			tweets:    []Tweet{tw(12, "me", "hello world!", epoch)},
			wantStart: epoch,
			wantEnd:   epoch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := GetTimespan(tt.tweets)
			require.NoError(t, err)
			assert.True(t, tt.wantStart.Equal(ts.Start), "start = %s, want %s", ts.Start, tt.wantStart)
			assert.True(t, tt.wantEnd.Equal(ts.End), "end = %s, want %s", ts.End, tt.wantEnd)
			assert.False(t, ts.Start.After(ts.End))
		})
	}
}

func TestGetTimespan_NoTweets(t *testing.T) {
	_, err := GetTimespan(nil)
	require.ErrorIs(t, err, ErrNoTweets)
}

func TestGetTimespan_DoesNotModifyInput(t *testing.T) {
	tweets := []Tweet{tw(2, "b", "x", d2), tw(1, "a", "y", d1)}
	orig := append([]Tweet(nil), tweets...)

	_, err := GetTimespan(tweets)
	require.NoError(t, err)
	assert.Equal(t, orig, tweets)
}

func TestMentionedUsers(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"no mention", "is it reasonable to talk about rivest so much?", nil},
		{"no user mentions", "no user mentions", nil},
		{"empty text", "", nil},
		{"email address", "bitdiddle@mit.edu", nil},
		{"case variants dedup", "@A @a", []string{"a"}},
		{"start of text", "@alice said hi", []string{"alice"}},
		{"punctuation around", "hey (@alice), and @Bob!", []string{"alice", "bob"}},
		{"over multiple lines", "first line\n@carol\tand @dave", []string{"carol", "dave"}},
		{"bare at sign", "meet me @ noon", nil},
		{"double at sign", "@@alice", nil},
		{"preceded by username char", "x@alice", nil},
		{"glued mentions", "@alice@bob", nil},
		{"glued runs split by hash", "@A_b4@4AB_#4ab@_A4b", nil},
		{"dot separated runs", " @A.B4@A_B4@@B_A4 ", []string{"a"}},
		{"percent separated runs", "C:@A_B4%n@A_B4%n@a_b4@.A4B.", []string{"a_b4"}},
		{"digits and underscore", "cc @_x_9 please", []string{"_x_9"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MentionedUsers([]Tweet{tw(1, "me", tt.text, d1)})
			want := NewUsernameSet(tt.want...)
			assert.True(t, want.Equal(got), "MentionedUsers(%q) = %v, want %v", tt.text, got.Names(), tt.want)
		})
	}
}

func TestMentionedUsers_AcrossTweets(t *testing.T) {
	tweets := []Tweet{
		tw(1, "me", "talking to @Alice", d1),
		tw(2, "you", "@ALICE and @bob", d2),
		tw(3, "them", "nothing here", d3),
	}

	got := MentionedUsers(tweets)
	assert.Equal(t, 2, got.Len())
	assert.True(t, got.Contains("alice"))
	assert.True(t, got.Contains("BOB"))
	assert.Equal(t, []string{"alice", "bob"}, got.Names())
}

func TestMentionedUsers_NoTweets(t *testing.T) {
	assert.Equal(t, 0, MentionedUsers(nil).Len())
}
