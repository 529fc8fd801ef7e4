package twitter

import "errors"

var (
	// ErrNoTweets is returned when an operation needs at least one tweet.
	ErrNoTweets = errors.New("no tweets")

	// ErrInvalidTimespan is returned when an interval starts after it ends.
	ErrInvalidTimespan = errors.New("invalid timespan")

	// ErrInvalidRecord is returned for archive records that cannot become a Tweet.
	ErrInvalidRecord = errors.New("invalid tweet record")

	// ErrUnsupportedFormat is returned for unknown archive extensions.
	ErrUnsupportedFormat = errors.New("unsupported format")
)
