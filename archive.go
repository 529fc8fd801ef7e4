package twitter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ReadArchive loads the tweets stored at path. The format is chosen by
// extension: .json, .jsonl/.ndjson, or .yaml/.yml.
func ReadArchive(path string) ([]Tweet, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json", ".jsonl", ".ndjson", ".yaml", ".yml":
	default:
		return nil, fmt.Errorf("%w: archive %s", ErrUnsupportedFormat, path)
	}

	var (
		tweets []Tweet
		err    error
	)
	switch ext {
	case ".jsonl", ".ndjson":
		f, openErr := os.Open(path)
		if openErr != nil {
			return nil, fmt.Errorf("open archive: %w", openErr)
		}
		defer f.Close()
		tweets, err = ParseTweetsJSONL(f)
	default:
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil, fmt.Errorf("read archive: %w", readErr)
		}
		if ext == ".json" {
			tweets, err = ParseTweetsJSON(data)
		} else {
			tweets, err = ParseTweetsYAML(data)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("archive %s: %w", path, err)
	}

	slog.Debug("archive loaded", slog.String("path", path), slog.Int("tweets", len(tweets)))
	return tweets, nil
}
