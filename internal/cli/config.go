package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	twitter "github.com/BardiaBoghrati/Tweet-Tweet"
)

const envPrefix = "TWEETGRAPH"

// Config keys shared by the config file, environment and flags.
const (
	keyAuthors  = "authors"
	keyKeywords = "keywords"
	keySince    = "since"
	keyUntil    = "until"
	keyTop      = "top"
)

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyAuthors, []string{})
	v.SetDefault(keyKeywords, []string{})
	v.SetDefault(keySince, "")
	v.SetDefault(keyUntil, "")
	v.SetDefault(keyTop, 10)
	return v
}

// mustBindFlag binds key to flag. A nil flag or a failed bind is a wiring
// mistake in this package, so it panics.
func mustBindFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if flag == nil {
		panic(fmt.Sprintf("cli: no flag for config key %q", key))
	}
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("cli: bind flag %q: %v", key, err))
	}
}

// loadConfigFile merges the file at path into v. The format follows the
// file extension.
func loadConfigFile(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

// analysisConfig builds a twitter.Config from the layered settings in v.
func analysisConfig(v *viper.Viper) (twitter.Config, error) {
	cfg := twitter.Config{
		Authors:  stringList(v, keyAuthors),
		Keywords: stringList(v, keyKeywords),
		Top:      v.GetInt(keyTop),
	}
	var err error
	if cfg.Since, err = parseTimeFlag(keySince, v.GetString(keySince)); err != nil {
		return twitter.Config{}, err
	}
	if cfg.Until, err = parseTimeFlag(keyUntil, v.GetString(keyUntil)); err != nil {
		return twitter.Config{}, err
	}
	return cfg, nil
}

// stringList reads a list setting. Lists from flags and config files come
// through as slices; a plain string, as set in the environment, is split on
// commas (TWEETGRAPH_AUTHORS=alyssa,ben).
func stringList(v *viper.Viper, key string) []string {
	raw, ok := v.Get(key).(string)
	if !ok {
		return v.GetStringSlice(key)
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// parseTimeFlag parses an RFC 3339 instant or a YYYY-MM-DD date (UTC).
// The empty string yields the zero time.
func parseTimeFlag(name, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q: want RFC 3339 or YYYY-MM-DD", name, value)
	}
	return t, nil
}
