package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	twitter "github.com/BardiaBoghrati/Tweet-Tweet"
)

// jsonFlag adds the shared --json flag to cmd.
func jsonFlag(cmd *cobra.Command, target *bool) {
	cmd.Flags().BoolVar(target, "json", false, "print JSON instead of text")
}

func (c *CLI) loadArchive(path string) ([]twitter.Tweet, error) {
	tweets, err := twitter.ReadArchive(path)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("tweets loaded", "path", path, "count", len(tweets))
	return tweets, nil
}

func (c *CLI) newTimespanCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "timespan [archive]",
		Short: "Print the time interval spanned by the tweets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tweets, err := c.loadArchive(args[0])
			if err != nil {
				return err
			}
			ts, err := twitter.GetTimespan(tweets)
			if err != nil {
				return fmt.Errorf("timespan of %s: %w", args[0], err)
			}
			if asJSON {
				return writeJSON(c.out, map[string]any{"start": ts.Start.UTC(), "end": ts.End.UTC()})
			}
			printTimespan(c.out, ts)
			return nil
		},
	}
	jsonFlag(cmd, &asJSON)
	return cmd
}

func (c *CLI) newMentionsCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "mentions [archive]",
		Short: "Print the usernames mentioned in the tweets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tweets, err := c.loadArchive(args[0])
			if err != nil {
				return err
			}
			mentions := twitter.MentionedUsers(tweets)
			if asJSON {
				return writeJSON(c.out, mentions.Names())
			}
			printMentions(c.out, mentions)
			return nil
		},
	}
	jsonFlag(cmd, &asJSON)
	return cmd
}

func (c *CLI) newInfluencersCmd() *cobra.Command {
	var (
		asJSON bool
		top    int
	)
	cmd := &cobra.Command{
		Use:   "influencers [archive]",
		Short: "Rank users by inferred follower count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tweets, err := c.loadArchive(args[0])
			if err != nil {
				return err
			}
			ranking := twitter.RankInfluencers(twitter.GuessFollowsGraph(tweets))
			if top > 0 && len(ranking) > top {
				ranking = ranking[:top]
			}
			if asJSON {
				return writeJSON(c.out, ranking)
			}
			printInfluencers(c.out, ranking)
			return nil
		},
	}
	jsonFlag(cmd, &asJSON)
	cmd.Flags().IntVarP(&top, "top", "n", 0, "show only the first n users (0 = all)")
	return cmd
}

// filterOpts holds the flags of the filter command.
type filterOpts struct {
	author string
	words  []string
	since  string
	until  string
}

// config maps the filter flags onto a twitter.Config so filter and report
// select tweets the same way.
func (o filterOpts) config() (twitter.Config, error) {
	var cfg twitter.Config
	if o.author != "" {
		cfg.Authors = []string{o.author}
	}
	cfg.Keywords = o.words
	var err error
	if cfg.Since, err = parseTimeFlag("since", o.since); err != nil {
		return twitter.Config{}, err
	}
	if cfg.Until, err = parseTimeFlag("until", o.until); err != nil {
		return twitter.Config{}, err
	}
	return cfg, nil
}

func (c *CLI) newFilterCmd() *cobra.Command {
	var opts filterOpts
	cmd := &cobra.Command{
		Use:   "filter [archive]",
		Short: "Print the tweets matching an author, time window and keywords as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			tweets, err := c.loadArchive(args[0])
			if err != nil {
				return err
			}
			selected, err := cfg.Select(tweets)
			if err != nil {
				return err
			}
			c.logger.Debug("filter applied", "input", len(tweets), "selected", len(selected))
			return writeJSON(c.out, utcTweets(selected))
		},
	}
	cmd.Flags().StringVar(&opts.author, "author", "", "keep tweets written by this user")
	cmd.Flags().StringSliceVar(&opts.words, "word", nil, "keep tweets containing any of these words (repeatable)")
	cmd.Flags().StringVar(&opts.since, "since", "", "keep tweets at or after this time (RFC 3339 or YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.until, "until", "", "keep tweets at or before this time (RFC 3339 or YYYY-MM-DD)")
	return cmd
}

func (c *CLI) newReportCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "report [archive]",
		Short: "Print every extraction over the tweets selected by the config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tweets, err := c.loadArchive(args[0])
			if err != nil {
				return err
			}
			cfg, err := analysisConfig(c.v)
			if err != nil {
				return err
			}
			report, err := twitter.Analyze(tweets, cfg)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(c.out, reportJSON(report))
			}
			printReport(c, report)
			return nil
		},
	}
	jsonFlag(cmd, &asJSON)

	f := cmd.Flags()
	f.StringSlice(keyAuthors, nil, "only analyse tweets by these users")
	f.StringSlice(keyKeywords, nil, "only analyse tweets containing any of these words")
	f.String(keySince, "", "only analyse tweets at or after this time")
	f.String(keyUntil, "", "only analyse tweets at or before this time")
	f.IntP(keyTop, "n", 10, "number of influencers to show (negative = all)")
	for _, key := range []string{keyAuthors, keyKeywords, keySince, keyUntil, keyTop} {
		mustBindFlag(c.v, key, f.Lookup(key))
	}
	return cmd
}

func printReport(c *CLI, r *twitter.Report) {
	headerColor.Fprintf(c.out, "Tweets analysed: %d\n\n", r.Tweets)
	if r.Timespan != nil {
		printTimespan(c.out, *r.Timespan)
		fmt.Fprintln(c.out)
	}
	printMentions(c.out, r.Mentions)
	fmt.Fprintln(c.out)
	printGraph(c.out, r.Graph)
	fmt.Fprintln(c.out)
	printInfluencers(c.out, r.Influencers)
}

func reportJSON(r *twitter.Report) map[string]any {
	out := map[string]any{
		"tweets":      r.Tweets,
		"mentions":    r.Mentions.Names(),
		"graph":       graphJSON(r.Graph),
		"influencers": r.Influencers,
	}
	if r.Timespan != nil {
		out["timespan"] = map[string]any{"start": r.Timespan.Start.UTC(), "end": r.Timespan.End.UTC()}
	}
	return out
}
