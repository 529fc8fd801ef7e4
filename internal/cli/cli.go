// Package cli implements the tweetgraph command-line interface.
//
// Every command reads a tweet archive (.json, .jsonl, .yaml) and prints one
// extraction: the timespan, the mentioned users, the follows-graph, the
// influencer ranking, a filtered tweet list, or a full report.
//
// Settings for the report command come from, lowest priority first: built-in
// defaults, a config file (--config), TWEETGRAPH_* environment variables, and
// command-line flags.
package cli

import (
	"io"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CLI holds the output streams and configuration shared by all commands.
type CLI struct {
	out    io.Writer
	errOut io.Writer
	v      *viper.Viper
	logger *charmlog.Logger
}

// New returns a CLI writing results to out and logs to errOut.
func New(out, errOut io.Writer) *CLI {
	return &CLI{
		out:    out,
		errOut: errOut,
		v:      newViper(),
		logger: newLogger(errOut, charmlog.InfoLevel),
	}
}

// RootCommand builds the command tree.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:           "tweetgraph",
		Short:         "Extract mentions, follows and influencers from tweets",
		Long:          `tweetgraph reads a tweet archive and reports the time it spans, the users it mentions, who appears to follow whom, and who has the most followers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			c.logger.SetLevel(level)
			installLogger(c.logger)

			if configPath != "" {
				if err := loadConfigFile(c.v, configPath); err != nil {
					return err
				}
				c.logger.Debug("config loaded", "path", configPath)
			}
			return nil
		},
	}

	root.SetOut(c.out)
	root.SetErr(c.errOut)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (yaml, toml or json)")

	root.AddCommand(c.newTimespanCmd())
	root.AddCommand(c.newMentionsCmd())
	root.AddCommand(c.newGraphCmd())
	root.AddCommand(c.newInfluencersCmd())
	root.AddCommand(c.newFilterCmd())
	root.AddCommand(c.newReportCmd())

	return root
}
