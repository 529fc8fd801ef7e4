package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	twitter "github.com/BardiaBoghrati/Tweet-Tweet"
	"github.com/BardiaBoghrati/Tweet-Tweet/render"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatDOT  = "dot"
	formatSVG  = "svg"
)

// graphOpts holds the flags of the graph command.
type graphOpts struct {
	format  string // output format: text, json, dot, svg
	output  string // output file; stdout when empty
	counts  bool   // show follower counts in DOT/SVG labels
	rankDir string // Graphviz rankdir
}

func (c *CLI) newGraphCmd() *cobra.Command {
	opts := graphOpts{format: formatText, rankDir: "LR"}
	cmd := &cobra.Command{
		Use:   "graph [archive]",
		Short: "Print or render the follows-graph inferred from @-mentions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateGraphFormat(opts.format); err != nil {
				return err
			}
			tweets, err := c.loadArchive(args[0])
			if err != nil {
				return err
			}
			g := twitter.GuessFollowsGraph(tweets)

			data, err := c.encodeGraph(cmd, g, opts)
			if err != nil {
				return err
			}
			if opts.output == "" {
				_, err = c.out.Write(data)
				return err
			}
			if err := os.WriteFile(opts.output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", opts.output, err)
			}
			c.logger.Info("graph written", "path", opts.output, "users", g.Len())
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text, json, dot, svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&opts.counts, "counts", false, "show follower counts in node labels (dot, svg)")
	cmd.Flags().StringVar(&opts.rankDir, "rankdir", opts.rankDir, "Graphviz rank direction: LR, TB, RL, BT")
	return cmd
}

var validGraphFormats = map[string]bool{formatText: true, formatJSON: true, formatDOT: true, formatSVG: true}

func validateGraphFormat(f string) error {
	if !validGraphFormats[f] {
		return fmt.Errorf("invalid format: %s (must be 'text', 'json', 'dot', or 'svg'): %w", f, twitter.ErrUnsupportedFormat)
	}
	return nil
}

func (c *CLI) encodeGraph(cmd *cobra.Command, g twitter.FollowsGraph, opts graphOpts) ([]byte, error) {
	switch opts.format {
	case formatJSON:
		var buf bytes.Buffer
		if err := writeJSON(&buf, graphJSON(g)); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case formatDOT:
		return []byte(render.ToDOT(g, render.Options{Counts: opts.counts, RankDir: opts.rankDir})), nil
	case formatSVG:
		dot := render.ToDOT(g, render.Options{Counts: opts.counts, RankDir: opts.rankDir})
		return render.RenderSVG(cmd.Context(), dot)
	default:
		var buf bytes.Buffer
		printGraph(&buf, g)
		return buf.Bytes(), nil
	}
}
