package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/godilite/survey-dashboard/internal/app"
	"github.com/godilite/survey-dashboard/internal/charts"
	"github.com/godilite/survey-dashboard/internal/config"
	"github.com/godilite/survey-dashboard/internal/dataset"
	"github.com/godilite/survey-dashboard/internal/render"
	"github.com/godilite/survey-dashboard/internal/service"
	"github.com/godilite/survey-dashboard/internal/tooltip"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// cli carries what every subcommand shares.
type cli struct {
	cfg     *config.Config
	data    *dataset.Dataset
	logger  *zap.Logger
	verbose bool
	asJSON  bool
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	c := &cli{cfg: cfg, data: dataset.Builtin(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "dashctl",
		Short:         "Inspect the workshop satisfaction survey from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if c.verbose {
				logger, err := config.NewLogger(c.cfg)
				if err != nil {
					return fmt.Errorf("logger init failed: %w", err)
				}
				c.logger = logger
			}
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log to stderr")
	root.PersistentFlags().BoolVar(&c.asJSON, "json", false, "print JSON instead of panels")
	root.PersistentFlags().StringVar(&c.cfg.Locale, "locale", cfg.Locale, "unit words for hover panels (es, en)")

	root.AddCommand(
		c.describeCmd(),
		c.hoverCmd(),
		c.tableCmd(),
		c.meansCmd(),
		c.npsCmd(),
		c.feedbackCmd(),
		c.summaryCmd(),
	)
	return root
}

func (c *cli) printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printDescription writes nothing for an event that does not render.
func (c *cli) printDescription(w io.Writer, desc tooltip.FormattedDescription, ok bool) error {
	if !ok {
		c.logger.Debug("event not rendered")
		return nil
	}
	if c.asJSON {
		return c.printJSON(w, desc)
	}
	_, err := fmt.Fprintln(w, render.Panel(desc))
	return err
}

func (c *cli) withStats(ctx context.Context, fn func(*service.StatsService) error) error {
	stats, err := app.OpenStats(ctx, c.cfg, c.data, c.logger)
	if err != nil {
		return err
	}
	defer stats.Close()
	return fn(stats.Service)
}

func (c *cli) describeCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Format a hover event read from a YAML or JSON file",
		Example: `  dashctl describe -f event.yaml
  cat event.json | dashctl describe -f -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var r io.Reader = cmd.InOrStdin()
			if file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			var raw map[string]any
			if err := yaml.NewDecoder(r).Decode(&raw); err != nil && err != io.EOF {
				return fmt.Errorf("decode event: %w", err)
			}

			desc, ok := app.NewDispatcher(c.cfg, c.logger).Describe(tooltip.EventFromMap(raw))
			return c.printDescription(cmd.OutOrStdout(), desc, ok)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "event file, - for stdin")
	return cmd
}

func (c *cli) hoverCmd() *cobra.Command {
	kinds := make([]string, 0, len(charts.Kinds()))
	for _, k := range charts.Kinds() {
		kinds = append(kinds, string(k))
	}
	return &cobra.Command{
		Use:       "hover <" + strings.Join(kinds, "|") + "> <index>",
		Short:     "Show the panel a chart displays while a category is hovered",
		Args:      cobra.ExactArgs(2),
		ValidArgs: kinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			chart, err := charts.ByKind(c.data, charts.Kind(strings.ToLower(args[0])))
			if err != nil {
				return err
			}
			idx, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid index %q: %w", args[1], err)
			}
			if idx < 0 || idx >= chart.Len() {
				return fmt.Errorf("index %d out of range [0,%d)", idx, chart.Len())
			}

			desc, ok := app.NewDispatcher(c.cfg, c.logger).Describe(chart.EventAt(idx))
			return c.printDescription(cmd.OutOrStdout(), desc, ok)
		},
	}
}

func (c *cli) tableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table <question-id>",
		Short: "Print the frequency table of a question for both cohorts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid question id %q: %w", args[0], err)
			}
			return c.withStats(cmd.Context(), func(s *service.StatsService) error {
				ct, err := s.GetCrossTab(cmd.Context(), id)
				if err != nil {
					return err
				}
				if c.asJSON {
					return c.printJSON(cmd.OutOrStdout(), ct)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), render.CrossTab(ct))
				return err
			})
		},
	}
}

func (c *cli) meansCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "means",
		Short: "Print the per-cohort mean of every question",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withStats(cmd.Context(), func(s *service.StatsService) error {
				means, err := s.GetQuestionMeans(cmd.Context())
				if err != nil {
					return err
				}
				if c.asJSON {
					return c.printJSON(cmd.OutOrStdout(), means)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), render.QuestionMeans(means))
				return err
			})
		},
	}
}

func (c *cli) npsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nps",
		Short: "Print the net promoter split of the 1-10 recommendation question",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withStats(cmd.Context(), func(s *service.StatsService) error {
				nps, err := s.GetNetPromoter(cmd.Context())
				if err != nil {
					return err
				}
				if c.asJSON {
					return c.printJSON(cmd.OutOrStdout(), nps)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), render.NetPromoter(nps, c.data.Segments()))
				return err
			})
		},
	}
}

func (c *cli) feedbackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "feedback <key>",
		Short: "Print the open answers of a question (q8, q9)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			corpus, ok := c.data.FeedbackFor(strings.ToLower(args[0]))
			if !ok {
				keys := make([]string, 0, len(c.data.Feedback()))
				for _, f := range c.data.Feedback() {
					keys = append(keys, f.Key)
				}
				return fmt.Errorf("unknown feedback key %q (have %s)", args[0], strings.Join(keys, ", "))
			}
			if c.asJSON {
				return c.printJSON(cmd.OutOrStdout(), corpus)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), render.Feedback(corpus))
			return err
		},
	}
}

func (c *cli) summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the header KPIs and the qualitative analysis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withStats(cmd.Context(), func(s *service.StatsService) error {
				summary, err := s.GetSummary(cmd.Context())
				if err != nil {
					return err
				}
				if c.asJSON {
					return c.printJSON(cmd.OutOrStdout(), summary)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), render.Summary(summary, c.data.Insights()))
				return err
			})
		},
	}
}
