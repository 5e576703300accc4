package main

import (
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/philipp01105/logfacade/backend/streamlog"
	"github.com/philipp01105/logfacade/core"
	"github.com/philipp01105/logfacade/handler"
)

type emitOptions struct {
	level string
	name  string
	stats bool
}

func newEmitCmd(root *rootOptions) *cobra.Command {
	opts := &emitOptions{}

	cmd := &cobra.Command{
		Use:   "emit MESSAGE [ARGS...]",
		Short: "Log one message through the default binding",
		Long: `Log one message through the default binding.

MESSAGE may contain {0}-style placeholders which are replaced by ARGS.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, ok := core.ParseLevel(opts.level)
			if !ok || level == core.LevelNone {
				return fmt.Errorf("invalid level %q", opts.level)
			}

			p, err := newProvider(cmd, root)
			if err != nil {
				return err
			}
			defer p.Close()

			params := make([]any, len(args)-1)
			for i, a := range args[1:] {
				params[i] = a
			}
			core.Log(p.Logger(opts.name), level, args[0], params...)

			if opts.stats {
				return printStats(cmd, p.Factory(streamlog.Name))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.level, "level", "l", core.LevelInfo.String(), "Level of the message")
	cmd.Flags().StringVarP(&opts.name, "logger", "n", "logfacade", "Logger name")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "Print output target counters of the STDOUT binding")
	return cmd
}

// printStats gathers the STDOUT binding counters through a Prometheus
// registry and prints them as name value pairs.
func printStats(cmd *cobra.Command, f any) error {
	sp, ok := f.(handler.StatsProvider)
	if !ok {
		return nil
	}

	reg := prometheus.NewRegistry()
	if err := reg.Register(handler.NewStatsCollector(streamlog.Name, sp)); err != nil {
		return err
	}
	families, err := reg.Gather()
	if err != nil {
		return err
	}

	out := cmd.ErrOrStderr()
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			fmt.Fprintf(out, "%s %s\n", strings.TrimPrefix(mf.GetName(), "logfacade_"), formatValue(m.GetCounter().GetValue()))
		}
	}
	return nil
}

func formatValue(v float64) string {
	return fmt.Sprintf("%.0f", v)
}
