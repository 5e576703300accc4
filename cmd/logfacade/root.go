package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/philipp01105/logfacade/config"
	"github.com/philipp01105/logfacade/logger"
)

// rootOptions holds the persistent flags.
type rootOptions struct {
	configPath string
	binding    string
	file       string
	level      string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "logfacade",
		Short:         "Inspect and exercise logfacade bindings",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to a TOML configuration file")
	flags.StringVarP(&opts.binding, "binding", "b", "", "Default binding name (overrides LOGFACADE_BINDING)")
	flags.StringVarP(&opts.file, "file", "f", "", "Output file of the STDOUT binding")
	flags.StringVar(&opts.level, "log-level", "", "Initial level of new loggers (NONE, ERROR, WARNING, INFO, DEBUG)")

	cmd.AddCommand(newBindingsCmd(opts), newEmitCmd(opts))
	return cmd
}

// loadConfig layers the config file, the environment and the flags set
// on the command line, in that order.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (config.Config, error) {
	cfg, err := config.Load(opts.configPath, &config.OSReader{})
	if err != nil {
		return config.Config{}, err
	}

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed {
			return
		}
		switch f.Name {
		case "binding":
			cfg.Binding = opts.binding
		case "file":
			cfg.OutputFile = opts.file
		case "log-level":
			cfg.Level = opts.level
		}
	})

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newProvider(cmd *cobra.Command, opts *rootOptions) (*logger.Provider, error) {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return nil, err
	}
	return logger.NewProvider(logger.WithConfig(cfg)), nil
}
