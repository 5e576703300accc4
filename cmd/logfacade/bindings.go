package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipp01105/logfacade/logger"
)

func newBindingsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "bindings",
		Short: "List registered bindings and the resolved default",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := newProvider(cmd, opts)
			if err != nil {
				return err
			}
			defer p.Close()

			out := cmd.OutOrStdout()
			def := p.DefaultName()
			for _, name := range p.Registry().Names() {
				marker := " "
				if name == def {
					marker = "*"
				}
				kind := "external"
				if logger.IsBuiltIn(name) {
					kind = "built-in"
				}
				fmt.Fprintf(out, "%s %-8s %s\n", marker, name, kind)
			}
			if p.Registry().Lookup(def) == nil {
				fmt.Fprintf(out, "* %-8s deferred (not registered)\n", def)
			}
			return nil
		},
	}
}
