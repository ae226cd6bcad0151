package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ruwak-dev/ruwak/abi"
	"github.com/ruwak-dev/ruwak/host"
)

func newInspectCmd(g *globalOptions) *cobra.Command {
	var (
		module   string
		maxArity int
		eligible bool
	)

	cmd := &cobra.Command{
		Use:   "inspect module.wasm",
		Short: "Report which imports of a guest module are boundary-eligible",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wasm, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			opts := []host.InspectOption{host.WithMaxArity(maxArity)}
			if module != "" {
				opts = append(opts, host.WithImportModule(module))
			}
			report, err := host.Inspect(cmd.Context(), wasm, opts...)
			if err != nil {
				return err
			}
			if eligible {
				report.Imports = report.Eligible()
			}

			return write(cmd.OutOrStdout(), g.format, report, func(w io.Writer) error {
				fmt.Fprintln(w, "IMPORT\tPARAMS\tRESULTS\tELIGIBLE")
				for _, imp := range report.Imports {
					status := "yes"
					if !imp.Eligible {
						status = "no: " + imp.Reason
					}
					fmt.Fprintf(w, "%s.%s\t(%s)\t(%s)\t%s\n", imp.Module, imp.Name,
						strings.Join(imp.Params, ", "), strings.Join(imp.Results, ", "), status)
				}
				fmt.Fprintf(w, "exports:\t%s\n", strings.Join(report.Exports, ", "))
				return nil
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&module, "module", "", "Only report imports from this module")
	f.IntVar(&maxArity, "max-arity", abi.MaxArity, "Largest eligible parameter count")
	f.BoolVar(&eligible, "eligible", false, "Only list eligible imports")
	return cmd
}
