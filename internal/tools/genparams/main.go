// Command genparams expands the boundary conversion table into Go source.
//
//	go run ./internal/tools/genparams --table abi/params.yaml \
//	    --params abi/params_gen.go --signature abi/signature_gen.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ruwak-dev/ruwak/internal/paramtable"
)

type options struct {
	table     string
	params    string
	signature string
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "genparams",
		Short:         "Generate conversion codecs and signature markers from params.yaml",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.table, "table", "params.yaml", "conversion table to read")
	f.StringVar(&opts.params, "params", "params_gen.go", "output file for codecs and kinds")
	f.StringVar(&opts.signature, "signature", "signature_gen.go", "output file for the Param constraint and FuncN markers")
	return cmd
}

func run(opts options) error {
	table, err := paramtable.LoadFile(opts.table)
	if err != nil {
		return err
	}

	params, err := table.RenderParams()
	if err != nil {
		return err
	}
	if err := os.WriteFile(opts.params, params, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.params, err)
	}

	sig, err := table.RenderSignature()
	if err != nil {
		return err
	}
	if err := os.WriteFile(opts.signature, sig, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.signature, err)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "genparams:", err)
		os.Exit(1)
	}
}
