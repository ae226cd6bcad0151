package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ruwak-dev/ruwak/abi"
	"github.com/ruwak-dev/ruwak/host"
	"github.com/ruwak-dev/ruwak/host/registry"
)

func newTraceCmd(g *globalOptions) *cobra.Command {
	var (
		imports []string
		exports []string
		module  string
		noWASI  bool
	)

	cmd := &cobra.Command{
		Use:   "trace module.wasm",
		Short: "Run guest exports against recording host functions",
		Long: `Run guest exports against host functions that record their arguments.

Each --import declares one host function by name and parameter list:

  ruwak trace guest.wasm --import 'log=&str,u32' --export run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			wasm, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			var rec host.Recorder
			reg := registry.NewRegistry()
			for _, spec := range imports {
				name, sig, err := parseImport(spec)
				if err != nil {
					return err
				}
				if err := reg.Register(rec.Import(name, sig)); err != nil {
					return err
				}
			}

			exec, err := host.NewExecutor(ctx,
				host.WithRegistry(reg),
				host.WithLogger(g.logger),
				host.WithModuleName(module),
				host.WithTrace(true),
				host.WithWASI(!noWASI),
			)
			if err != nil {
				return err
			}
			defer exec.Close(ctx)

			guest, err := exec.LoadGuest(ctx, wasm, "guest")
			if err != nil {
				return err
			}
			for _, export := range exports {
				if err := guest.Call(ctx, export); err != nil {
					return fmt.Errorf("%s: %w", export, err)
				}
			}

			calls := rec.Calls()
			return write(cmd.OutOrStdout(), g.format, calls, func(w io.Writer) error {
				for _, c := range calls {
					args := make([]string, len(c.Args))
					for i, a := range c.Args {
						args[i] = fmt.Sprintf("%#v", a)
					}
					fmt.Fprintf(w, "%s\t(%s)\n", c.Function, strings.Join(args, ", "))
				}
				return nil
			})
		},
	}

	f := cmd.Flags()
	f.StringArrayVar(&imports, "import", nil, "Host function name=type,type (repeatable)")
	f.StringSliceVar(&exports, "export", nil, "Guest export to call, in order (repeatable)")
	f.StringVar(&module, "module", "env", "Host module name the guest imports from")
	f.BoolVar(&noWASI, "no-wasi", false, "Do not provide wasi_snapshot_preview1")
	return cmd
}

// parseImport parses "name=type,type".
func parseImport(spec string) (string, abi.Signature, error) {
	name, params, ok := strings.Cut(spec, "=")
	if !ok || name == "" || params == "" {
		return "", abi.Signature{}, fmt.Errorf("invalid import %q (expected name=type,type)", spec)
	}
	sig, err := parseSignature(strings.Split(params, ","))
	if err != nil {
		return "", abi.Signature{}, fmt.Errorf("import %s: %w", name, err)
	}
	return name, sig, nil
}
