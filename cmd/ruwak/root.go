package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	adapter "github.com/ruwak-dev/ruwak/infrastructure/wazero"
	"github.com/ruwak-dev/ruwak/log"
)

type globalOptions struct {
	logLevel string
	dev      bool
	format   string
	logger   *zap.Logger
}

func newRootCmd() *cobra.Command {
	g := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "ruwak",
		Short: "Guest/host boundary marshaling for WebAssembly",
		Long: `ruwak - inspect the conversion surface used to pass arguments from a
WebAssembly guest to host functions.

List the conversion table, describe a signature's wire shape, report which
imports of a compiled guest are boundary-eligible, or run a guest export
against recording host functions.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.setup()
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&g.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	f.BoolVar(&g.dev, "dev", false, "Use development logging")
	f.StringVar(&g.format, "format", formatText, "Output format: text, json, yaml")

	cmd.AddCommand(
		newTableCmd(g),
		newSigCmd(g),
		newInspectCmd(g),
		newSchemaCmd(g),
		newTraceCmd(g),
	)
	return cmd
}

func (g *globalOptions) setup() error {
	switch g.format {
	case formatText, formatJSON, formatYAML:
	default:
		return fmt.Errorf("unknown format %q: use text, json or yaml", g.format)
	}

	level, err := log.ParseLevel(g.logLevel)
	if err != nil {
		return err
	}
	logger, err := log.New(log.WithLevel(level), log.WithDevelopment(g.dev))
	if err != nil {
		return err
	}
	g.logger = logger
	adapter.SetLogger(logger)
	return nil
}
