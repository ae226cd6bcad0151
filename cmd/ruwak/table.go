package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tetratelabs/wazero/api"

	"github.com/ruwak-dev/ruwak/abi"
)

type tableRow struct {
	abi.Entry `yaml:",inline"`
	WireTypes []string `json:"wire_types" yaml:"wire_types"`
}

func newTableCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "List the conversion table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := abi.Entries()
			rows := make([]tableRow, len(entries))
			for i, e := range entries {
				rows[i] = tableRow{Entry: e, WireTypes: wireNames(e.Kind.WireTypes())}
			}

			return write(cmd.OutOrStdout(), g.format, rows, func(w io.Writer) error {
				fmt.Fprintln(w, "NAME\tGUEST\tWIRE\tCAST\tALIAS\tWORDS")
				for _, r := range rows {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
						r.Name, r.Guest, r.Wire, r.Cast, r.Alias, strings.Join(r.WireTypes, ","))
				}
				return nil
			})
		},
	}
}

func wireNames(types []api.ValueType) []string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = api.ValueTypeName(t)
	}
	return names
}
