package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ruwak-dev/ruwak/internal/paramtable"
)

func newSchemaCmd(_ *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the conversion table file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := paramtable.Schema()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(schema))
			return nil
		},
	}
}
