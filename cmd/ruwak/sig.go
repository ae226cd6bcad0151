package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ruwak-dev/ruwak/abi"
)

type sigReport struct {
	Signature string   `json:"signature" yaml:"signature"`
	Params    []string `json:"params" yaml:"params"`
	Wire      []string `json:"wire" yaml:"wire"`
	Words     int      `json:"words" yaml:"words"`
}

func newSigCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sig type...",
		Short: "Describe the wire shape of a parameter list",
		Long: `Describe the wire shape of a boundary signature.

Types may be Go spellings (uint8, ConstPtr[int32], string, []byte) or short
aliases (u8, "*const i32", "&str"):

  ruwak sig u8 '&str' '*mut u64'`,
		Args: cobra.RangeArgs(1, abi.MaxArity),
		RunE: func(cmd *cobra.Command, args []string) error {
			sig, err := parseSignature(args)
			if err != nil {
				return err
			}

			report := sigReport{
				Signature: sig.String(),
				Wire:      wireNames(sig.WireTypes()),
				Words:     sig.FlatCount(),
			}
			for _, k := range sig.Params() {
				report.Params = append(report.Params, k.String())
			}

			return write(cmd.OutOrStdout(), g.format, report, func(w io.Writer) error {
				fmt.Fprintf(w, "signature:\t%s\n", report.Signature)
				fmt.Fprintf(w, "wire:\t(%s)\n", strings.Join(report.Wire, ", "))
				fmt.Fprintf(w, "words:\t%d\n", report.Words)
				return nil
			})
		},
	}
}

func parseSignature(specs []string) (abi.Signature, error) {
	kinds := make([]abi.Kind, len(specs))
	for i, s := range specs {
		k, err := abi.ParseKind(s)
		if err != nil {
			return abi.Signature{}, fmt.Errorf("parameter %d: %w", i, err)
		}
		kinds[i] = k
	}
	return abi.NewSignature(kinds...)
}
