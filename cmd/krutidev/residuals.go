package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var (
	residualMapPaths []string
	strict           bool
)

var residualsCmd = &cobra.Command{
	Use:   "residuals [file]",
	Short: "Report residual code points without emitting converted text",
	Long: `Convert the input and print only the residual report: every code
point of the converted text that the substitution rules do not account
for, with its count and the offset of its first occurrence. This is the
triage step for growing a supplemental mapping file over a corpus.

Examples:

  # what is left unconverted in a legacy corpus?
  krutidev residuals corpus.txt

  # fail a pipeline on unconvertible input
  krutidev residuals --strict corpus.txt
`,
	Args: cobra.MaximumNArgs(1),
	RunE: runResiduals,
}

func init() {
	residualsCmd.Flags().StringArrayVarP(&residualMapPaths, "map", "m", nil, "supplemental mapping file (YAML, repeatable)")
	residualsCmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when residuals exist")
}

func runResiduals(cmd *cobra.Command, args []string) error {
	conv, err := newConverter(residualMapPaths, "devanagari")
	if err != nil {
		return err
	}
	in, err := openInput(args)
	if err != nil {
		return err
	}
	defer in.Close()
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	result := conv.Convert(string(data))
	fmt.Print(result.ResidualReport())
	if strict && !result.Clean() {
		return fmt.Errorf("input leaves %d residual code points", len(result.Residuals))
	}
	return nil
}
