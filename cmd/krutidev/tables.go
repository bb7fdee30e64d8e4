package main

import (
	"fmt"

	"github.com/indictext/krutidev"
	"github.com/spf13/cobra"
)

var (
	tableMapPaths []string
	auditOnly     bool
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Print the effective substitution tables",
	Long: `Print the substitution rules the converter would apply, in match
order, followed by an audit of overlapping patterns. An overlap means
one pattern is a proper prefix of another; the longer one wins, which
is worth knowing when a supplemental mapping file does not take effect.

Examples:

  # the built-in tables
  krutidev tables

  # what does my extra mapping file change?
  krutidev tables -m extra.yaml --audit
`,
	Args: cobra.NoArgs,
	RunE: runTables,
}

func init() {
	tablesCmd.Flags().StringArrayVarP(&tableMapPaths, "map", "m", nil, "supplemental mapping file (YAML, repeatable)")
	tablesCmd.Flags().BoolVar(&auditOnly, "audit", false, "print only the overlap audit")
}

func runTables(cmd *cobra.Command, args []string) error {
	conv, err := newConverter(tableMapPaths, "devanagari")
	if err != nil {
		return err
	}
	multi, single := conv.Tables()
	if !auditOnly {
		printTable("multi-unit", multi)
		printTable("single-unit", single)
	}
	printOverlaps("multi-unit", multi)
	printOverlaps("single-unit", single)
	return nil
}

func printTable(name string, t *krutidev.Table) {
	fmt.Printf("%s table, %d rules:\n", name, t.Len())
	for _, m := range t.Rules() {
		fmt.Printf("  %q -> %q\n", m.From, m.To)
	}
	fmt.Println()
}

func printOverlaps(name string, t *krutidev.Table) {
	overlaps := t.Overlaps()
	if len(overlaps) == 0 {
		fmt.Printf("%s table: no overlapping patterns\n", name)
		return
	}
	fmt.Printf("%s table, %d overlapping pattern pairs:\n", name, len(overlaps))
	for _, o := range overlaps {
		fmt.Printf("  %q takes precedence over its prefix %q\n", o.Outer, o.Inner)
	}
}
