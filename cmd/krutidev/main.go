package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "krutidev",
	Short: "Convert Kruti Dev encoded text to Unicode Devanagari",
	Long: `krutidev converts Hindi text typed in the legacy Kruti Dev 010
glyph encoding to standard Unicode Devanagari.

Kruti Dev files look like mojibake in a Unicode world: the bytes encode
glyph positions of a TTF font, not characters. This tool rewrites such
text with the classic substitution tables, reorders the short-i matra
and reports every code point the tables do not account for.`,
	Version: version,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(residualsCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run:   printVersion,
}

func printVersion(cmd *cobra.Command, args []string) {
	fmt.Println("krutidev " + version)
}
