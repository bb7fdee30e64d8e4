package main

import (
	"fmt"
	"io"
	"os"

	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/indictext/krutidev"
	"github.com/indictext/krutidev/mapfile"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
)

var (
	outputPath string
	mapPaths   []string
	digitMode  string
	streamed   bool
	quiet      bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert Kruti Dev text to Unicode Devanagari",
	Long: `Convert text in the Kruti Dev 010 glyph encoding to Unicode
Devanagari. Input is read from the named file, or from stdin when no
file is given. Converted text goes to stdout, the residual report to
stderr, so the two never mix in a pipeline.

Examples:

  # convert a file, residual report on stderr
  krutidev convert legacy.txt > unicode.txt

  # convert a stream line by line
  tail -f spool.txt | krutidev convert --stream

  # site-specific extra mappings, ASCII digits preserved
  krutidev convert -m extra.yaml --digits keep legacy.txt
`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write converted text to file instead of stdout")
	convertCmd.Flags().StringArrayVarP(&mapPaths, "map", "m", nil, "supplemental mapping file (YAML, repeatable)")
	convertCmd.Flags().StringVar(&digitMode, "digits", "devanagari", "digit handling: devanagari, keep or auto")
	convertCmd.Flags().BoolVar(&streamed, "stream", false, "convert line by line instead of whole-text")
	convertCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress the residual report")
}

func runConvert(cmd *cobra.Command, args []string) error {
	conv, err := newConverter(mapPaths, digitMode)
	if err != nil {
		return err
	}
	in, err := openInput(args)
	if err != nil {
		return err
	}
	defer in.Close()
	out := os.Stdout
	if outputPath != "" {
		out, err = os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer out.Close()
	}
	var residuals []krutidev.Residual
	if streamed {
		t := conv.Transformer()
		if _, err := io.Copy(out, transform.NewReader(in, t)); err != nil {
			return fmt.Errorf("conversion failed: %w", err)
		}
		residuals = t.Residuals()
	} else {
		data, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		result := conv.Convert(string(data))
		if _, err := io.WriteString(out, result.Text); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		residuals = result.Residuals
	}
	if !quiet && len(residuals) > 0 {
		fmt.Fprint(os.Stderr, krutidev.Result{Residuals: residuals}.ResidualReport())
	}
	return nil
}

// newConverter builds a converter from the built-in tables, any
// supplemental mapping files (later files win) and the digit mode.
func newConverter(paths []string, digits string) (*krutidev.Converter, error) {
	layered := &mapfile.File{}
	for _, path := range paths {
		extra, err := mapfile.Load(path)
		if err != nil {
			return nil, err
		}
		layered = extra.Merge(layered)
	}
	opts, err := digitOptions(digits)
	if err != nil {
		return nil, err
	}
	return layered.Converter(opts...)
}

func digitOptions(mode string) ([]krutidev.Option, error) {
	switch mode {
	case "devanagari":
		return nil, nil
	case "keep":
		return []krutidev.Option{krutidev.KeepASCIIDigits()}, nil
	case "auto":
		if localeIsHindi() {
			return nil, nil
		}
		return []krutidev.Option{krutidev.KeepASCIIDigits()}, nil
	}
	return nil, fmt.Errorf("unknown digit mode %q (want devanagari, keep or auto)", mode)
}

// localeIsHindi checks the OS locale of the user. Detection failure
// counts as Hindi, which keeps the built-in digit rules active.
func localeIsHindi() bool {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		return true
	}
	base, _ := language.Make(userLocale).Base()
	return base.String() == "hi"
}

func openInput(args []string) (io.ReadCloser, error) {
	if len(args) == 0 {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	return f, nil
}
