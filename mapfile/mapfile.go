/*
Package mapfile loads supplemental Kruti Dev mapping files.

A mapping file is YAML with two optional sections, multi for patterns
spanning two or more legacy units and single for isolated units:

	multi:
	  - { from: "Ùî", to: "त्त्य" }
	single:
	  - { from: "Ù", to: "त्त्" }

Entry order matters: patterns of equal length apply in listed order, and
a replacement produced by one rule can be matched by a later rule.

Mapping files exist for corpus expansion. The residual report of a
conversion names the units the built-in tables do not cover; an operator
adds rules for them to a file and re-runs, without rebuilding anything.
Files layer over the built-in tables with Merge, or directly into a
converter with Converter.
*/
package mapfile

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/indictext/krutidev"
)

type entry struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

type document struct {
	Multi  []entry `yaml:"multi"`
	Single []entry `yaml:"single"`
}

// File is one parsed mapping file. Both sections may be empty.
type File struct {
	Multi  []krutidev.Mapping
	Single []krutidev.Mapping
}

// Load reads and validates a mapping file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file: %w", err)
	}
	f, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse reads a mapping file from a stream and validates it.
func Parse(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping data: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*File, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse mapping data: %w", err)
	}
	f := &File{
		Multi:  mappings(doc.Multi),
		Single: mappings(doc.Single),
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return f, nil
}

func mappings(entries []entry) []krutidev.Mapping {
	if len(entries) == 0 {
		return nil
	}
	ms := make([]krutidev.Mapping, len(entries))
	for i, e := range entries {
		ms[i] = krutidev.Mapping{From: e.From, To: e.To}
	}
	return ms
}

// validate runs the engine's table construction over both sections, which
// catches empty, newline-carrying and colliding patterns, and checks the
// per-section pattern length classes on top.
func (f *File) validate() error {
	if _, err := krutidev.NewTable(f.Multi); err != nil {
		return fmt.Errorf("multi section: %w", err)
	}
	if _, err := krutidev.NewTable(f.Single); err != nil {
		return fmt.Errorf("single section: %w", err)
	}
	for _, m := range f.Multi {
		if utf8.RuneCountInString(m.From) < 2 {
			return fmt.Errorf("multi section: pattern %q must span at least two units", m.From)
		}
	}
	for _, m := range f.Single {
		if utf8.RuneCountInString(m.From) != 1 {
			return fmt.Errorf("single section: pattern %q must be exactly one unit", m.From)
		}
	}
	return nil
}

// Builtin returns the built-in tables as a File, the usual merge base.
func Builtin() *File {
	multi, single := krutidev.BuiltinMappings()
	return &File{Multi: multi, Single: single}
}

// Merge layers f over base: entries of f replace base entries with the
// same pattern and otherwise precede them, so on equal pattern length the
// layered file wins. Neither input is modified.
func (f *File) Merge(base *File) *File {
	return &File{
		Multi:  mergeMappings(f.Multi, base.Multi),
		Single: mergeMappings(f.Single, base.Single),
	}
}

func mergeMappings(over, base []krutidev.Mapping) []krutidev.Mapping {
	overridden := make(map[string]bool, len(over))
	merged := make([]krutidev.Mapping, 0, len(over)+len(base))
	for _, m := range over {
		overridden[m.From] = true
		merged = append(merged, m)
	}
	for _, m := range base {
		if !overridden[m.From] {
			merged = append(merged, m)
		}
	}
	return merged
}

// Converter builds a converter from the file's sections merged over the
// built-in tables.
func (f *File) Converter(opts ...krutidev.Option) (*krutidev.Converter, error) {
	merged := f.Merge(Builtin())
	opts = append([]krutidev.Option{
		krutidev.WithMappings(merged.Multi, merged.Single),
	}, opts...)
	return krutidev.NewConverter(opts...)
}
