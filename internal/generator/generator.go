/*
Package for a generator for the Kruti Dev 010 mapping tables.

Contents

This is a generator for the built-in substitution tables of package
krutidev. Tables are generated from a YAML companion file:
"krutidev010.yaml". This is the definite source for the glyph mappings
of the Kruti Dev 010 font family.

Usage

The generator has just one option, a "verbose" flag. It should usually
be turned on.

   generator [-v]

This creates a file "krutidevtables.go" in the current directory. It is
designed to be called from the module root, which is what the
go:generate directive in tables.go does.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © The indictext authors
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"runtime"
	"strings"
	"text/template"
	"time"
	"unicode"
	"unicode/utf8"

	"os"

	"gopkg.in/yaml.v3"
)

var logger = log.New(os.Stderr, "krutidev generator: ", log.LstdFlags)

// flag: verbose output ?
var verbose bool

const masterPath = "internal/generator/krutidev010.yaml"

type mapping struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

type master struct {
	Multi  []mapping `yaml:"multi"`
	Single []mapping `yaml:"single"`
}

// Load the master mapping list: krutidev010.yaml
func loadMappingMaster() (*master, error) {
	if verbose {
		logger.Printf("reading %s", masterPath)
	}
	defer timeTrack(time.Now(), "loading "+masterPath)

	data, err := os.ReadFile(masterPath)
	if err != nil {
		return nil, err
	}
	var m master
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if err := checkSection("multi", m.Multi, false); err != nil {
		return nil, err
	}
	if err := checkSection("single", m.Single, true); err != nil {
		return nil, err
	}
	return &m, nil
}

// checkSection guards the generated file against master entries the
// converter would reject at table construction: duplicate, empty or
// newline-carrying patterns, and patterns of the wrong length class.
func checkSection(name string, entries []mapping, single bool) error {
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		n := utf8.RuneCountInString(e.From)
		if n == 0 {
			return fmt.Errorf("%s section: entry with empty pattern", name)
		}
		if strings.ContainsRune(e.From, '\n') {
			return fmt.Errorf("%s section: pattern %s contains a newline", name, goQuote(e.From))
		}
		if single && n != 1 {
			return fmt.Errorf("%s section: pattern %s is not a single unit", name, goQuote(e.From))
		}
		if !single && n < 2 {
			return fmt.Errorf("%s section: pattern %s spans less than two units", name, goQuote(e.From))
		}
		if seen[e.From] {
			return fmt.Errorf("%s section: duplicate pattern %s", name, goQuote(e.From))
		}
		seen[e.From] = true
	}
	return nil
}

// --- Templates --------------------------------------------------------

var header = `package krutidev

// This file has been generated -- you probably should NOT EDIT IT !
//
// Mapping data for the Kruti Dev 010 family of legacy Devanagari
// fonts, generated from internal/generator/krutidev010.yaml.
`

var multiDoc = `
// multiUnitMappings lists substitution rules whose patterns span two or
// more legacy units. Declaration order breaks ties between patterns of
// equal length.
var multiUnitMappings = []Mapping{
`

var singleDoc = `
// singleUnitMappings lists substitution rules for isolated legacy units.
var singleUnitMappings = []Mapping{
`

var templateMappingEntries = `{{range .}}	{{printf "{%s, %s}," (goquote .From) (goquote .To)}}
{{end}}`

// Helper functions for templates
var funcMap = template.FuncMap{
	"goquote": goQuote,
}

// goQuote renders s as a Go string literal. Unlike strconv.Quote it
// keeps printable non-ASCII runes literal, so the generated tables stay
// readable next to their YAML master.
func goQuote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch {
		case r == '"':
			b.WriteString(`\"`)
		case r == '\\':
			b.WriteString(`\\`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\t':
			b.WriteString(`\t`)
		case unicode.IsPrint(r):
			b.WriteRune(r)
		case r <= 0xFFFF:
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			fmt.Fprintf(&b, `\U%08x`, r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func makeTemplate(name string, templString string) *template.Template {
	if verbose {
		logger.Printf("creating %s", name)
	}
	t := template.Must(template.New(name).Funcs(funcMap).Parse(templString))
	return t
}

// --- Main -------------------------------------------------------------

func generateTables(w *bufio.Writer, m *master) {
	defer timeTrack(time.Now(), "generate mapping tables")
	t := makeTemplate("mapping entries", templateMappingEntries)
	w.WriteString(multiDoc)
	checkFatal(t.Execute(w, m.Multi))
	w.WriteString("}\n")
	w.WriteString(singleDoc)
	checkFatal(t.Execute(w, m.Single))
	w.WriteString("}\n")
}

func main() {
	doVerbose := flag.Bool("v", false, "verbose output mode")
	flag.Parse()
	verbose = *doVerbose
	m, err := loadMappingMaster()
	checkFatal(err)
	if verbose {
		logger.Printf("loaded %d multi-unit and %d single-unit mappings\n", len(m.Multi), len(m.Single))
	}
	f, ioerr := os.Create("krutidevtables.go")
	checkFatal(ioerr)
	defer f.Close()
	w := bufio.NewWriter(f)
	w.WriteString(header)
	generateTables(w, m)
	w.Flush()
}

// --- Util -------------------------------------------------------------

// Little helper for testing
func timeTrack(start time.Time, name string) {
	if verbose {
		elapsed := time.Since(start)
		logger.Printf("timing: %s took %s\n", name, elapsed)
	}
}

func checkFatal(err error) {
	_, file, line, _ := runtime.Caller(1)
	if err != nil {
		logger.Fatalln(":", file, ":", line, "-", err)
	}
}
