package output

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"nutricalc/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given report
	Render(w io.Writer, report *Report) error
}

// CLIFormatter renders a report as an aligned table
type CLIFormatter struct {
	// ShowFormulas adds the lineage column
	ShowFormulas bool
}

// Format returns FormatCLI
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes one row per line followed by any assumptions
func (f *CLIFormatter) Render(w io.Writer, report *Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, l := range report.Lines {
		if f.ShowFormulas && l.Formula != "" {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", l.Label, l.Amount.String(), l.Unit, l.Formula)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", l.Label, l.Amount.String(), l.Unit)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(report.Assumptions) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Assumptions:")
		for _, a := range report.Assumptions {
			fmt.Fprintf(w, "  - %s\n", a)
		}
	}
	return nil
}

// JSONFormatter renders a report as indented JSON
type JSONFormatter struct{}

// Format returns FormatJSON
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render encodes the report
func (f *JSONFormatter) Render(w io.Writer, report *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// Registry holds formatters by format
type Registry struct {
	formatters map[Format]Formatter
}

// NewRegistry creates a registry with the built-in formatters
func NewRegistry(showFormulas bool) *Registry {
	r := &Registry{formatters: make(map[Format]Formatter)}
	r.Register(&CLIFormatter{ShowFormulas: showFormulas})
	r.Register(&JSONFormatter{})
	return r
}

// Register adds or replaces a formatter
func (r *Registry) Register(f Formatter) {
	r.formatters[f.Format()] = f
}

// Get returns the formatter for a format name
func (r *Registry) Get(format string) (Formatter, error) {
	f, ok := r.formatters[Format(format)]
	if !ok {
		return nil, errors.NotSupported("output format " + format)
	}
	return f, nil
}
