package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/buelldocs/docgen/internal/calculation"
	"github.com/buelldocs/docgen/internal/domain"
)

// PaystubDocument is everything a formatter needs to render one paystub
// series: the request's identity fields plus the computed entries.
type PaystubDocument struct {
	Request domain.PaystubRequest
	Entries []calculation.SeriesEntry
}

// CheckNumber returns the sequential check number for entry i.
func (d *PaystubDocument) CheckNumber(i int) int {
	first := d.Request.FirstCheckNumber
	if first == 0 {
		first = 1000
	}
	return first + i
}

// StatementDocument pairs a statement request with its computed summary.
type StatementDocument struct {
	Request domain.StatementRequest
	Summary domain.StatementSummary
}

// Formatter defines a pluggable document formatter that returns a byte
// slice. Implementations should be pure (no side effects besides
// deterministic formatting).
type Formatter interface {
	// Name returns a short identifier for logging / debugging.
	Name() string
	FormatPaystubs(doc *PaystubDocument) ([]byte, error)
	FormatStatement(doc *StatementDocument) ([]byte, error)
}

// builtInFormatters stores available formatters (extended incrementally).
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	HTMLFormatter{},
	CSVFormatter{},
	JSONFormatter{},
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == name {
			return f
		}
	}
	// try normalized name
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":        "console",
	"stdout":      "console",
	"html-report": "html",
	"json-pretty": "json",
	"csv-table":   "csv",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if resolved, ok := aliasMap[n]; ok {
		return resolved
	}
	return n
}

// Extension maps a formatter to the file extension it should be saved as.
func Extension(f Formatter) string {
	switch f.Name() {
	case "html":
		return "html"
	case "json":
		return "json"
	case "csv":
		return "csv"
	default:
		return "txt"
	}
}

// WritePaystubs runs a formatter and writes output to a timestamped file in dir.
func WritePaystubs(f Formatter, doc *PaystubDocument, dir string) (string, error) {
	data, err := f.FormatPaystubs(doc)
	if err != nil {
		return "", err
	}
	return writeTimestamped(dir, "paystubs", Extension(f), data)
}

// WriteStatement runs a formatter and writes output to a timestamped file in dir.
func WriteStatement(f Formatter, doc *StatementDocument, dir string) (string, error) {
	data, err := f.FormatStatement(doc)
	if err != nil {
		return "", err
	}
	return writeTimestamped(dir, "bank_statement", Extension(f), data)
}

func writeTimestamped(dir, prefix, ext string, data []byte) (string, error) {
	filename := fmt.Sprintf("%s_%s.%s", prefix, time.Now().Format("20060102_150405"), ext)
	if dir != "" {
		filename = dir + string(os.PathSeparator) + filename
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}
