package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	sarif "github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/duyhunghd6/codegraph/index"
)

// ReportStats is everything ReportFormatter renders: the index and graph
// counts a build or merge produced, plus any structural validation
// errors found along the way.
type ReportStats struct {
	RepoRoot         string
	Index            index.Stats
	DependencyEdges  int
	DependencyNodes  int
	InheritanceEdges int
	InheritanceNodes int
	CallEdges        int
	CallNodes        int
	ValidationErrors []index.ValidationError
}

// ReportFormatter renders ReportStats in one of the engine's supported
// output formats.
type ReportFormatter struct {
	writer  io.Writer
	options *OutputOptions
}

// NewReportFormatter creates a formatter writing to stdout.
func NewReportFormatter(opts *OutputOptions) *ReportFormatter {
	if opts == nil {
		opts = NewDefaultOptions()
	}
	return &ReportFormatter{writer: os.Stdout, options: opts}
}

// NewReportFormatterWithWriter creates a formatter with a custom writer,
// for testing.
func NewReportFormatterWithWriter(w io.Writer, opts *OutputOptions) *ReportFormatter {
	f := NewReportFormatter(opts)
	f.writer = w
	return f
}

// Format renders stats according to f.options.Format.
func (f *ReportFormatter) Format(stats ReportStats) error {
	switch f.options.Format {
	case FormatJSON:
		return f.formatJSON(stats)
	case FormatCSV:
		return f.formatCSV(stats)
	case FormatSARIF:
		return f.formatSARIF(stats)
	default:
		return f.formatText(stats)
	}
}

func (f *ReportFormatter) formatText(stats ReportStats) error {
	bold := color.New(color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	fmt.Fprintf(f.writer, "%s %s\n", bold("Snapshot report for"), stats.RepoRoot)
	fmt.Fprintf(f.writer, "  Files:             %s\n", green(strconv.Itoa(stats.Index.Files)))
	fmt.Fprintf(f.writer, "  Modules:           %s\n", green(strconv.Itoa(stats.Index.Modules)))
	fmt.Fprintf(f.writer, "  Symbols exported:  %s\n", green(strconv.Itoa(stats.Index.SymbolsExported)))
	fmt.Fprintf(f.writer, "  Dependency edges:  %s (%d file nodes)\n", green(strconv.Itoa(stats.DependencyEdges)), stats.DependencyNodes)
	fmt.Fprintf(f.writer, "  Inheritance edges: %s (%d class nodes)\n", green(strconv.Itoa(stats.InheritanceEdges)), stats.InheritanceNodes)
	fmt.Fprintf(f.writer, "  Call edges:        %s (%d caller/callee nodes)\n", green(strconv.Itoa(stats.CallEdges)), stats.CallNodes)

	if len(stats.ValidationErrors) == 0 {
		fmt.Fprintf(f.writer, "  Validation errors: %s\n", green("0"))
		return nil
	}
	fmt.Fprintf(f.writer, "  Validation errors: %s\n", red(strconv.Itoa(len(stats.ValidationErrors))))
	for _, e := range stats.ValidationErrors {
		fmt.Fprintf(f.writer, "    %s %s\n", yellow(e.Kind+":"), e.Message)
	}
	return nil
}

type reportJSON struct {
	RepoRoot         string                  `json:"repo_root"`
	Files            int                     `json:"files"`
	Modules          int                     `json:"modules"`
	SymbolsExported  int                     `json:"symbols_exported"`
	DependencyEdges  int                     `json:"dependency_edges"`
	InheritanceEdges int                     `json:"inheritance_edges"`
	CallEdges        int                     `json:"call_edges"`
	ValidationErrors []index.ValidationError `json:"validation_errors"`
}

func (f *ReportFormatter) formatJSON(stats ReportStats) error {
	enc := json.NewEncoder(f.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(reportJSON{
		RepoRoot:         stats.RepoRoot,
		Files:            stats.Index.Files,
		Modules:          stats.Index.Modules,
		SymbolsExported:  stats.Index.SymbolsExported,
		DependencyEdges:  stats.DependencyEdges,
		InheritanceEdges: stats.InheritanceEdges,
		CallEdges:        stats.CallEdges,
		ValidationErrors: stats.ValidationErrors,
	})
}

func (f *ReportFormatter) formatCSV(stats ReportStats) error {
	w := csv.NewWriter(f.writer)
	defer w.Flush()

	if err := w.Write([]string{"metric", "value"}); err != nil {
		return err
	}
	rows := [][2]string{
		{"repo_root", stats.RepoRoot},
		{"files", strconv.Itoa(stats.Index.Files)},
		{"modules", strconv.Itoa(stats.Index.Modules)},
		{"symbols_exported", strconv.Itoa(stats.Index.SymbolsExported)},
		{"dependency_edges", strconv.Itoa(stats.DependencyEdges)},
		{"inheritance_edges", strconv.Itoa(stats.InheritanceEdges)},
		{"call_edges", strconv.Itoa(stats.CallEdges)},
		{"validation_errors", strconv.Itoa(len(stats.ValidationErrors))},
	}
	for _, row := range rows {
		if err := w.Write(row[:]); err != nil {
			return err
		}
	}
	return nil
}

// formatSARIF renders validation errors as SARIF results, one rule per
// error kind. Metric counts have no SARIF analogue, so only the
// errors show up here; use json or text for the full picture.
func (f *ReportFormatter) formatSARIF(stats ReportStats) error {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return err
	}
	run := sarif.NewRunWithInformationURI("codegraph", "https://github.com/duyhunghd6/codegraph")

	seenRules := make(map[string]bool)
	for _, e := range stats.ValidationErrors {
		if !seenRules[e.Kind] {
			seenRules[e.Kind] = true
			run.AddRule(e.Kind).
				WithDescription(e.Kind).
				WithDefaultConfiguration(sarif.NewReportingConfiguration().WithLevel("warning"))
		}
		run.CreateResultForRule(e.Kind).
			WithMessage(sarif.NewTextMessage(e.Message))
	}
	report.AddRun(run)

	enc := json.NewEncoder(f.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
