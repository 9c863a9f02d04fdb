// Package report renders parse results for humans and machines.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"emo/payment-statement-parser/internal/logging"
	"emo/payment-statement-parser/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// Supported report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Formats returns the supported report formats.
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatYAML, FormatCSV, FormatXLSX}
}

// IsValidFormat reports whether format is a supported report format.
func IsValidFormat(format string) bool {
	for _, f := range Formats() {
		if f == format {
			return true
		}
	}
	return false
}

// Entry is one violation in a report.
type Entry struct {
	Line    string `json:"line" yaml:"line" csv:"line"`
	Path    string `json:"path" yaml:"path" csv:"path"`
	Message string `json:"message" yaml:"message" csv:"message"`
	Value   string `json:"value" yaml:"value" csv:"value"`
}

// Report summarizes the parse result of one statement file.
type Report struct {
	ID         string   `json:"id" yaml:"id"`
	File       string   `json:"file,omitempty" yaml:"file,omitempty"`
	Format     string   `json:"format" yaml:"format"`
	Rows       int      `json:"rows" yaml:"rows"`
	Valid      bool     `json:"valid" yaml:"valid"`
	Violations []Entry  `json:"violations" yaml:"violations"`
	Skipped    []string `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

// NewReport builds the report of result, read from file.
func NewReport(file string, result *models.Result) Report {
	r := Report{
		ID:         uuid.New().String(),
		File:       file,
		Format:     result.Format,
		Rows:       len(result.Rows),
		Valid:      result.Valid(),
		Violations: make([]Entry, 0, len(result.Violations)),
	}
	for _, v := range result.Violations {
		line, _, _ := strings.Cut(v.Path, ".")
		r.Violations = append(r.Violations, Entry{
			Line:    line,
			Path:    v.Path,
			Message: v.Message,
			Value:   v.InvalidValue,
		})
	}
	for _, err := range result.Skipped {
		r.Skipped = append(r.Skipped, err.Error())
	}
	return r
}

// ReportGenerator renders reports in the supported formats.
type ReportGenerator struct {
	logger logging.Logger
}

// NewReportGenerator creates a new instance of ReportGenerator.
func NewReportGenerator(logger logging.Logger) *ReportGenerator {
	if logger == nil {
		logger = logging.Default()
	}
	return &ReportGenerator{
		logger: logger.WithField("component", "ReportGenerator"),
	}
}

// GenerateReport renders report in format. It returns an error for
// unsupported formats.
func (g *ReportGenerator) GenerateReport(report Report, format string) ([]byte, error) {
	switch format {
	case FormatText:
		return g.generateTextReport(report), nil
	case FormatJSON:
		return g.generateJSONReport(report)
	case FormatYAML:
		return g.generateYAMLReport(report)
	case FormatCSV:
		return g.generateCSVReport(report)
	case FormatXLSX:
		return g.generateXLSXReport(report)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *ReportGenerator) generateTextReport(report Report) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "Report: %s\n", report.ID)
	if report.File != "" {
		fmt.Fprintf(&b, "File: %s\n", report.File)
	}
	fmt.Fprintf(&b, "Format: %s\n", report.Format)
	fmt.Fprintf(&b, "Rows: %d\n", report.Rows)
	fmt.Fprintf(&b, "Violations: %d\n", len(report.Violations))
	for _, e := range report.Violations {
		b.WriteString(models.Violation{Path: e.Path, Message: e.Message, InvalidValue: e.Value}.String())
		b.WriteByte('\n')
	}
	if len(report.Skipped) > 0 {
		fmt.Fprintf(&b, "Skipped: %d\n", len(report.Skipped))
		for _, s := range report.Skipped {
			b.WriteString(s)
			b.WriteByte('\n')
		}
	}
	return b.Bytes()
}

func (g *ReportGenerator) generateJSONReport(report Report) ([]byte, error) {
	jsonReport, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return append(jsonReport, '\n'), nil
}

func (g *ReportGenerator) generateYAMLReport(report Report) ([]byte, error) {
	yamlReport, err := yaml.Marshal(report)
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML report")
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return yamlReport, nil
}

// generateCSVReport writes one line per violation.
func (g *ReportGenerator) generateCSVReport(report Report) ([]byte, error) {
	csvReport, err := gocsv.MarshalBytes(report.Violations)
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal CSV report")
		return nil, fmt.Errorf("failed to marshal CSV report: %w", err)
	}
	return csvReport, nil
}

const (
	summarySheet    = "Summary"
	violationsSheet = "Violations"
)

// generateXLSXReport writes a workbook with a summary sheet and one row per
// violation on a second sheet.
func (g *ReportGenerator) generateXLSXReport(report Report) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			g.logger.WithError(err).Warn("Failed to close XLSX workbook")
		}
	}()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("failed to create XLSX report: %w", err)
	}
	if _, err := f.NewSheet(violationsSheet); err != nil {
		return nil, fmt.Errorf("failed to create XLSX report: %w", err)
	}

	summary := [][]interface{}{
		{"Report", report.ID},
		{"File", report.File},
		{"Format", report.Format},
		{"Rows", report.Rows},
		{"Valid", report.Valid},
		{"Violations", len(report.Violations)},
		{"Skipped", len(report.Skipped)},
	}
	for i, row := range summary {
		if err := setSheetRow(f, summarySheet, i+1, row); err != nil {
			return nil, fmt.Errorf("failed to write XLSX summary: %w", err)
		}
	}

	if err := setSheetRow(f, violationsSheet, 1, []interface{}{"line", "path", "message", "value"}); err != nil {
		return nil, fmt.Errorf("failed to write XLSX header: %w", err)
	}
	for i, e := range report.Violations {
		if err := setSheetRow(f, violationsSheet, i+2, []interface{}{e.Line, e.Path, e.Message, e.Value}); err != nil {
			return nil, fmt.Errorf("failed to write XLSX violation: %w", err)
		}
	}
	g.styleXLSX(f, len(summary))

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		g.logger.WithError(err).Error("Failed to write XLSX report")
		return nil, fmt.Errorf("failed to write XLSX report: %w", err)
	}
	return buf.Bytes(), nil
}

// setSheetRow writes values into row (1-based) of sheet, starting at column A.
func setSheetRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

// styleXLSX bolds the labels and widens the message columns. Styling is
// cosmetic: failures are logged and the report is still written.
func (g *ReportGenerator) styleXLSX(f *excelize.File, summaryRows int) {
	warn := func(err error, what string) {
		if err != nil {
			g.logger.WithError(err).Warn("Failed to style XLSX report", logging.F("step", what))
		}
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		warn(err, "bold style")
		return
	}
	warn(f.SetCellStyle(violationsSheet, "A1", "D1", style), "header style")
	warn(f.SetCellStyle(summarySheet, "A1", fmt.Sprintf("A%d", summaryRows), style), "summary style")
	warn(f.SetColWidth(violationsSheet, "B", "B", 20), "path width")
	warn(f.SetColWidth(violationsSheet, "C", "C", 60), "message width")
}
