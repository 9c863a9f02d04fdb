// Package batch handles batch processing of files
package batch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"emo/payment-statement-parser/cmd/common"
	"emo/payment-statement-parser/cmd/root"
	"emo/payment-statement-parser/internal/batch"
	"emo/payment-statement-parser/internal/factory"
	"emo/payment-statement-parser/internal/fileutils"
	"emo/payment-statement-parser/internal/logging"
	"emo/payment-statement-parser/internal/report"
	"emo/payment-statement-parser/internal/validation"

	"github.com/spf13/cobra"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch process statement files from a directory",
	Long: `Batch process statement files from an input directory and write one report
per file to another directory.

All files must be of the format given with --format. A file that cannot be
parsed is reported and the batch goes on with the next one.

Example:
  statement-parser batch --format swedbank -i input_dir/ -o report_dir/`,
	RunE: batchFunc,
}

var (
	format       string
	extensions   []string
	showProgress bool

	// progressOut receives the progress bar when --progress is set.
	progressOut io.Writer = os.Stderr
)

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", "", "Statement format of every file: postlt or swedbank")
	Cmd.Flags().StringSliceVar(&extensions, "ext", []string{".csv", ".txt"}, "File extensions to process")
	Cmd.Flags().BoolVar(&showProgress, "progress", false, "Show a progress bar on stderr")

	// Override the usage text for the input/output flags in batch context
	Cmd.SetUsageTemplate(`Usage:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags (for batch, -i/-o refer to directories):
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}
`)
}

func batchFunc(cmd *cobra.Command, args []string) error {
	appContainer := root.GetContainer()
	if appContainer == nil {
		return fmt.Errorf("container not initialized")
	}

	inputDir := root.SharedFlags.Input
	outputDir := root.SharedFlags.Output
	if inputDir == "" || outputDir == "" {
		return fmt.Errorf("input and output directories must be specified")
	}
	if !fileutils.DirectoryExists(inputDir) {
		return fmt.Errorf("input directory does not exist: %s", inputDir)
	}

	p, err := appContainer.GetParser(factory.ParserType(strings.ToLower(format)))
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	progressOut = cmd.ErrOrStderr()
	summary, err := Run(ctx, batch.NewProcessor(p, root.Log), appContainer.GetReportGenerator(),
		inputDir, outputDir, appContainer.GetConfig().Report.Format, root.Log)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Processed %d files: %d failed, %d with violations\n",
		summary.Files, summary.Failed, summary.Invalid)
	if !summary.OK() {
		return common.ErrViolations
	}
	return nil
}

// Run parses every matching file of inputDir and writes one report per
// parsed file into outputDir.
func Run(ctx context.Context, processor *batch.Processor, gen common.ReportGenerator, inputDir, outputDir, reportFormat string, logger logging.Logger) (batch.Summary, error) {
	if err := validation.IsValidPath(inputDir); err != nil {
		return batch.Summary{}, err
	}
	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		return batch.Summary{}, fmt.Errorf("failed to create output directory: %w", err)
	}

	files, err := fileutils.ListFiles(inputDir, extensions...)
	if err != nil {
		return batch.Summary{}, err
	}
	if len(files) == 0 {
		logger.Warn("No supported files found in input directory",
			logging.F(logging.FieldFile, inputDir))
		return batch.Summary{}, nil
	}

	logger.Info("Found files for processing",
		logging.F(logging.FieldCount, len(files)))
	if showProgress {
		processor.SetProgress(batch.NewBarProgress(len(files), progressOut))
	}

	results, err := processor.ProcessFiles(ctx, files)
	if err != nil {
		return batch.Summary{}, err
	}

	for _, r := range results {
		if r.Err != nil {
			continue
		}
		output := filepath.Join(outputDir, batch.ReportFilename(r.Path, reportFormat))
		if err := common.WriteReport(gen, report.NewReport(filepath.Base(r.Path), r.Result), common.Options{
			Output: output,
			Format: reportFormat,
		}); err != nil {
			return batch.Summary{}, fmt.Errorf("error writing report for %s: %w", r.Path, err)
		}
		logger.Debug("Wrote report",
			logging.F(logging.FieldInputFile, filepath.Base(r.Path)),
			logging.F(logging.FieldOutputFile, output))
	}

	return batch.Summarize(results), nil
}
