// Package root contains the root command for the application
package root

import (
	"context"
	"fmt"
	"sync"

	"emo/payment-statement-parser/cmd/common"
	"emo/payment-statement-parser/internal/config"
	"emo/payment-statement-parser/internal/container"
	"emo/payment-statement-parser/internal/factory"
	"emo/payment-statement-parser/internal/logging"
	"emo/payment-statement-parser/internal/models"
	"emo/payment-statement-parser/internal/report"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
	Report string
}

var (
	// Log is the shared logger instance for commands. It is replaced by the
	// configured logger once the container is built.
	Log = logging.Default()

	// AppContainer holds the wired dependencies of the running command.
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "statement-parser",
		Short: "A CLI tool to parse and validate PostLt and Swedbank payment statements.",
		Long: `statement-parser reads PostLt (tab separated) and Swedbank (comma separated)
payment statement files, validates every row against the column rules of its format
and reports the violations it found.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to statement-parser!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initContainer()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if AppContainer != nil {
				if err := AppContainer.Close(); err != nil {
					Log.WithError(err).Warn("Failed to close container")
				}
			}
		},
		SilenceUsage: true,
	}

	// SharedFlags holds the flags accessible to all commands
	SharedFlags = CommonFlags{}

	initOnce sync.Once
)

// Init initializes the root command and all flags. It is safe to call more
// than once.
func Init() {
	initOnce.Do(func() {
		Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
		Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output report file (default stdout)")
		Cmd.PersistentFlags().StringVarP(&SharedFlags.Report, "report", "r", "",
			fmt.Sprintf("Report format, one of %v (default from configuration)", report.Formats()))
	})
}

func initContainer() error {
	if _, err := config.LoadEnv(); err != nil {
		return fmt.Errorf("error loading .env file: %w", err)
	}

	cfg, err := config.InitializeConfig()
	if err != nil {
		return err
	}
	if SharedFlags.Report != "" {
		if !report.IsValidFormat(SharedFlags.Report) {
			return fmt.Errorf("unsupported report format: %s", SharedFlags.Report)
		}
		cfg.Report.Format = SharedFlags.Report
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("error initializing application: %w", err)
	}
	AppContainer = c
	Log = c.GetLogger()
	return nil
}

// GetContainer returns the application container, or nil before the root
// command ran.
func GetContainer() *container.Container {
	return AppContainer
}

// GetConfig returns the loaded configuration, or nil before the root command ran.
func GetConfig() *config.Config {
	if AppContainer == nil {
		return nil
	}
	return AppContainer.GetConfig()
}

// ProcessStatement parses the --input file with the parser registered for pt
// and writes its report. configure, when not nil, adjusts the parser first.
func ProcessStatement(cmd *cobra.Command, pt factory.ParserType, configure func(models.Parser)) error {
	if AppContainer == nil {
		return fmt.Errorf("container not initialized")
	}

	p, err := AppContainer.GetParser(pt)
	if err != nil {
		return err
	}
	if configure != nil {
		configure(p)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	_, err = common.ProcessFile(ctx, p, AppContainer.GetReportGenerator(), common.Options{
		Input:  SharedFlags.Input,
		Output: SharedFlags.Output,
		Format: AppContainer.GetConfig().Report.Format,
		Stdout: cmd.OutOrStdout(),
	}, Log)
	return err
}
