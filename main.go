package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"emo/payment-statement-parser/cmd/batch"
	"emo/payment-statement-parser/cmd/common"
	"emo/payment-statement-parser/cmd/postlt"
	"emo/payment-statement-parser/cmd/root"
	"emo/payment-statement-parser/cmd/swedbank"
	"emo/payment-statement-parser/internal/config"
	"emo/payment-statement-parser/internal/logging"

	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	_, _ = config.LoadEnv()

	// 2. Set the level of every logrus instance before anything logs
	logging.SetAllLogLevels(configureLogLevel())

	// 3. Initialize root command and add all subcommands
	root.Init()
	root.Cmd.AddCommand(postlt.Cmd)
	root.Cmd.AddCommand(swedbank.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
}

// configureLogLevel reads LOG_LEVEL, falling back to info.
func configureLogLevel() logrus.Level {
	logLevel, err := logrus.ParseLevel(strings.ToLower(config.GetEnv("LOG_LEVEL", "info")))
	if err != nil {
		return logrus.InfoLevel
	}
	return logLevel
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		if !errors.Is(err, common.ErrViolations) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
