// Package swedbank handles Swedbank statement commands
package swedbank

import (
	"emo/payment-statement-parser/cmd/root"
	"emo/payment-statement-parser/internal/factory"
	"emo/payment-statement-parser/internal/models"
	"emo/payment-statement-parser/internal/swedbankparser"

	"github.com/spf13/cobra"
)

// Cmd represents the swedbank command
var Cmd = &cobra.Command{
	Use:   "swedbank",
	Short: "Validate a Swedbank account statement",
	Long: `Validate a comma separated Swedbank account statement. Every row is
dispatched on its record type and checked with the rules of that type.

By default only transaction rows are kept, see swedbank.transactions_only.

Example:
  statement-parser swedbank -i statement.csv --all-records`,
	RunE: swedbankFunc,
}

var (
	allRecords  bool
	skipUnknown bool
)

func init() {
	Cmd.Flags().BoolVar(&allRecords, "all-records", false, "Keep balance, turnover and interest rows")
	Cmd.Flags().BoolVar(&skipUnknown, "skip-unknown", false, "Skip rows with an empty or unknown record type instead of failing")
}

func swedbankFunc(cmd *cobra.Command, args []string) error {
	root.Log.Debug("Swedbank command called")
	return root.ProcessStatement(cmd, factory.Swedbank, func(p models.Parser) {
		sp, ok := p.(*swedbankparser.Parser)
		if !ok {
			return
		}
		if cmd.Flags().Changed("all-records") {
			sp.SetTransactionsOnly(!allRecords)
		}
		if cmd.Flags().Changed("skip-unknown") {
			sp.SetSkipUnknownRecordTypes(skipUnknown)
		}
	})
}
