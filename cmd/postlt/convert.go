// Package postlt handles PostLt statement commands
package postlt

import (
	"emo/payment-statement-parser/cmd/root"
	"emo/payment-statement-parser/internal/factory"

	"github.com/spf13/cobra"
)

// Cmd represents the postlt command
var Cmd = &cobra.Command{
	Use:   "postlt",
	Short: "Validate a PostLt payment statement",
	Long: `Validate a tab separated PostLt payment statement and report every row
that breaks the PostLt column rules.

Example:
  statement-parser postlt -i payments.txt -r json -o report.json`,
	RunE: postltFunc,
}

func postltFunc(cmd *cobra.Command, args []string) error {
	root.Log.Debug("PostLt command called")
	return root.ProcessStatement(cmd, factory.PostLt, nil)
}
