package swedbank_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"emo/payment-statement-parser/cmd/common"
	"emo/payment-statement-parser/cmd/root"
	"emo/payment-statement-parser/cmd/swedbank"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statement = `"LT04","10","2017-09-01","","Likutis","0.00","EUR","K","","","",""
"LT04","20","2017-09-04","Vardenis","XXX 333/ / / / / / / /","9.00","EUR","K","2017090401228987","MK","",""
`

func TestSwedbankCommand_Metadata(t *testing.T) {
	assert.Equal(t, "swedbank", swedbank.Cmd.Use)
	assert.Contains(t, swedbank.Cmd.Short, "Swedbank")
	assert.NotNil(t, swedbank.Cmd.RunE)
	assert.NotNil(t, swedbank.Cmd.Flags().Lookup("all-records"))
	assert.NotNil(t, swedbank.Cmd.Flags().Lookup("skip-unknown"))
}

func TestSwedbankCommand_Execute(t *testing.T) {
	root.Init()
	root.Cmd.AddCommand(swedbank.Cmd)
	t.Chdir(t.TempDir())
	t.Setenv("STMT_SWEDBANK_TRANSACTIONS_ONLY", "true")
	t.Setenv("STMT_REPORT_FORMAT", "text")

	input := filepath.Join(t.TempDir(), "statement.csv")
	require.NoError(t, os.WriteFile(input, []byte(statement), 0600))

	tests := []struct {
		name        string
		args        []string
		expectError error
		contains    string
	}{
		{
			name:     "transactions only",
			args:     []string{"swedbank", "-i", input},
			contains: "Rows: 1\nViolations: 0\n",
		},
		{
			name:        "all records",
			args:        []string{"swedbank", "-i", input, "--all-records"},
			expectError: common.ErrViolations,
			contains:    `line-1 Validation for "OpeningBalance" is not implemented.`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			root.Cmd.SetOut(&out)
			root.Cmd.SetArgs(tt.args)

			err := root.Cmd.Execute()
			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
			} else {
				assert.NoError(t, err)
			}
			assert.Contains(t, out.String(), tt.contains)
		})
	}
}
