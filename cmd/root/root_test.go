package root_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"emo/payment-statement-parser/cmd/root"
	"emo/payment-statement-parser/internal/factory"
	"emo/payment-statement-parser/internal/models"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "statement-parser", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "PostLt and Swedbank payment statements")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRunE)
	assert.NotNil(t, root.Cmd.PersistentPostRun)
}

func TestRootCommand_Flags(t *testing.T) {
	root.Init()
	root.Init()

	for name, shorthand := range map[string]string{"input": "i", "output": "o", "report": "r"} {
		flag := root.Cmd.PersistentFlags().Lookup(name)
		require.NotNil(t, flag, name)
		assert.Equal(t, shorthand, flag.Shorthand)
	}
}

func TestGetConfig_BeforeInit(t *testing.T) {
	original := root.AppContainer
	defer func() { root.AppContainer = original }()

	root.AppContainer = nil
	assert.Nil(t, root.GetContainer())
	assert.Nil(t, root.GetConfig())

	err := root.ProcessStatement(&cobra.Command{}, factory.PostLt, nil)
	assert.EqualError(t, err, "container not initialized")
}

func TestRootCommand_ProcessStatement(t *testing.T) {
	original := root.AppContainer
	originalFlags := root.SharedFlags
	defer func() {
		root.AppContainer = original
		root.SharedFlags = originalFlags
	}()

	t.Chdir(t.TempDir())
	for _, key := range []string{"STMT_REPORT_FORMAT", "STMT_LOG_LEVEL", "STMT_LOG_FORMAT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	input := filepath.Join(t.TempDir(), "statement.txt")
	row := "01234\t2017.09.07\tLT123\tpayment\t\tName\tAddress\t1\t148.50\tEUR\t123\t2017.09.08" + strings.Repeat("\t0", 12)
	require.NoError(t, os.WriteFile(input, []byte(row+"\n"), 0600))

	root.SharedFlags = root.CommonFlags{Input: input, Report: "json"}
	require.NoError(t, root.Cmd.PersistentPreRunE(root.Cmd, nil))
	require.NotNil(t, root.GetConfig())
	assert.Equal(t, "json", root.GetConfig().Report.Format)

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	configured := false
	err := root.ProcessStatement(cmd, factory.PostLt, func(p models.Parser) {
		configured = true
		assert.Equal(t, models.FormatPostLt, p.Format())
	})
	assert.True(t, configured)
	require.NoError(t, err)
	assert.Contains(t, out.String(), `"format": "postlt"`)
	assert.Contains(t, out.String(), `"file": "statement.txt"`)

	root.Cmd.PersistentPostRun(root.Cmd, nil)
}

func TestRootCommand_InvalidReportFlag(t *testing.T) {
	original := root.AppContainer
	originalFlags := root.SharedFlags
	defer func() {
		root.AppContainer = original
		root.SharedFlags = originalFlags
	}()
	t.Chdir(t.TempDir())

	root.SharedFlags = root.CommonFlags{Report: "xml"}
	err := root.Cmd.PersistentPreRunE(root.Cmd, nil)
	assert.EqualError(t, err, "unsupported report format: xml")
}
