package common_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"emo/payment-statement-parser/cmd/common"
	"emo/payment-statement-parser/internal/logging"
	"emo/payment-statement-parser/internal/models"
	"emo/payment-statement-parser/internal/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockParser implements models.Parser for testing
type MockParser struct {
	mock.Mock
}

func (m *MockParser) Parse(ctx context.Context, content []byte) (*models.Result, error) {
	args := m.Called(ctx, content)
	result, _ := args.Get(0).(*models.Result)
	return result, args.Error(1)
}

func (m *MockParser) ParseFile(ctx context.Context, path string) (*models.Result, error) {
	args := m.Called(ctx, path)
	result, _ := args.Get(0).(*models.Result)
	return result, args.Error(1)
}

func (m *MockParser) Format() string { return models.FormatPostLt }

func (m *MockParser) SetLogger(logger logging.Logger) {}

func writeInput(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "statement.csv")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0600))
	return path
}

func TestProcessFile_ValidStatement(t *testing.T) {
	input := writeInput(t)
	p := &MockParser{}
	p.On("ParseFile", mock.Anything, input).Return(&models.Result{Format: models.FormatPostLt, Rows: make([]models.Row, 2)}, nil)

	var out bytes.Buffer
	result, err := common.ProcessFile(context.Background(), p, report.NewReportGenerator(nil),
		common.Options{Input: input, Format: report.FormatText, Stdout: &out}, logging.NewMockLogger())

	require.NoError(t, err)
	assert.True(t, result.Valid())
	assert.True(t, strings.HasPrefix(out.String(), "Report: "))
	assert.True(t, strings.HasSuffix(out.String(), "\nFile: statement.csv\nFormat: postlt\nRows: 2\nViolations: 0\n"))
	p.AssertExpectations(t)
}

func TestProcessFile_Violations(t *testing.T) {
	input := writeInput(t)
	output := filepath.Join(t.TempDir(), "reports", "statement.json")
	p := &MockParser{}
	p.On("ParseFile", mock.Anything, input).Return(&models.Result{
		Format:     models.FormatPostLt,
		Violations: []models.Violation{{Path: "line-1.amount", Message: "[8 column] This value should not be blank."}},
	}, nil)
	logger := logging.NewMockLogger()

	result, err := common.ProcessFile(context.Background(), p, report.NewReportGenerator(nil),
		common.Options{Input: input, Output: output, Format: report.FormatJSON}, logger)

	assert.True(t, errors.Is(err, common.ErrViolations))
	require.NotNil(t, result)
	assert.Len(t, result.Violations, 1)
	assert.True(t, logger.HasEntry("WARN", "Statement has violations"))

	written, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(written), `"path": "line-1.amount"`)
}

func TestProcessFile_Errors(t *testing.T) {
	input := writeInput(t)

	tests := []struct {
		name     string
		opts     common.Options
		parseErr error
		expected string
	}{
		{
			name:     "missing input",
			opts:     common.Options{Format: report.FormatText},
			expected: "input file must be specified",
		},
		{
			name:     "input does not exist",
			opts:     common.Options{Input: filepath.Join(t.TempDir(), "missing.csv"), Format: report.FormatText},
			expected: "invalid input file: path does not exist",
		},
		{
			name:     "parse failure",
			opts:     common.Options{Input: input, Format: report.FormatText, Stdout: &bytes.Buffer{}},
			parseErr: errors.New("malformed CSV"),
			expected: "error parsing " + input + ": malformed CSV",
		},
		{
			name:     "unsupported report format",
			opts:     common.Options{Input: input, Format: "xml", Stdout: &bytes.Buffer{}},
			expected: "unsupported report format: xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &MockParser{}
			if tt.parseErr != nil {
				p.On("ParseFile", mock.Anything, input).Return(nil, tt.parseErr)
			} else {
				p.On("ParseFile", mock.Anything, input).Return(&models.Result{}, nil)
			}

			_, err := common.ProcessFile(context.Background(), p, report.NewReportGenerator(nil), tt.opts, logging.NewMockLogger())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expected)
		})
	}
}

func TestWriteReport_NoDestination(t *testing.T) {
	err := common.WriteReport(report.NewReportGenerator(nil), report.Report{}, common.Options{Format: report.FormatText})
	assert.EqualError(t, err, "no output file and no writer for the report")
}
