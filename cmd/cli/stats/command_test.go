package stats_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/datakit/cmd/cli/stats"
)

const (
	matrixFileName        = "matrix.txt"
	matrixFileContent     = "1 2\n3 4\n"
	commaMatrixContent    = "1,2\n3,4\n"
	raggedMatrixContent   = "1 2\n3\n"
	matrixFilePermissions = 0o644
	wideRowValueCount     = 40000
)

const scalarReportOutput = "======= ARRAY INFO =======\n" +
	"shape : (2, 2)\n" +
	"  max : 4\n" +
	"  min : 1\n" +
	" mean : 2.5\n" +
	"  var : 1.25\n"

const columnReportOutput = "======= ARRAY INFO =======\n" +
	"shape : (2, 2)\n" +
	"  max : [3 4]\n" +
	"  min : [1 2]\n" +
	" mean : [2 3]\n" +
	"  var : [1 1]\n"

func writeMatrixFixture(testInstance *testing.T, fileContent string) string {
	testInstance.Helper()

	matrixFilePath := filepath.Join(testInstance.TempDir(), matrixFileName)
	require.NoError(testInstance, os.WriteFile(matrixFilePath, []byte(fileContent), matrixFilePermissions))
	return matrixFilePath
}

func executeStatsCommand(testInstance *testing.T, configuration stats.CommandConfiguration, standardInput string, commandArguments ...string) (string, error) {
	testInstance.Helper()

	commandBuilder := stats.CommandBuilder{
		ConfigurationProvider: func() stats.CommandConfiguration {
			return configuration
		},
	}
	statsCommand, buildError := commandBuilder.Build()
	require.NoError(testInstance, buildError)

	var outputBuffer bytes.Buffer
	statsCommand.SetOut(&outputBuffer)
	statsCommand.SetErr(&outputBuffer)
	if len(standardInput) > 0 {
		statsCommand.SetIn(strings.NewReader(standardInput))
	}
	statsCommand.SetArgs(commandArguments)

	executionError := statsCommand.Execute()
	return outputBuffer.String(), executionError
}

func TestStatsCommandReportsFromFile(testInstance *testing.T) {
	testScenarios := []struct {
		title          string
		fileContent    string
		extraArguments []string
		expectedOutput string
	}{
		{
			title:          "scalarReportWithoutAxis",
			fileContent:    matrixFileContent,
			expectedOutput: scalarReportOutput,
		},
		{
			title:          "commaSeparatedValuesParse",
			fileContent:    commaMatrixContent,
			expectedOutput: scalarReportOutput,
		},
		{
			title:          "columnAxisFlagReducesPerColumn",
			fileContent:    matrixFileContent,
			extraArguments: []string{"--axis", "0"},
			expectedOutput: columnReportOutput,
		},
	}

	for _, testScenario := range testScenarios {
		testInstance.Run(testScenario.title, func(testInstance *testing.T) {
			matrixFilePath := writeMatrixFixture(testInstance, testScenario.fileContent)

			commandArguments := append([]string{matrixFilePath}, testScenario.extraArguments...)
			commandOutput, executionError := executeStatsCommand(testInstance, stats.CommandConfiguration{}, "", commandArguments...)
			require.NoError(testInstance, executionError)
			require.Equal(testInstance, testScenario.expectedOutput, commandOutput)
		})
	}
}

func TestStatsCommandReadsStandardInput(testInstance *testing.T) {
	commandOutput, executionError := executeStatsCommand(testInstance, stats.CommandConfiguration{}, matrixFileContent, "-")
	require.NoError(testInstance, executionError)
	require.Equal(testInstance, scalarReportOutput, commandOutput)
}

func TestStatsCommandParsesRowWiderThanDefaultScannerBuffer(testInstance *testing.T) {
	wideRowContent := strings.Repeat("1 ", wideRowValueCount-1) + "1\n"

	commandOutput, executionError := executeStatsCommand(testInstance, stats.CommandConfiguration{}, wideRowContent, "-")
	require.NoError(testInstance, executionError)

	expectedOutput := "======= ARRAY INFO =======\n" +
		fmt.Sprintf("shape : (1, %d)\n", wideRowValueCount) +
		"  max : 1\n" +
		"  min : 1\n" +
		" mean : 1\n" +
		"  var : 0\n"
	require.Equal(testInstance, expectedOutput, commandOutput)
}

func TestStatsCommandUsesConfiguredAxis(testInstance *testing.T) {
	matrixFilePath := writeMatrixFixture(testInstance, matrixFileContent)

	commandOutput, executionError := executeStatsCommand(testInstance, stats.CommandConfiguration{Axis: "0"}, "", matrixFilePath)
	require.NoError(testInstance, executionError)
	require.Equal(testInstance, columnReportOutput, commandOutput)
}

func TestStatsCommandFailures(testInstance *testing.T) {
	testScenarios := []struct {
		title            string
		fileContent      string
		extraArguments   []string
		expectedErrorCue string
	}{
		{
			title:            "raggedRowsRejected",
			fileContent:      raggedMatrixContent,
			expectedErrorCue: "expected 2",
		},
		{
			title:            "emptyInputRejected",
			fileContent:      "\n\n",
			expectedErrorCue: "no numeric rows",
		},
		{
			title:            "nonNumericValueRejected",
			fileContent:      "1 two\n",
			expectedErrorCue: "invalid numeric value",
		},
		{
			title:            "nonIntegerAxisRejected",
			fileContent:      matrixFileContent,
			extraArguments:   []string{"--axis", "columns"},
			expectedErrorCue: "invalid axis value",
		},
		{
			title:            "outOfRangeAxisRejected",
			fileContent:      matrixFileContent,
			extraArguments:   []string{"--axis", "2"},
			expectedErrorCue: "axis 2 out of range",
		},
	}

	for _, testScenario := range testScenarios {
		testInstance.Run(testScenario.title, func(testInstance *testing.T) {
			matrixFilePath := writeMatrixFixture(testInstance, testScenario.fileContent)

			commandArguments := append([]string{matrixFilePath}, testScenario.extraArguments...)
			_, executionError := executeStatsCommand(testInstance, stats.CommandConfiguration{}, "", commandArguments...)
			require.Error(testInstance, executionError)
			require.Contains(testInstance, executionError.Error(), testScenario.expectedErrorCue)
		})
	}
}
