package stats

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/datakit/internal/arrayinfo"
)

const (
	commandUseConstant              = "stats <file>"
	commandShortDescriptionConstant = "Report summary statistics for a numeric matrix"
	commandLongDescriptionConstant  = "stats parses a whitespace- or comma-separated block of numbers and reports its shape, max, min, mean, and variance. Pass - to read standard input."
	standardInputArgumentConstant   = "-"
	axisFlagNameConstant            = "axis"
	axisFlagUsageConstant           = "Reduction axis (0 per column, 1 per row); omit to reduce over all elements."
	statisticsDebugMessageConstant  = "array statistics reported"
	logFieldInputConstant           = "input"
	logFieldRowCountConstant        = "row_count"
	logFieldColumnCountConstant     = "column_count"
)

// LoggerProvider supplies the structured logger shared across the CLI.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the stats command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider func() CommandConfiguration
}

// Build constructs the stats command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.ExactArgs(1),
		RunE:  builder.run,
	}

	command.Flags().String(axisFlagNameConstant, "", axisFlagUsageConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()

	axisValue := configuration.Axis
	if command.Flags().Changed(axisFlagNameConstant) {
		axisValue, _ = command.Flags().GetString(axisFlagNameConstant)
	}

	reductionAxis, axisError := resolveAxis(axisValue)
	if axisError != nil {
		return axisError
	}

	inputReader, closeInput, inputError := openInput(command, arguments[0])
	if inputError != nil {
		return inputError
	}
	defer closeInput()

	matrixValue, parseError := parseMatrix(inputReader)
	if parseError != nil {
		return parseError
	}

	if printError := arrayinfo.Fprint(command.OutOrStdout(), matrixValue, arrayinfo.Options{Axis: reductionAxis}); printError != nil {
		return printError
	}

	rowCount, columnCount := matrixValue.Dims()
	resolveLogger(builder.LoggerProvider).Debug(
		statisticsDebugMessageConstant,
		zap.String(logFieldInputConstant, arguments[0]),
		zap.Int(logFieldRowCountConstant, rowCount),
		zap.Int(logFieldColumnCountConstant, columnCount),
	)

	return nil
}

func openInput(command *cobra.Command, inputArgument string) (io.Reader, func(), error) {
	if inputArgument == standardInputArgumentConstant {
		return command.InOrStdin(), func() {}, nil
	}

	inputFile, openError := os.Open(inputArgument)
	if openError != nil {
		return nil, nil, openError
	}
	return inputFile, func() { _ = inputFile.Close() }, nil
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return CommandConfiguration{}
	}
	return builder.ConfigurationProvider()
}

func resolveLogger(loggerProvider LoggerProvider) *zap.Logger {
	if loggerProvider == nil {
		return zap.NewNop()
	}
	if providedLogger := loggerProvider(); providedLogger != nil {
		return providedLogger
	}
	return zap.NewNop()
}
