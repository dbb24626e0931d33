package files

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/datakit/internal/fileenum"
)

const (
	commandUseConstant              = "files [directory]"
	commandShortDescriptionConstant = "List the regular files inside a directory"
	commandLongDescriptionConstant  = "files lists the regular files directly inside a directory, optionally filtered by extension and resolved to absolute paths."
	defaultDirectoryConstant        = "."
	extensionFlagNameConstant       = "ext"
	extensionFlagUsageConstant      = "File extension to admit, leading dot included (repeatable)."
	absoluteFlagNameConstant        = "absolute"
	absoluteFlagUsageConstant       = "Resolve returned paths to absolute form."
	filesListedDebugMessageConstant = "files listed"
	logFieldDirectoryConstant       = "directory"
	logFieldFileCountConstant       = "file_count"
)

// LoggerProvider supplies the structured logger shared across the CLI.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the files command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider func() CommandConfiguration
	Enumerator            *fileenum.Enumerator
}

// Build constructs the files command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.MaximumNArgs(1),
		RunE:  builder.run,
	}

	command.Flags().StringArray(extensionFlagNameConstant, nil, extensionFlagUsageConstant)
	command.Flags().Bool(absoluteFlagNameConstant, false, absoluteFlagUsageConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()

	admittedExtensions := configuration.Extensions
	if command.Flags().Changed(extensionFlagNameConstant) {
		admittedExtensions, _ = command.Flags().GetStringArray(extensionFlagNameConstant)
	}

	resolveAbsolutePaths := configuration.Absolute
	if command.Flags().Changed(absoluteFlagNameConstant) {
		resolveAbsolutePaths, _ = command.Flags().GetBool(absoluteFlagNameConstant)
	}

	targetDirectory := defaultDirectoryConstant
	if len(arguments) > 0 {
		targetDirectory = arguments[0]
	}

	enumerator := builder.Enumerator
	if enumerator == nil {
		enumerator = fileenum.NewEnumerator()
	}

	listedPaths, listError := enumerator.ListFiles(targetDirectory, fileenum.Options{
		Extensions:    admittedExtensions,
		AbsolutePaths: resolveAbsolutePaths,
	})
	if listError != nil {
		return listError
	}

	for _, listedPath := range listedPaths {
		if _, writeError := fmt.Fprintln(command.OutOrStdout(), listedPath); writeError != nil {
			return writeError
		}
	}

	resolveLogger(builder.LoggerProvider).Debug(
		filesListedDebugMessageConstant,
		zap.String(logFieldDirectoryConstant, targetDirectory),
		zap.Int(logFieldFileCountConstant, len(listedPaths)),
	)

	return nil
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
