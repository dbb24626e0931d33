package tree

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/datakit/internal/foldertree"
	"github.com/temirov/datakit/internal/utils"
)

const (
	commandUseConstant               = "tree [directory]"
	commandShortDescriptionConstant  = "Render a directory as an ASCII tree"
	commandLongDescriptionConstant   = "tree walks a directory depth-first and prints one connector-prefixed line per entry, honoring a depth limit and an exclusion set."
	defaultRootDirectoryConstant     = "."
	maxDepthFlagNameConstant         = "max-depth"
	maxDepthFlagUsageConstant        = "Maximum depth to descend into subdirectories (-1 for unlimited)."
	excludeFlagNameConstant          = "exclude"
	excludeFlagUsageConstant         = "Entry name to skip along with its subtree (repeatable)."
	colorFlagNameConstant            = "color"
	colorFlagUsageConstant           = "Style directory lines for terminal display."
	directoryLineForegroundConstant  = "12"
	renderedTreeDebugMessageConstant = "folder tree rendered"
	logFieldRootDirectoryConstant    = "root_directory"
	logFieldLineCountConstant        = "line_count"
)

var directoryLineStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(directoryLineForegroundConstant))

// LoggerProvider supplies the structured logger shared across the CLI.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the tree command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider func() CommandConfiguration
	Renderer              *foldertree.Renderer
}

// Build constructs the tree command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.MaximumNArgs(1),
		RunE:  builder.run,
	}

	command.Flags().Int(maxDepthFlagNameConstant, foldertree.UnlimitedDepth, maxDepthFlagUsageConstant)
	command.Flags().StringArray(excludeFlagNameConstant, nil, excludeFlagUsageConstant)
	command.Flags().Bool(colorFlagNameConstant, false, colorFlagUsageConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()

	maximumDepth := configuration.MaxDepth
	if command.Flags().Changed(maxDepthFlagNameConstant) {
		maximumDepth, _ = command.Flags().GetInt(maxDepthFlagNameConstant)
	}

	excludedNames := configuration.Exclude
	if command.Flags().Changed(excludeFlagNameConstant) {
		excludedNames, _ = command.Flags().GetStringArray(excludeFlagNameConstant)
	}

	colorizeDirectories := configuration.Color
	if command.Flags().Changed(colorFlagNameConstant) {
		colorizeDirectories, _ = command.Flags().GetBool(colorFlagNameConstant)
	}

	rootDirectory := defaultRootDirectoryConstant
	if len(arguments) > 0 {
		rootDirectory = arguments[0]
	}

	renderer := builder.Renderer
	if renderer == nil {
		renderer = foldertree.NewRenderer()
	}

	renderedLines, renderError := renderer.RenderLines(rootDirectory, foldertree.Options{
		MaxDepth:   maximumDepth,
		Exclusions: excludedNames,
	})
	if renderError != nil {
		return renderError
	}

	outputWriter := utils.NewFlushingWriter(command.OutOrStdout())
	for _, renderedLine := range renderedLines {
		lineText := renderedLine.Text
		if colorizeDirectories && renderedLine.Directory {
			lineText = directoryLineStyle.Render(lineText)
		}
		if _, writeError := fmt.Fprintln(outputWriter, lineText); writeError != nil {
			return writeError
		}
	}

	resolveLogger(builder.LoggerProvider).Debug(
		renderedTreeDebugMessageConstant,
		zap.String(logFieldRootDirectoryConstant, rootDirectory),
		zap.Int(logFieldLineCountConstant, len(renderedLines)),
	)

	return nil
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return CommandConfiguration{MaxDepth: foldertree.UnlimitedDepth}
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
