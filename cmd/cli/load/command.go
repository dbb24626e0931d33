package load

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/datakit/internal/batchload"
	"github.com/temirov/datakit/internal/utils"
)

const (
	commandUseConstant                 = "load <manifest>"
	commandShortDescriptionConstant    = "Load manifest-listed files in fixed-size batches"
	commandLongDescriptionConstant     = "load reads a YAML manifest naming files to load, reads each file's contents batch by batch, and reports per-batch progress."
	batchSizeFlagNameConstant          = "batch-size"
	batchSizeFlagUsageConstant         = "Number of files per batch; overrides the manifest and configuration."
	manifestLoadedDebugMessageConstant = "manifest loaded"
	batchLoadedInfoMessageConstant     = "batch loaded"
	summaryTemplateConstant            = "loaded %d files in %d batches (%d bytes)\n"
	logFieldManifestPathConstant       = "manifest_path"
	logFieldBatchSizeConstant          = "batch_size"
	logFieldConfigurationFileConstant  = "configuration_file"
	logFieldBatchIndexConstant         = "batch_index"
	logFieldFileCountConstant          = "file_count"
	logFieldByteCountConstant          = "byte_count"
)

// LoggerProvider supplies the structured logger shared across the CLI.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the load command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider func() CommandConfiguration
}

// Build constructs the load command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.ExactArgs(1),
		RunE:  builder.run,
	}

	command.Flags().Int(batchSizeFlagNameConstant, 0, batchSizeFlagUsageConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	manifest, manifestError := LoadManifest(arguments[0])
	if manifestError != nil {
		return manifestError
	}

	batchSize := builder.resolveBatchSize(command, manifest)

	batchSequence, constructionError := batchload.Batches(manifest.Files, batchSize, func(filePath string) ([]byte, error) {
		return os.ReadFile(filePath)
	})
	if constructionError != nil {
		return constructionError
	}

	logger := resolveLogger(builder.LoggerProvider)

	manifestLoadedFields := []zap.Field{
		zap.String(logFieldManifestPathConstant, arguments[0]),
		zap.Int(logFieldFileCountConstant, len(manifest.Files)),
		zap.Int(logFieldBatchSizeConstant, batchSize),
	}
	if configurationFilePath, configurationFilePresent := utils.NewCommandContextAccessor().ConfigurationFilePath(command.Context()); configurationFilePresent {
		manifestLoadedFields = append(manifestLoadedFields, zap.String(logFieldConfigurationFileConstant, configurationFilePath))
	}
	logger.Debug(manifestLoadedDebugMessageConstant, manifestLoadedFields...)

	loadedFileCount := 0
	loadedBatchCount := 0
	loadedByteCount := 0
	for loadedBatch, loadError := range batchSequence {
		if loadError != nil {
			return loadError
		}

		batchByteCount := 0
		for _, loadedContent := range loadedBatch {
			batchByteCount += len(loadedContent)
		}

		logger.Info(
			batchLoadedInfoMessageConstant,
			zap.Int(logFieldBatchIndexConstant, loadedBatchCount),
			zap.Int(logFieldFileCountConstant, len(loadedBatch)),
			zap.Int(logFieldByteCountConstant, batchByteCount),
		)

		loadedFileCount += len(loadedBatch)
		loadedByteCount += batchByteCount
		loadedBatchCount++
	}

	_, writeError := fmt.Fprintf(command.OutOrStdout(), summaryTemplateConstant, loadedFileCount, loadedBatchCount, loadedByteCount)
	return writeError
}

// resolveBatchSize prefers an explicit flag, then the manifest, then the
// configured default.
func (builder *CommandBuilder) resolveBatchSize(command *cobra.Command, manifest Manifest) int {
	if command.Flags().Changed(batchSizeFlagNameConstant) {
		flagBatchSize, _ := command.Flags().GetInt(batchSizeFlagNameConstant)
		return flagBatchSize
	}
	if manifest.BatchSize > 0 {
		return manifest.BatchSize
	}

	if builder.ConfigurationProvider != nil {
		if configuredBatchSize := builder.ConfigurationProvider().BatchSize; configuredBatchSize > 0 {
			return configuredBatchSize
		}
	}
	return defaultBatchSizeConstant
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
