package utils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/datakit/internal/utils"
)

const (
	loaderConfigurationName        = "config"
	loaderConfigurationType        = "yaml"
	loaderEnvironmentPrefix        = "DATAKIT"
	loaderConfigurationFileName    = "config.yaml"
	loaderConfigurationFileContent = "common:\n  log_level: warn\n"
	loaderEmbeddedDefaultsContent  = "common:\n  log_level: error\n  log_format: console\n"
	loaderLogLevelDefaultKey       = "common.log_level"
	loaderLogLevelEnvironmentName  = "DATAKIT_COMMON_LOG_LEVEL"
	loaderFilePermissions          = 0o644
)

type loaderTestConfiguration struct {
	Common struct {
		LogLevel  string `mapstructure:"log_level"`
		LogFormat string `mapstructure:"log_format"`
	} `mapstructure:"common"`
}

func newLoaderForDirectory(searchDirectory string) *utils.ConfigurationLoader {
	return utils.NewConfigurationLoader(
		loaderConfigurationName,
		loaderConfigurationType,
		loaderEnvironmentPrefix,
		[]string{searchDirectory},
	)
}

func TestConfigurationLoaderAppliesDefaultsWithoutFile(testInstance *testing.T) {
	configurationLoader := newLoaderForDirectory(testInstance.TempDir())

	var loadedConfiguration loaderTestConfiguration
	loadedMetadata, loadError := configurationLoader.LoadConfiguration(
		"",
		map[string]any{loaderLogLevelDefaultKey: string(utils.LogLevelInfo)},
		&loadedConfiguration,
	)
	require.NoError(testInstance, loadError)
	require.Empty(testInstance, loadedMetadata.ConfigFileUsed)
	require.Equal(testInstance, string(utils.LogLevelInfo), loadedConfiguration.Common.LogLevel)
}

func TestConfigurationLoaderReadsDiscoveredFile(testInstance *testing.T) {
	searchDirectory := testInstance.TempDir()
	configurationFilePath := filepath.Join(searchDirectory, loaderConfigurationFileName)
	require.NoError(testInstance, os.WriteFile(configurationFilePath, []byte(loaderConfigurationFileContent), loaderFilePermissions))

	configurationLoader := newLoaderForDirectory(searchDirectory)

	var loadedConfiguration loaderTestConfiguration
	loadedMetadata, loadError := configurationLoader.LoadConfiguration(
		"",
		map[string]any{loaderLogLevelDefaultKey: string(utils.LogLevelInfo)},
		&loadedConfiguration,
	)
	require.NoError(testInstance, loadError)
	require.Equal(testInstance, configurationFilePath, loadedMetadata.ConfigFileUsed)
	require.Equal(testInstance, string(utils.LogLevelWarn), loadedConfiguration.Common.LogLevel)
}

func TestConfigurationLoaderMergesEmbeddedDefaults(testInstance *testing.T) {
	configurationLoader := newLoaderForDirectory(testInstance.TempDir())
	configurationLoader.SetEmbeddedDefaults([]byte(loaderEmbeddedDefaultsContent))

	var loadedConfiguration loaderTestConfiguration
	_, loadError := configurationLoader.LoadConfiguration("", nil, &loadedConfiguration)
	require.NoError(testInstance, loadError)
	require.Equal(testInstance, string(utils.LogLevelError), loadedConfiguration.Common.LogLevel)
	require.Equal(testInstance, string(utils.LogFormatConsole), loadedConfiguration.Common.LogFormat)
}

func TestConfigurationLoaderHonorsEnvironmentOverrides(testInstance *testing.T) {
	testInstance.Setenv(loaderLogLevelEnvironmentName, string(utils.LogLevelDebug))

	configurationLoader := newLoaderForDirectory(testInstance.TempDir())

	var loadedConfiguration loaderTestConfiguration
	_, loadError := configurationLoader.LoadConfiguration(
		"",
		map[string]any{loaderLogLevelDefaultKey: string(utils.LogLevelInfo)},
		&loadedConfiguration,
	)
	require.NoError(testInstance, loadError)
	require.Equal(testInstance, string(utils.LogLevelDebug), loadedConfiguration.Common.LogLevel)
}

func TestConfigurationLoaderReportsExplicitFileFailures(testInstance *testing.T) {
	configurationLoader := newLoaderForDirectory(testInstance.TempDir())

	var loadedConfiguration loaderTestConfiguration
	_, loadError := configurationLoader.LoadConfiguration(
		filepath.Join(testInstance.TempDir(), "missing.yaml"),
		nil,
		&loadedConfiguration,
	)
	require.Error(testInstance, loadError)
}
