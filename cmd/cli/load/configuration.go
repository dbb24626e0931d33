package load

const (
	batchSizeConfigurationKeySuffixConstant = ".batch_size"
	defaultBatchSizeConstant                = 16
)

// CommandConfiguration captures configured defaults for the load command.
type CommandConfiguration struct {
	BatchSize int `mapstructure:"batch_size"`
}

// DefaultConfigurationValues returns the load defaults keyed under configurationPrefix.
func DefaultConfigurationValues(configurationPrefix string) map[string]any {
	return map[string]any{
		configurationPrefix + batchSizeConfigurationKeySuffixConstant: defaultBatchSizeConstant,
	}
}
