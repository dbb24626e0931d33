package stats

const (
	axisConfigurationKeySuffixConstant = ".axis"
)

// CommandConfiguration captures configured defaults for the stats command.
type CommandConfiguration struct {
	// Axis is the reduction axis as a decimal string, empty for all elements.
	Axis string `mapstructure:"axis"`
}

// DefaultConfigurationValues returns the stats defaults keyed under configurationPrefix.
func DefaultConfigurationValues(configurationPrefix string) map[string]any {
	return map[string]any{
		configurationPrefix + axisConfigurationKeySuffixConstant: "",
	}
}
