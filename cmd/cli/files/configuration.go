package files

const (
	extensionsConfigurationKeySuffixConstant = ".extensions"
	absoluteConfigurationKeySuffixConstant   = ".absolute"
)

// CommandConfiguration captures configured defaults for the files command.
type CommandConfiguration struct {
	Extensions []string `mapstructure:"extensions"`
	Absolute   bool     `mapstructure:"absolute"`
}

// DefaultConfigurationValues returns the files defaults keyed under configurationPrefix.
func DefaultConfigurationValues(configurationPrefix string) map[string]any {
	return map[string]any{
		configurationPrefix + extensionsConfigurationKeySuffixConstant: []string{},
		configurationPrefix + absoluteConfigurationKeySuffixConstant:   false,
	}
}
