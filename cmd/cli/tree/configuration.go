package tree

import "github.com/temirov/datakit/internal/foldertree"

const (
	maxDepthConfigurationKeySuffixConstant = ".max_depth"
	excludeConfigurationKeySuffixConstant  = ".exclude"
	colorConfigurationKeySuffixConstant    = ".color"
)

// CommandConfiguration captures configured defaults for the tree command.
type CommandConfiguration struct {
	MaxDepth int      `mapstructure:"max_depth"`
	Exclude  []string `mapstructure:"exclude"`
	Color    bool     `mapstructure:"color"`
}

// DefaultConfigurationValues returns the tree defaults keyed under configurationPrefix.
func DefaultConfigurationValues(configurationPrefix string) map[string]any {
	return map[string]any{
		configurationPrefix + maxDepthConfigurationKeySuffixConstant: foldertree.UnlimitedDepth,
		configurationPrefix + excludeConfigurationKeySuffixConstant:  []string{},
		configurationPrefix + colorConfigurationKeySuffixConstant:    false,
	}
}
