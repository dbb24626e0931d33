package load

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	manifestReadErrorTemplateConstant     = "failed to load manifest: %w"
	manifestParseErrorTemplateConstant    = "failed to parse manifest: %w"
	manifestEmptyFilesMessageConstant     = "manifest must list at least one file"
	manifestBlankPathTemplateConstant     = "manifest file entry %d is blank"
	manifestNegativeBatchTemplateConstant = "manifest batch_size must not be negative, got %d"
)

// Manifest describes the files to load and an optional batch size override.
type Manifest struct {
	BatchSize int      `yaml:"batch_size"`
	Files     []string `yaml:"files"`
}

// LoadManifest reads and validates a YAML manifest. A zero batch size means
// the manifest defers to the configured default.
func LoadManifest(manifestPath string) (Manifest, error) {
	manifestData, readError := os.ReadFile(manifestPath)
	if readError != nil {
		return Manifest{}, fmt.Errorf(manifestReadErrorTemplateConstant, readError)
	}

	var manifest Manifest
	if parseError := yaml.Unmarshal(manifestData, &manifest); parseError != nil {
		return Manifest{}, fmt.Errorf(manifestParseErrorTemplateConstant, parseError)
	}

	if manifest.BatchSize < 0 {
		return Manifest{}, fmt.Errorf(manifestNegativeBatchTemplateConstant, manifest.BatchSize)
	}
	if len(manifest.Files) == 0 {
		return Manifest{}, errors.New(manifestEmptyFilesMessageConstant)
	}
	for fileIndex, filePath := range manifest.Files {
		if len(strings.TrimSpace(filePath)) == 0 {
			return Manifest{}, fmt.Errorf(manifestBlankPathTemplateConstant, fileIndex)
		}
	}

	return manifest, nil
}
