package fileenum

import (
	"os"
	"path/filepath"
	"strings"
)

// Options control extension filtering and path resolution for a listing.
type Options struct {
	// Extensions holds suffixes compared case-insensitively against each
	// file's extension, leading dot included (".txt", not "txt").
	// An empty set admits every regular file.
	Extensions []string
	// AbsolutePaths resolves every returned path to absolute form.
	AbsolutePaths bool
}

// Enumerator lists regular files contained directly inside a directory.
type Enumerator struct{}

// NewEnumerator constructs a file enumerator.
func NewEnumerator() *Enumerator {
	return &Enumerator{}
}

// ListFiles returns the paths of the regular files inside directoryPath that
// satisfy the options, each joined with directoryPath. Directories are
// excluded unconditionally; entries whose metadata cannot be resolved
// (broken symlinks) are skipped.
func (enumerator *Enumerator) ListFiles(directoryPath string, options Options) ([]string, error) {
	directoryEntries, readError := os.ReadDir(directoryPath)
	if readError != nil {
		return nil, readError
	}

	admittedExtensions := normalizeExtensions(options.Extensions)

	filePaths := make([]string, 0, len(directoryEntries))
	for _, directoryEntry := range directoryEntries {
		entryPath := filepath.Join(directoryPath, directoryEntry.Name())

		// os.Stat follows symlinks, so a link to a regular file counts.
		entryInfo, statError := os.Stat(entryPath)
		if statError != nil {
			continue
		}
		if !entryInfo.Mode().IsRegular() {
			continue
		}

		if len(admittedExtensions) > 0 {
			entryExtension := strings.ToLower(filepath.Ext(directoryEntry.Name()))
			if _, extensionAdmitted := admittedExtensions[entryExtension]; !extensionAdmitted {
				continue
			}
		}

		if options.AbsolutePaths {
			absolutePath, resolveError := filepath.Abs(entryPath)
			if resolveError != nil {
				return nil, resolveError
			}
			entryPath = absolutePath
		}

		filePaths = append(filePaths, entryPath)
	}

	return filePaths, nil
}

func normalizeExtensions(extensions []string) map[string]struct{} {
	normalizedExtensions := make(map[string]struct{}, len(extensions))
	for _, extension := range extensions {
		normalizedExtensions[strings.ToLower(extension)] = struct{}{}
	}
	return normalizedExtensions
}
