package foldertree

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// UnlimitedDepth disables the maximum-depth cutoff during traversal.
const UnlimitedDepth = -1

const (
	intermediateConnectorConstant       = "├── "
	terminalConnectorConstant           = "└── "
	intermediatePrefixExtensionConstant = "│   "
	terminalPrefixExtensionConstant     = "    "
	directorySuffixConstant             = "/"
	lineSeparatorConstant               = "\n"
	permissionDeniedTemplateConstant    = "%sPermission denied: %s"
	validationErrorTemplateConstant     = "path %q %s"
	pathMissingReasonConstant           = "does not exist"
	notDirectoryReasonConstant          = "is not a directory"
)

// ValidationError reports a root path unfit for traversal.
type ValidationError struct {
	Path   string
	Reason string
}

// Error describes the offending path and the reason it was rejected.
func (validationError *ValidationError) Error() string {
	return fmt.Sprintf(validationErrorTemplateConstant, validationError.Path, validationError.Reason)
}

// Line is one rendered row of the tree, annotated with whether it depicts a directory.
type Line struct {
	Text      string
	Directory bool
}

// Options bound the traversal and name the entries skipped entirely.
type Options struct {
	MaxDepth   int
	Exclusions []string
}

// Renderer walks a directory tree depth-first and produces its textual representation.
type Renderer struct{}

// NewRenderer constructs a folder tree renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render returns the rendered tree as a single newline-joined block.
func (renderer *Renderer) Render(rootPath string, options Options) (string, error) {
	renderedLines, renderError := renderer.RenderLines(rootPath, options)
	if renderError != nil {
		return "", renderError
	}

	lineTexts := make([]string, 0, len(renderedLines))
	for _, renderedLine := range renderedLines {
		lineTexts = append(lineTexts, renderedLine.Text)
	}
	return strings.Join(lineTexts, lineSeparatorConstant), nil
}

// RenderLines walks rootPath and returns one line per visited entry, the root
// line first. Excluded names contribute no line and are never descended into.
func (renderer *Renderer) RenderLines(rootPath string, options Options) ([]Line, error) {
	rootInfo, statError := os.Stat(rootPath)
	if statError != nil {
		if errors.Is(statError, fs.ErrNotExist) {
			return nil, &ValidationError{Path: rootPath, Reason: pathMissingReasonConstant}
		}
		return nil, statError
	}
	if !rootInfo.IsDir() {
		return nil, &ValidationError{Path: rootPath, Reason: notDirectoryReasonConstant}
	}

	resolvedRootPath, resolveError := filepath.Abs(rootPath)
	if resolveError != nil {
		return nil, resolveError
	}

	excludedNames := make(map[string]struct{}, len(options.Exclusions))
	for _, excludedName := range options.Exclusions {
		excludedNames[excludedName] = struct{}{}
	}

	renderedLines := []Line{{Text: filepath.Base(resolvedRootPath) + directorySuffixConstant, Directory: true}}
	return renderer.renderChildren(rootPath, options.MaxDepth, excludedNames, 0, "", renderedLines)
}

func (renderer *Renderer) renderChildren(directoryPath string, maximumDepth int, excludedNames map[string]struct{}, currentDepth int, linePrefix string, renderedLines []Line) ([]Line, error) {
	directoryEntries, readError := os.ReadDir(directoryPath)
	if readError != nil {
		if errors.Is(readError, fs.ErrPermission) {
			placeholderText := fmt.Sprintf(permissionDeniedTemplateConstant, linePrefix, directoryPath)
			return append(renderedLines, Line{Text: placeholderText}), nil
		}
		return nil, readError
	}

	// os.ReadDir returns entries sorted by name, so exclusion filtering
	// preserves the required lexicographic order.
	visibleEntries := make([]fs.DirEntry, 0, len(directoryEntries))
	for _, directoryEntry := range directoryEntries {
		if _, isExcluded := excludedNames[directoryEntry.Name()]; isExcluded {
			continue
		}
		visibleEntries = append(visibleEntries, directoryEntry)
	}

	for entryIndex, directoryEntry := range visibleEntries {
		entryIsLast := entryIndex == len(visibleEntries)-1

		connector := intermediateConnectorConstant
		childPrefixExtension := intermediatePrefixExtensionConstant
		if entryIsLast {
			connector = terminalConnectorConstant
			childPrefixExtension = terminalPrefixExtensionConstant
		}

		entryText := linePrefix + connector + directoryEntry.Name()
		if directoryEntry.IsDir() {
			entryText += directorySuffixConstant
		}
		renderedLines = append(renderedLines, Line{Text: entryText, Directory: directoryEntry.IsDir()})

		if directoryEntry.IsDir() && (maximumDepth == UnlimitedDepth || currentDepth < maximumDepth) {
			childLines, childError := renderer.renderChildren(
				filepath.Join(directoryPath, directoryEntry.Name()),
				maximumDepth,
				excludedNames,
				currentDepth+1,
				linePrefix+childPrefixExtension,
				renderedLines,
			)
			if childError != nil {
				return nil, childError
			}
			renderedLines = childLines
		}
	}

	return renderedLines, nil
}
