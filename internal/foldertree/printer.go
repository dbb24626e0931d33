package foldertree

import "io"

// Print renders the tree rooted at rootPath and writes each line to writer as
// it is produced. It is a formatting layer over RenderLines and shares its
// validation, exclusion, and permission-recovery behavior.
func (renderer *Renderer) Print(writer io.Writer, rootPath string, options Options) error {
	renderedLines, renderError := renderer.RenderLines(rootPath, options)
	if renderError != nil {
		return renderError
	}

	for _, renderedLine := range renderedLines {
		if _, writeError := io.WriteString(writer, renderedLine.Text+lineSeparatorConstant); writeError != nil {
			return writeError
		}
	}
	return nil
}
