package utils

import (
	"io"
	"sync"
)

// FlushingWriter makes data written to buffered writers visible immediately by
// invoking Flush after each write when the underlying writer supports it.
type FlushingWriter struct {
	writer io.Writer
	mutex  sync.Mutex
}

// NewFlushingWriter wraps the provided writer. Wrapping an existing
// FlushingWriter returns it unchanged.
func NewFlushingWriter(writer io.Writer) io.Writer {
	if writer == nil {
		return nil
	}
	if alreadyWrapped, isFlushingWriter := writer.(*FlushingWriter); isFlushingWriter {
		return alreadyWrapped
	}
	return &FlushingWriter{writer: writer}
}

// Write delegates to the underlying writer and flushes it when possible.
func (flushingWriter *FlushingWriter) Write(data []byte) (int, error) {
	if flushingWriter == nil || flushingWriter.writer == nil {
		return 0, nil
	}

	flushingWriter.mutex.Lock()
	defer flushingWriter.mutex.Unlock()

	writtenByteCount, writeError := flushingWriter.writer.Write(data)
	if writeError != nil {
		return writtenByteCount, writeError
	}

	if flushableWriter, supportsFlush := flushingWriter.writer.(interface{ Flush() error }); supportsFlush {
		if flushError := flushableWriter.Flush(); flushError != nil {
			return writtenByteCount, flushError
		}
	}

	return writtenByteCount, nil
}
