package logging

import (
	"bytes"
	"io"
)

// PrefixWriter wraps an io.Writer and adds a prefix to each line.
type PrefixWriter struct {
	prefix  []byte
	writer  io.Writer
	partial []byte
}

// NewPrefixWriter creates a new PrefixWriter.
func NewPrefixWriter(prefix string, w io.Writer) *PrefixWriter {
	return &PrefixWriter{
		prefix: []byte(prefix),
		writer: w,
	}
}

// Write implements io.Writer. Data is held until a newline arrives, so a
// prefix is emitted exactly once per line even when a line spans several
// Write calls.
func (pw *PrefixWriter) Write(p []byte) (int, error) {
	pw.partial = append(pw.partial, p...)

	for {
		nl := bytes.IndexByte(pw.partial, '\n')
		if nl < 0 {
			break
		}
		if _, err := pw.writer.Write(pw.prefix); err != nil {
			return 0, err
		}
		if _, err := pw.writer.Write(pw.partial[:nl+1]); err != nil {
			return 0, err
		}
		pw.partial = pw.partial[nl+1:]
	}
	if len(pw.partial) == 0 {
		pw.partial = nil
	}

	return len(p), nil
}
