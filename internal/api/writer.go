package api

import "io"

// CountingWriter records the number of bytes passed through to the wrapped writer.
type CountingWriter struct {
	io.Writer
	bytes int64
}

func NewCountingWriter(w io.Writer) *CountingWriter {
	return &CountingWriter{Writer: w}
}

func (w *CountingWriter) Write(b []byte) (int, error) {
	n, err := w.Writer.Write(b)
	w.bytes += int64(n)
	return n, err
}

func (w *CountingWriter) Bytes() int64 { return w.bytes }
