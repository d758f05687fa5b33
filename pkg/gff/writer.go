package gff

import (
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/bnbowman/gffio/pkg/tabular"
)

// Writer encodes records into the nine-column tab-delimited form, one
// line per record. Writes are buffered; call Flush (or Close) to drain.
type Writer struct {
	inner *tabular.Writer
	file  *os.File
}

// NewWriter creates a Writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		inner: tabular.NewWriter(w, tabular.Config{Delimiter: '\t', Flexible: true}),
	}
}

// Create writes GFF3 to the given file path, truncating any existing
// file. The caller owns the returned Writer and must Close it.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	w := NewWriter(f)
	w.file = f
	return w, nil
}

// Write emits one record. Score and strand are written from their stored
// text, so a decoded record round-trips byte-for-byte. Attribute keys are
// sorted to make the output deterministic.
func (w *Writer) Write(rec *Record) error {
	return w.inner.Write([]string{
		rec.seqname,
		rec.source,
		rec.featureType,
		strconv.FormatUint(rec.start, 10),
		strconv.FormatUint(rec.end, 10),
		rec.score,
		rec.strand,
		rec.frame,
		encodeAttributes(rec.attributes),
	})
}

// Flush writes any buffered records to the underlying stream.
func (w *Writer) Flush() error { return w.inner.Flush() }

// Close flushes buffered records and closes the underlying file when the
// Writer owns one.
func (w *Writer) Close() error {
	err := w.inner.Flush()
	if w.file != nil {
		if closeErr := w.file.Close(); err == nil {
			err = closeErr
		}
		w.file = nil
	}
	return err
}

// encodeAttributes joins the attribute map as key=value pairs separated
// by ';', with no trailing separator. An empty map is an empty string.
func encodeAttributes(attrs map[string]string) string {
	if len(attrs) == 0 {
		return ""
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(attrs[k])
	}
	return b.String()
}
