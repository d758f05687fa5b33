package tabular

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Config controls how rows are split into fields and reassembled.
type Config struct {
	Delimiter  byte // field separator within a row (default '\t')
	Terminator byte // record separator between rows (default '\n')
	HasHeader  bool // first row is a header, surfaced via Reader.Header
	Flexible   bool // tolerate rows whose field count differs from Columns
	Columns    int  // expected fields per row; 0 locks to the first row's count
}

func (c Config) withDefaults() Config {
	if c.Delimiter == 0 {
		c.Delimiter = '\t'
	}
	if c.Terminator == 0 {
		c.Terminator = '\n'
	}
	return c
}

// ErrFieldCount signals a row whose field count differs from the expected
// column count. It is wrapped by *RowError.
var ErrFieldCount = errors.New("unexpected field count")

// RowError reports a problem with a single row.
type RowError struct {
	Row  int // 1-based row number, headers included
	Want int
	Got  int
}

func (e *RowError) Error() string {
	return fmt.Sprintf("tabular: row %d: %v: got %d fields, want %d", e.Row, ErrFieldCount, e.Got, e.Want)
}

func (e *RowError) Unwrap() error { return ErrFieldCount }

// Reader decodes rows from an underlying byte stream. It is single-pass
// and forward-only; the caller drives advancement by calling Read.
type Reader struct {
	scanner *bufio.Scanner
	cfg     Config
	columns int
	header  []string
	row     int
}

// NewReader creates a Reader over r with the given configuration.
func NewReader(r io.Reader, cfg Config) *Reader {
	cfg = cfg.withDefaults()
	s := bufio.NewScanner(r)
	s.Split(splitOn(cfg.Terminator))
	return &Reader{scanner: s, cfg: cfg, columns: cfg.Columns}
}

// splitOn returns a bufio.SplitFunc that tokenizes on a single terminator
// byte. A final token without a trailing terminator is still produced.
func splitOn(term byte) bufio.SplitFunc {
	return func(data []byte, atEOF bool) (int, []byte, error) {
		if atEOF && len(data) == 0 {
			return 0, nil, nil
		}
		if i := bytes.IndexByte(data, term); i >= 0 {
			return i + 1, data[:i], nil
		}
		if atEOF {
			return len(data), data, nil
		}
		return 0, nil, nil
	}
}

// Read returns the ordered text fields of the next row. io.EOF signals
// end of input. A field-count mismatch is reported for that row only:
// the offending fields are returned alongside a *RowError and subsequent
// rows remain readable.
func (r *Reader) Read() ([]string, error) {
	for {
		if !r.scanner.Scan() {
			if err := r.scanner.Err(); err != nil {
				return nil, err
			}
			return nil, io.EOF
		}
		r.row++
		raw := r.scanner.Text()
		if r.cfg.Terminator == '\n' {
			raw = strings.TrimSuffix(raw, "\r")
		}
		fields := strings.Split(raw, string(r.cfg.Delimiter))
		if r.cfg.HasHeader && r.header == nil {
			r.header = fields
			continue
		}
		if !r.cfg.Flexible {
			if r.columns == 0 {
				r.columns = len(fields)
			} else if len(fields) != r.columns {
				return fields, &RowError{Row: r.row, Want: r.columns, Got: len(fields)}
			}
		}
		return fields, nil
	}
}

// Header returns the header row, or nil if the input had none (or no row
// has been read yet).
func (r *Reader) Header() []string { return r.header }

// Row returns the 1-based number of the most recently read row.
func (r *Reader) Row() int { return r.row }

// Writer encodes rows onto an underlying byte stream. Writes are buffered;
// call Flush to drain the buffer.
type Writer struct {
	w       *bufio.Writer
	cfg     Config
	columns int
}

// NewWriter creates a Writer over w with the given configuration.
func NewWriter(w io.Writer, cfg Config) *Writer {
	cfg = cfg.withDefaults()
	return &Writer{w: bufio.NewWriter(w), cfg: cfg, columns: cfg.Columns}
}

// Write emits one row followed by the terminator. When the Writer is not
// flexible, the field count is checked against Config.Columns (or locked
// to the first row written).
func (w *Writer) Write(fields []string) error {
	if !w.cfg.Flexible {
		if w.columns == 0 {
			w.columns = len(fields)
		} else if len(fields) != w.columns {
			return &RowError{Want: w.columns, Got: len(fields)}
		}
	}
	for i, f := range fields {
		if i > 0 {
			if err := w.w.WriteByte(w.cfg.Delimiter); err != nil {
				return err
			}
		}
		if _, err := w.w.WriteString(f); err != nil {
			return err
		}
	}
	return w.w.WriteByte(w.cfg.Terminator)
}

// Flush writes any buffered data to the underlying stream.
func (w *Writer) Flush() error { return w.w.Flush() }
