package gff

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bnbowman/gffio/pkg/tabular"
)

// numColumns is the fixed top-level column count of a GFF3 line.
const numColumns = 9

// Reader decodes a byte stream into a lazy sequence of records. It is
// single-pass and forward-only; call Read until io.EOF.
type Reader struct {
	inner   *tabular.Reader
	closers []io.Closer
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		inner: tabular.NewReader(r, tabular.Config{Delimiter: '\t', Columns: numColumns}),
	}
}

// Open reads GFF3 from the given file path. Paths ending in ".gz" are
// decompressed on the fly. The caller owns the returned Reader and must
// Close it.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var src io.Reader = f
	closers := []io.Closer{f}
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		src = gz
		closers = []io.Closer{gz, f}
	}
	r := NewReader(src)
	r.closers = closers
	return r, nil
}

// Read returns the next record. io.EOF signals end of input. A malformed
// line is reported as a *DecodeError for that line only; the reader stays
// usable and the next Read continues with the following line.
func (r *Reader) Read() (*Record, error) {
	fields, err := r.inner.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		if errors.Is(err, tabular.ErrFieldCount) {
			return nil, &DecodeError{Line: r.inner.Row(), Kind: BadColumnCount, Err: err}
		}
		return nil, err
	}

	rec := NewRecord()
	rec.seqname = fields[0]
	rec.source = fields[1]
	rec.featureType = fields[2]

	rec.start, err = strconv.ParseUint(fields[3], 10, 64)
	if err != nil {
		return nil, &DecodeError{Line: r.inner.Row(), Kind: BadCoordinate, Err: fmt.Errorf("start: %w", err)}
	}
	rec.end, err = strconv.ParseUint(fields[4], 10, 64)
	if err != nil {
		return nil, &DecodeError{Line: r.inner.Row(), Kind: BadCoordinate, Err: fmt.Errorf("end: %w", err)}
	}

	rec.score = fields[5]
	rec.strand = fields[6]
	rec.frame = fields[7]

	rec.attributes, err = decodeAttributes(fields[8])
	if err != nil {
		return nil, &DecodeError{Line: r.inner.Row(), Kind: BadAttribute, Err: err}
	}
	return rec, nil
}

// Close closes the underlying file when the Reader owns one; it is a
// no-op for readers built from a caller-owned io.Reader.
func (r *Reader) Close() error {
	var first error
	for _, c := range r.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	r.closers = nil
	return first
}

// decodeAttributes runs the ninth column through a second tabular pass:
// '=' as the field delimiter, ';' as the record terminator. Every row
// must be exactly one key=value pair. An empty column is an empty map.
func decodeAttributes(text string) (map[string]string, error) {
	attrs := make(map[string]string)
	if text == "" {
		return attrs, nil
	}
	pairs := tabular.NewReader(strings.NewReader(text), tabular.Config{
		Delimiter:  '=',
		Terminator: ';',
		Columns:    2,
	})
	for {
		pair, err := pairs.Read()
		if err == io.EOF {
			return attrs, nil
		}
		if err != nil {
			return nil, err
		}
		attrs[pair[0]] = pair[1]
	}
}
