package gff

import "fmt"

// DecodeErrorKind tags the ways a single line can fail to decode.
type DecodeErrorKind int

const (
	// BadColumnCount: the line did not split into nine tab fields.
	BadColumnCount DecodeErrorKind = iota + 1
	// BadCoordinate: start or end is not an unsigned integer.
	BadCoordinate
	// BadAttribute: an attribute segment is not a single key=value pair.
	BadAttribute
)

func (k DecodeErrorKind) String() string {
	switch k {
	case BadColumnCount:
		return "bad column count"
	case BadCoordinate:
		return "bad coordinate"
	case BadAttribute:
		return "bad attribute pair"
	default:
		return "unknown"
	}
}

// DecodeError reports a malformed input line. It is returned per record:
// the reader stays usable and the next Read moves on to the following
// line, so the caller decides whether to stop.
type DecodeError struct {
	Line int // 1-based line number in the input
	Kind DecodeErrorKind
	Err  error // underlying cause
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("gff: line %d: %s: %v", e.Line, e.Kind, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
