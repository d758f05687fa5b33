// Package tabular provides a small delimiter-based row codec.
//
// A row is a sequence of text fields joined by a configurable delimiter
// byte and ended by a configurable terminator byte. The codec is the
// building block for line-oriented text formats: the same Reader/Writer
// pair handles a tab-separated file (delimiter '\t', terminator '\n')
// and an embedded key=value list (delimiter '=', terminator ';').
//
// # Reading
//
//	r := tabular.NewReader(src, tabular.Config{Delimiter: '\t', Columns: 9})
//	for {
//	    fields, err := r.Read()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        // a field-count mismatch is reported for that row only;
//	        // the next Read continues with the following row
//	    }
//	    _ = fields
//	}
//
// # Writing
//
//	w := tabular.NewWriter(dst, tabular.Config{Delimiter: '\t', Flexible: true})
//	if err := w.Write([]string{"a", "b", "c"}); err != nil {
//	    return err
//	}
//	return w.Flush()
//
// # Column checking
//
// When Flexible is false the Reader enforces a fixed field count per row:
// either the count given in Config.Columns, or the count of the first row
// when Columns is zero. A mismatching row is returned together with a
// *RowError wrapping ErrFieldCount; iteration is not aborted. The Writer
// applies the same rule to rows it is asked to emit. When Flexible is
// true no count is enforced in either direction.
package tabular
