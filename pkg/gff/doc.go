// Package gff reads and writes GFF3, the tab-delimited text format for
// genomic feature annotations (http://gmod.org/wiki/GFF3#GFF3_Format).
//
// One feature per line, nine columns:
//
//	<seqname>\t<source>\t<type>\t<start>\t<end>\t<score>\t<strand>\t<frame>\t<attributes>
//
// The attributes column is a semicolon-separated list of key=value pairs.
// Both levels are decoded through the tabular codec: tab/newline for the
// nine columns, then '='/';' for the attribute pairs.
//
// # Reading
//
//	r, err := gff.Open("annotation.gff3") // .gz paths are decompressed
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//	for {
//	    rec, err := r.Read()
//	    if err == io.EOF {
//	        break
//	    }
//	    var decodeErr *gff.DecodeError
//	    if errors.As(err, &decodeErr) {
//	        continue // malformed line; the stream keeps going
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    _ = rec
//	}
//
// # Writing
//
//	w := gff.NewWriter(dst)
//	if err := w.Write(rec); err != nil {
//	    return err
//	}
//	return w.Flush()
//
// GFF2/GTF2 input, pragma/comment lines, and coordinate sanity checks
// (start <= end) are out of scope.
package gff
