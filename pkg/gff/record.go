package gff

import "strconv"

// missing is the GFF3 placeholder for an absent score or strand.
const missing = "."

// Strand is the orientation of a feature on a double-stranded sequence.
type Strand int8

const (
	StrandForward Strand = iota + 1
	StrandReverse
)

func (s Strand) String() string {
	switch s {
	case StrandForward:
		return "+"
	case StrandReverse:
		return "-"
	default:
		return missing
	}
}

// Record is one GFF3 feature annotation line. Score and strand are held
// as their on-disk text so a decoded record writes back exactly what was
// read; the typed accessors interpret that text on demand.
type Record struct {
	seqname     string
	source      string
	featureType string
	start       uint64
	end         uint64
	score       string
	strand      string
	frame       string
	attributes  map[string]string
}

// NewRecord returns a placeholder record: empty text fields, zero
// coordinates, no score, no strand, and an empty attribute map.
func NewRecord() *Record {
	return &Record{
		score:      missing,
		strand:     missing,
		attributes: make(map[string]string),
	}
}

// Seqname returns the sequence/chromosome identifier of the feature.
func (r *Record) Seqname() string { return r.seqname }

// Source returns the annotation source or program name.
func (r *Record) Source() string { return r.source }

// FeatureType returns the kind of feature (gene, exon, ...).
func (r *Record) FeatureType() string { return r.featureType }

// Start returns the 1-based start position of the feature.
func (r *Record) Start() uint64 { return r.start }

// End returns the end position of the feature.
func (r *Record) End() uint64 { return r.end }

// Score returns the feature score. The second result is false when the
// stored text is the "." placeholder, and also when the text fails to
// parse as an unsigned integer: absence and a malformed score are
// deliberately indistinguishable here. Callers that need the verbatim
// field should use ScoreText.
func (r *Record) Score() (uint64, bool) {
	if r.score == missing {
		return 0, false
	}
	v, err := strconv.ParseUint(r.score, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ScoreText returns the score column exactly as stored.
func (r *Record) ScoreText() string { return r.score }

// Strand returns the feature strand. The second result is false for any
// stored text other than "+" or "-", including "." and "?".
func (r *Record) Strand() (Strand, bool) {
	switch r.strand {
	case "+":
		return StrandForward, true
	case "-":
		return StrandReverse, true
	default:
		return 0, false
	}
}

// StrandText returns the strand column exactly as stored.
func (r *Record) StrandText() string { return r.strand }

// Frame returns the reading-frame column, uninterpreted.
func (r *Record) Frame() string { return r.frame }

// Attributes returns the live attribute map of the record. Mutating the
// returned map mutates the record.
func (r *Record) Attributes() map[string]string { return r.attributes }

// SetSeqname sets the sequence/chromosome identifier.
func (r *Record) SetSeqname(seqname string) { r.seqname = seqname }

// SetSource sets the annotation source.
func (r *Record) SetSource(source string) { r.source = source }

// SetFeatureType sets the feature kind.
func (r *Record) SetFeatureType(featureType string) { r.featureType = featureType }

// SetStart sets the 1-based start position.
func (r *Record) SetStart(start uint64) { r.start = start }

// SetEnd sets the end position.
func (r *Record) SetEnd(end uint64) { r.end = end }

// SetFrame sets the reading-frame column.
func (r *Record) SetFrame(frame string) { r.frame = frame }

// SetScoreText sets the score column verbatim; use "." for no score.
func (r *Record) SetScoreText(text string) { r.score = text }

// SetStrandText sets the strand column verbatim; the recognized values
// are "+", "-" and ".".
func (r *Record) SetStrandText(text string) { r.strand = text }

// SetScore sets the score to its canonical decimal text.
func (r *Record) SetScore(score uint64) { r.score = strconv.FormatUint(score, 10) }

// ClearScore marks the score as absent.
func (r *Record) ClearScore() { r.score = missing }

// SetStrand sets the strand to its canonical text.
func (r *Record) SetStrand(strand Strand) { r.strand = strand.String() }

// ClearStrand marks the strand as unknown.
func (r *Record) ClearStrand() { r.strand = missing }
