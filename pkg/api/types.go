package api

import "github.com/bnbowman/gffio/pkg/gff"

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Port int
	Bind string
}

// FeatureView is the JSON representation of one GFF3 record.
type FeatureView struct {
	Seqname     string            `json:"seqname"`
	Source      string            `json:"source"`
	FeatureType string            `json:"feature_type"`
	Start       uint64            `json:"start"`
	End         uint64            `json:"end"`
	Score       *uint64           `json:"score,omitempty"`
	Strand      string            `json:"strand"`
	Frame       string            `json:"frame"`
	Attributes  map[string]string `json:"attributes"`
}

// NewFeatureView converts a record into its JSON view. Score is omitted
// when absent; strand is the raw column text.
func NewFeatureView(rec *gff.Record) FeatureView {
	v := FeatureView{
		Seqname:     rec.Seqname(),
		Source:      rec.Source(),
		FeatureType: rec.FeatureType(),
		Start:       rec.Start(),
		End:         rec.End(),
		Strand:      rec.StrandText(),
		Frame:       rec.Frame(),
		Attributes:  rec.Attributes(),
	}
	if score, ok := rec.Score(); ok {
		v.Score = &score
	}
	return v
}

// FeatureLookup is the read surface the server needs from the feature
// index.
type FeatureLookup interface {
	Get(id string) (*gff.Record, error)
	Keys(prefix string) ([]string, error)
}
