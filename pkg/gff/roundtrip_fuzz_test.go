//go:build fuzz
// +build fuzz

package gff

import (
	"strings"
	"testing"
)

// FuzzAttributesRoundTrip checks that any attribute pair free of the
// structural delimiters survives encode/decode unchanged.
func FuzzAttributesRoundTrip(f *testing.F) {
	f.Add("ID", "PRO_0000148105")
	f.Add("Note", "ATP-dependent protease subunit HslV")
	f.Add("tag", "appris_principal_1")

	f.Fuzz(func(t *testing.T, key, value string) {
		if key == "" {
			t.Skip("empty keys have no encoded form")
		}
		for _, s := range []string{key, value} {
			if strings.ContainsAny(s, "=;\t\n\r") {
				t.Skip("structural delimiter in input")
			}
		}

		encoded := encodeAttributes(map[string]string{key: value})
		attrs, err := decodeAttributes(encoded)
		if err != nil {
			t.Fatalf("decode failed for %q: %v", encoded, err)
		}
		if got := attrs[key]; got != value {
			t.Errorf("value mismatch: got %q, want %q", got, value)
		}
		if len(attrs) != 1 {
			t.Errorf("pair count mismatch: got %d, want 1", len(attrs))
		}
	})
}
