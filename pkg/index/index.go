// Package index maintains a persistent lookup table from feature ID to
// its GFF3 line, backed by pebble. Built once from an annotation file,
// it answers point lookups without rescanning the file.
package index

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/pebble"

	"github.com/bnbowman/gffio/pkg/gff"
)

// idAttribute is the attribute key features are indexed under.
const idAttribute = "ID"

// ErrNotFound is returned by Get when no feature has the requested ID.
var ErrNotFound = errors.New("feature not found")

// Config holds configuration for a FeatureIndex.
type Config struct {
	Dir string // directory holding the pebble store
}

// BuildStats reports what happened during a Build pass.
type BuildStats struct {
	Indexed  int // records stored
	NoID     int // well-formed records skipped for lacking an ID attribute
	BadLines int // lines skipped as malformed
}

// FeatureIndex is a pebble-backed map from feature ID to encoded record.
type FeatureIndex struct {
	db *pebble.DB
}

// Open opens (or creates) the index under cfg.Dir.
func Open(cfg Config) (*FeatureIndex, error) {
	db, err := pebble.Open(cfg.Dir, &pebble.Options{})
	if err != nil {
		return nil, err
	}
	return &FeatureIndex{db: db}, nil
}

// Build scans the GFF3 file at path and stores every record that carries
// an ID attribute. Malformed lines and records without an ID are skipped
// and counted; any other error aborts the build.
func (ix *FeatureIndex) Build(path string) (BuildStats, error) {
	r, err := gff.Open(path)
	if err != nil {
		return BuildStats{}, err
	}
	defer r.Close()

	var stats BuildStats
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return stats, nil
		}
		var decodeErr *gff.DecodeError
		if errors.As(err, &decodeErr) {
			stats.BadLines++
			continue
		}
		if err != nil {
			return stats, err
		}

		id := rec.Attributes()[idAttribute]
		if id == "" {
			stats.NoID++
			continue
		}
		if err := ix.Put(rec); err != nil {
			return stats, err
		}
		stats.Indexed++
	}
}

// Put stores one record under its ID attribute.
func (ix *FeatureIndex) Put(rec *gff.Record) error {
	id := rec.Attributes()[idAttribute]
	if id == "" {
		return fmt.Errorf("index: record has no %s attribute", idAttribute)
	}

	var buf bytes.Buffer
	w := gff.NewWriter(&buf)
	if err := w.Write(rec); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return ix.db.Set([]byte(id), buf.Bytes(), pebble.NoSync)
}

// Get returns the record stored under the given feature ID, or
// ErrNotFound.
func (ix *FeatureIndex) Get(id string) (*gff.Record, error) {
	data, closer, err := ix.db.Get([]byte(id))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, fmt.Errorf("index: %q: %w", id, ErrNotFound)
		}
		return nil, err
	}
	defer closer.Close()

	rec, err := gff.NewReader(bytes.NewReader(data)).Read()
	if err != nil {
		return nil, fmt.Errorf("index: decode %q: %w", id, err)
	}
	return rec, nil
}

// Keys returns the feature IDs in the index that start with prefix, in
// lexicographic order. An empty prefix returns every ID.
func (ix *FeatureIndex) Keys(prefix string) ([]string, error) {
	iter, err := ix.db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var keys []string
	for iter.First(); iter.Valid(); iter.Next() {
		k := string(iter.Key())
		if prefix == "" || strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, iter.Error()
}

// Close closes the underlying store.
func (ix *FeatureIndex) Close() error {
	return ix.db.Close()
}
