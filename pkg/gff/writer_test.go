package gff

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Same fixture with an empty attributes column, byte-comparable on
// re-encoding because no map ordering is involved.
const gffFileNoAttrib = "P0A7B8\tUniProtKB\tInitiator methionine\t1\t1\t.\t.\t.\t\n" +
	"P0A7B8\tUniProtKB\tChain\t2\t176\t50\t+\t.\t\n"

func TestWriter_NoAttributesRoundTripsExactly(t *testing.T) {
	r := NewReader(strings.NewReader(gffFileNoAttrib))

	var buf bytes.Buffer
	w := NewWriter(&buf)
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		require.NoError(t, w.Write(rec))
	}
	require.NoError(t, w.Flush())

	assert.Equal(t, gffFileNoAttrib, buf.String())
}

func TestWriter_AttributesSortedByKey(t *testing.T) {
	rec := NewRecord()
	rec.SetSeqname("chr1")
	rec.SetSource("src")
	rec.SetFeatureType("gene")
	rec.SetStart(1)
	rec.SetEnd(2)
	rec.SetFrame(".")
	rec.Attributes()["Note"] = "Removed"
	rec.Attributes()["ID"] = "test"

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.Write(rec))
	require.NoError(t, w.Flush())

	assert.Equal(t, "chr1\tsrc\tgene\t1\t2\t.\t.\t.\tID=test;Note=Removed\n", buf.String())
}

func TestWriter_SingleAttribute(t *testing.T) {
	rec := NewRecord()
	rec.Attributes()["ID"] = "PRO_1"

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.Write(rec))
	require.NoError(t, w.Flush())

	line := strings.TrimSuffix(buf.String(), "\n")
	fields := strings.Split(line, "\t")
	require.Len(t, fields, 9)
	assert.Equal(t, "ID=PRO_1", fields[8])
}

func TestWriter_EmptyAttributesIsEmptyColumn(t *testing.T) {
	rec := NewRecord()

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.Write(rec))
	require.NoError(t, w.Flush())

	assert.Equal(t, "\t\t\t0\t0\t.\t.\t\t\n", buf.String())
}

func TestWriter_RawScoreAndStrandPreserved(t *testing.T) {
	rec := NewRecord()
	rec.SetSeqname("chr1")
	rec.SetScoreText("notanumber")
	rec.SetStrandText("?")

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.Write(rec))
	require.NoError(t, w.Flush())

	fields := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\t")
	require.Len(t, fields, 9)
	assert.Equal(t, "notanumber", fields[5])
	assert.Equal(t, "?", fields[6])
}

func TestWriter_SemanticRoundTrip(t *testing.T) {
	r := NewReader(strings.NewReader(gffFile))

	var buf bytes.Buffer
	w := NewWriter(&buf)
	var originals []*Record
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		originals = append(originals, rec)
		require.NoError(t, w.Write(rec))
	}
	require.NoError(t, w.Flush())

	back := NewReader(&buf)
	for _, want := range originals {
		got, err := back.Read()
		require.NoError(t, err)

		assert.Equal(t, want.Seqname(), got.Seqname())
		assert.Equal(t, want.Source(), got.Source())
		assert.Equal(t, want.FeatureType(), got.FeatureType())
		assert.Equal(t, want.Start(), got.Start())
		assert.Equal(t, want.End(), got.End())
		assert.Equal(t, want.ScoreText(), got.ScoreText())
		assert.Equal(t, want.StrandText(), got.StrandText())
		assert.Equal(t, want.Frame(), got.Frame())
		assert.Equal(t, want.Attributes(), got.Attributes())
	}
	_, err := back.Read()
	assert.Equal(t, io.EOF, err)
}

func TestCreate(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "out.gff3")

	w, err := Create(path)
	require.NoError(t, err)

	rec := NewRecord()
	rec.SetSeqname("chr1")
	rec.SetSource("src")
	rec.SetFeatureType("gene")
	rec.SetStart(1)
	rec.SetEnd(2)
	rec.SetFrame(".")
	require.NoError(t, w.Write(rec))
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "chr1\tsrc\tgene\t1\t2\t.\t.\t.\t\n", string(data))
}

func TestCreate_BadPath(t *testing.T) {
	w, err := Create(filepath.Join(t.TempDir(), "no", "such", "dir", "out.gff3"))
	assert.Error(t, err)
	assert.Nil(t, w)
}
