package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnbowman/gffio/pkg/index"
)

const testGFF = "P0A7B8\tUniProtKB\tInitiator methionine\t1\t1\t.\t.\t.\tNote=Removed;ID=test\n" +
	"P0A7B8\tUniProtKB\tChain\t2\t176\t50\t+\t.\tNote=ATP-dependent protease subunit HslV;ID=PRO_0000148105\n"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	tmpDir := t.TempDir()
	gffPath := filepath.Join(tmpDir, "test.gff3")
	require.NoError(t, os.WriteFile(gffPath, []byte(testGFF), 0600))

	ix, err := index.Open(index.Config{Dir: filepath.Join(tmpDir, "idx")})
	require.NoError(t, err)
	t.Cleanup(func() { ix.Close() })

	_, err = ix.Build(gffPath)
	require.NoError(t, err)

	// metrics nil: promauto registration is process-global and tests
	// construct many servers.
	srv := httptest.NewServer(NewServer(ix, ServerConfig{}, nil).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func decodeResponse(t *testing.T, resp *http.Response) APIResponse {
	t.Helper()
	defer resp.Body.Close()
	var out APIResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeResponse(t, resp)
	assert.True(t, out.Success)
}

func TestHandleGetFeature(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/features/PRO_0000148105")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeResponse(t, resp)
	require.True(t, out.Success)

	feature, ok := out.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "P0A7B8", feature["seqname"])
	assert.Equal(t, "Chain", feature["feature_type"])
	assert.Equal(t, float64(2), feature["start"])
	assert.Equal(t, float64(176), feature["end"])
	assert.Equal(t, float64(50), feature["score"])
	assert.Equal(t, "+", feature["strand"])
}

func TestHandleGetFeature_ScoreOmittedWhenAbsent(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/features/test")
	require.NoError(t, err)
	out := decodeResponse(t, resp)
	require.True(t, out.Success)

	feature, ok := out.Data.(map[string]interface{})
	require.True(t, ok)
	_, hasScore := feature["score"]
	assert.False(t, hasScore)
	assert.Equal(t, ".", feature["strand"])
}

func TestHandleGetFeature_NotFound(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/features/nope")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	out := decodeResponse(t, resp)
	assert.False(t, out.Success)
	assert.Contains(t, out.Error, "nope")
}

func TestHandleListFeatures(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/features?prefix=PRO_")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeResponse(t, resp)
	require.True(t, out.Success)

	data, ok := out.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), data["count"])
	assert.Equal(t, []interface{}{"PRO_0000148105"}, data["ids"])
}

func TestHandleListFeatures_Empty(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/features?prefix=zzz")
	require.NoError(t, err)

	out := decodeResponse(t, resp)
	require.True(t, out.Success)

	data, ok := out.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(0), data["count"])
}
