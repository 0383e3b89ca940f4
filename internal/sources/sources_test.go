package sources_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boxbluebook/boxbluebook/internal/sources"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "excel", "fuente.json"),
		`[{"brand":"Arturo Fuente","name":"Hemingway","size":"4 x 49","source":"fuente"}]`)
	writeFile(t, filepath.Join(dir, "pdf", "padron.json"),
		`[{"brand":"Padron","name":"1964 Exclusivo","size":"5 1/2 x 50","msrp_single":18.5,"source":"padron"},
		  {"brand":"Padron","name":"1926 No. 9","size":"5 1/4 x 56","source":"padron"}]`)
	writeFile(t, filepath.Join(dir, "notes.txt"), "not a batch")

	records, errs := sources.LoadDir(dir)
	assert.Empty(t, errs)
	require.Len(t, records, 3)

	// Lexical path order: excel/ before pdf/.
	assert.Equal(t, "Hemingway", records[0].Name)
	assert.Equal(t, "padron", records[1].Source)
	require.NotNil(t, records[1].MSRPSingle)
	assert.Equal(t, 18.5, *records[1].MSRPSingle)
}

func TestLoadDirMalformedFileIsRecordedAndSkipped(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "good.json"),
		`[{"name":"Serie V","source":"oliva"}]`)
	writeFile(t, filepath.Join(dir, "bad.json"), `{"not":"an array"`)

	records, errs := sources.LoadDir(dir)
	require.Len(t, records, 1)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "bad.json")
}

func TestLoadDirMissing(t *testing.T) {
	records, errs := sources.LoadDir(filepath.Join(t.TempDir(), "nope"))
	assert.Empty(t, records)
	assert.NotEmpty(t, errs)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "batch.json")
	writeFile(t, path, `[{"name":"Undercrown Toro","ring_gauge":52,"length":6,"source":"drew_estate"}]`)

	records, err := sources.LoadFile(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.NotNil(t, records[0].RingGauge)
	assert.Equal(t, 52, *records[0].RingGauge)
}
