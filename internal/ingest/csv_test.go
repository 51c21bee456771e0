package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRowsCleansHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.csv")
	content := "\uFEFF cpe , name\nCPE001,Building A\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	rows, err := readRows(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "CPE001", rows[0]["cpe"])
	assert.Equal(t, "Building A", rows[0]["name"])
}

func TestReadRowsToleratesRaggedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.csv")
	content := "cpe,name,fulladdress\n" +
		"CPE001,Building A,Main St 1\n" +
		"CPE002\n" + // short row: missing fields stay absent
		"CPE003,Building C,Main St 3,extra\n" // long row: extras ignored
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	rows, err := readRows(path)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "CPE002", rows[1]["cpe"])
	_, present := rows[1]["name"]
	assert.False(t, present)
	assert.Equal(t, "Building C", rows[2]["name"])
}

func TestReadRowsEmptyFileIsHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.csv")
	require.NoError(t, os.WriteFile(path, []byte("cpe,name\n"), 0o644))

	rows, err := readRows(path)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadRowsMissingFile(t *testing.T) {
	_, err := readRows(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
