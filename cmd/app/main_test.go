package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvFileMissing(t *testing.T) {
	assert.NoError(t, loadEnvFile(filepath.Join(t.TempDir(), "absent.env")))
}

func TestLoadEnvFileKeepsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ingest.env")
	require.NoError(t, os.WriteFile(path, []byte("S3_BUCKET=from-file\nPG_CONN_ATTEMPTS=3\n"), 0o600))

	t.Setenv("S3_BUCKET", "from-env")
	t.Setenv("PG_CONN_ATTEMPTS", "")
	require.NoError(t, os.Unsetenv("PG_CONN_ATTEMPTS"))

	require.NoError(t, loadEnvFile(path))
	assert.Equal(t, "from-env", os.Getenv("S3_BUCKET"))
	assert.Equal(t, "3", os.Getenv("PG_CONN_ATTEMPTS"))
}
