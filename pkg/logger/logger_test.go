package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("", "loud")
	require.Error(t, err)
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("", "info", WithFormat("json"), WithOutput(&buf))
	require.NoError(t, err)

	log.Info("Refresh: fetched %d notifications", 3)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Refresh: fetched 3 notifications", entry["msg"])
	assert.Equal(t, "info", entry["level"])
}

func TestNew_LevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("", "warn", WithOutput(&buf))
	require.NoError(t, err)

	log.Info("hidden")
	log.Debug("hidden")
	assert.Empty(t, buf.String())

	log.Warn("visible %s", "warning")
	assert.Contains(t, buf.String(), "visible warning")
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")
	log, err := New(path, "info", WithOutput(&bytes.Buffer{}))
	require.NoError(t, err)

	log.Error("upstream failed: %v", "timeout")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "upstream failed: timeout")
}
