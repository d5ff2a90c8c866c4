package config

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "onboard configuration", doc["title"])
	assert.Contains(t, string(data), "popup_timeout")
	assert.Contains(t, string(data), "video_history_scope")
}

func TestWriteSchemaFile(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteSchemaFile(dir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}
