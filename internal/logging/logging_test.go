package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewErrorSink_WritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "error.log")

	sink, closer, err := NewErrorSink(path)
	require.NoError(t, err)

	sink.WithField("requestId", "abc").Error("Failed to add payment")
	sink.Info("dropped below error level")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var record map[string]any
	require.NoError(t, json.Unmarshal(data, &record))
	assert.Equal(t, "Failed to add payment", record["msg"])
	assert.Equal(t, "abc", record["requestId"])
	assert.Equal(t, "error", record["level"])
}

func TestSetup(t *testing.T) {
	Setup(true)
	assert.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)
	Setup(false)
	assert.IsType(t, &logrus.TextFormatter{}, logrus.StandardLogger().Formatter)
}
