package logger

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitialize_InvalidLevel(t *testing.T) {
	err := Initialize(Config{Level: "loud", Environment: "development"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestInitialize_Development(t *testing.T) {
	require.NoError(t, Initialize(Config{Level: "debug", Environment: "development"}))

	assert.NotNil(t, Log)
	assert.True(t, Log.Core().Enabled(zap.DebugLevel))
}

func TestInitialize_ProductionWritesRotatedFiles(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Initialize(Config{
		Level:       "info",
		LogDir:      dir,
		Environment: "production",
		ServiceName: "portal-api-test",
		MaxSizeMB:   1,
	}))

	Info("hello")
	LogError(errors.New("boom"), "something failed")
	Sync()

	appLog, err := os.ReadFile(filepath.Join(dir, "app.log"))
	require.NoError(t, err)
	assert.Contains(t, string(appLog), "hello")
	assert.Contains(t, string(appLog), "portal-api-test")

	errorLog, err := os.ReadFile(filepath.Join(dir, "error.log"))
	require.NoError(t, err)
	assert.Contains(t, string(errorLog), "boom")
	assert.NotContains(t, string(errorLog), "hello")
}
