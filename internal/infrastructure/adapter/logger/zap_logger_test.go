package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amirhossein-jamali/bank-account-service/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZapLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	l, err := NewZapLogger(Options{Format: "json", Output: path, Level: core.LogLevelWarn})
	require.NoError(t, err)

	l.Info("hidden", map[string]any{"account_no": "ab1#C2d&3"})
	l.Warn("shown", map[string]any{"account_no": "ab1#C2d&3"})
	l.SetLevel(core.LogLevelDebug)
	l.Debug("now visible", nil)
	require.NoError(t, l.Flush())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"message":"shown"`)
	assert.Contains(t, out, `"account_no":"ab1#C2d&3"`)
	assert.Contains(t, out, "now visible")
	assert.Equal(t, core.LogLevelDebug, l.GetLevel())
}

func TestNoopLogger(t *testing.T) {
	l := NewNoopLogger()
	l.SetLevel(core.LogLevelError)
	l.Error("ignored", nil)

	assert.Equal(t, core.LogLevelError, l.GetLevel())
	assert.NoError(t, l.Flush())
}
