package logx

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestGetLoggerLevelByString(t *testing.T) {
	assert.Equal(t, zapcore.InfoLevel, GetLoggerLevelByString("info"))
	assert.Equal(t, zapcore.WarnLevel, GetLoggerLevelByString("WARN"))
	assert.Equal(t, zapcore.DebugLevel, GetLoggerLevelByString("verbose"))
}

func TestJSONOutputRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogx(zapcore.InfoLevel, false, false)
	l.InitLogger(&buf)

	l.Debug("hidden")
	l.With("square", "e4").Infof("moved %s", "e2e4")
	require.NoError(t, l.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var rec map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "moved e2e4", rec["MESSAGE"])
	assert.Equal(t, "info", rec["LEVEL"])
	assert.Equal(t, "e4", rec["square"])
	assert.Equal(t, "clickchess", rec["NAME"])
}

func TestNopLogger(t *testing.T) {
	l := NewNop()
	assert.NotPanics(t, func() {
		l.Info("nothing")
		l.With("k", 1).Warnf("%d", 2)
	})
}
