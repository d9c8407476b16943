package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter(Config{Level: "warn", Encoder: JSONEncoder}, &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", zap.String("peer", "p1"))
	require.NoError(t, logger.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "shown", entry["msg"])
	require.Equal(t, "p1", entry["peer"])
	require.Equal(t, "warn", entry["level"])
}

func TestNewInvalid(t *testing.T) {
	_, err := New(Config{Level: "loud", Encoder: ConsoleEncoder})
	require.Error(t, err)
	_, err = New(Config{Level: "info", Encoder: "xml"})
	require.ErrorContains(t, err, "xml")
}
