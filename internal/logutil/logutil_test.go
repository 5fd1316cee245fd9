package logutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLogConfig_getLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		want    zapcore.Level
		wantErr bool
	}{
		{name: "default", level: "", want: zapcore.InfoLevel},
		{name: "debug", level: "debug", want: zapcore.DebugLevel},
		{name: "upper", level: "WARN", want: zapcore.WarnLevel},
		{name: "bogus", level: "chatty", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &LogConfig{Level: tt.level}
			got, err := cfg.getLevel()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got.Level())
		})
	}
}

func TestNewWithoutFilename(t *testing.T) {
	logger, err := New(LogConfig{Level: "chatty"})
	require.NoError(t, err)
	require.NotNil(t, logger)
	logger.Info("dropped")
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "barber-dash.log")
	logger, err := New(LogConfig{Level: "info", Format: "json", Filename: path, MaxSize: 1})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("screen loaded", zap.String("screen", "kasbon"), zap.Int("rows", 12))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"screen loaded"`)
	require.Contains(t, string(data), `"screen":"kasbon"`)
	require.NotContains(t, string(data), "hidden")
}
