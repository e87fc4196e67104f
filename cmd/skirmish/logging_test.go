package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		missing bool
		fail    bool
	}{
		{"default", nil, "info", false, false},
		{"level", []string{"--log", "debug"}, "debug", false, false},
		{"single dash", []string{"-log", "err"}, "err", false, false},
		{"missing", []string{"--log"}, "", true, true},
		{"unknown flag", []string{"--fullscreen"}, "", false, true},
		{"positional", []string{"extra"}, "", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArgs(tt.args)
			if !tt.fail {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.missing, errors.Is(err, errMissingArgument))
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want zapcore.Level
		ok   bool
	}{
		{"trace", zapcore.DebugLevel, true},
		{"INFO", zapcore.InfoLevel, true},
		{"warning", zapcore.WarnLevel, true},
		{"err", zapcore.ErrorLevel, true},
		{"critical", zapcore.FatalLevel, true},
		{"off", zapcore.InvalidLevel, false},
		{"bogus", zapcore.InvalidLevel, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseLevel(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "skirmish.log")

	log, err := newLogger("debug", path)
	require.NoError(t, err)
	log.Info("hello")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "INFO")
	assert.Contains(t, string(data), "main")
	assert.Contains(t, string(data), "hello")
}

func TestNewLoggerOff(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "skirmish.log")

	log, err := newLogger("off", path)
	require.NoError(t, err)
	log.Info("dropped")

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
