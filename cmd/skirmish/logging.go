package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logDir      = "logs"
	logFileName = "skirmish.log"

	defaultLevel = "info"
)

var errMissingArgument = errors.New("missing argument")

// parseArgs accepts only --log <level>
func parseArgs(args []string) (string, error) {
	fs := flag.NewFlagSet("skirmish", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	level := fs.String("log", defaultLevel, "log level: trace, debug, info, warn, err, critical, off")

	if err := fs.Parse(args); err != nil {
		if strings.Contains(err.Error(), "needs an argument") {
			return "", fmt.Errorf("--log: %w", errMissingArgument)
		}
		return "", fmt.Errorf("invalid argument: %w", err)
	}
	if fs.NArg() > 0 {
		return "", fmt.Errorf("unknown argument %q", fs.Arg(0))
	}
	return *level, nil
}

// parseLevel maps zap and spdlog level names, unknown names disable logging
func parseLevel(name string) (zapcore.Level, bool) {
	switch strings.ToLower(name) {
	case "trace", "debug":
		return zapcore.DebugLevel, true
	case "info":
		return zapcore.InfoLevel, true
	case "warn", "warning":
		return zapcore.WarnLevel, true
	case "err", "error":
		return zapcore.ErrorLevel, true
	case "critical", "fatal":
		return zapcore.FatalLevel, true
	default:
		return zapcore.InvalidLevel, false
	}
}

func logPath() string {
	return filepath.Join(logDir, logFileName)
}

// newLogger writes console-encoded records to path, the terminal owns stdout
func newLogger(level, path string) (*zap.Logger, error) {
	lvl, ok := parseLevel(level)
	if !ok {
		return zap.NewNop(), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Development = false
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000")
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return log.Named("main"), nil
}
