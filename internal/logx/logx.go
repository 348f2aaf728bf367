// Package logx builds the zap loggers used across the application.
package logx

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects level, encoding and sinks.
type Options struct {
	Level   string // debug, info, warn, error
	Debug   bool   // development encoder config
	Console bool   // console encoding instead of JSON
	File    string // optional file sink, appended to
}

var global = zap.NewNop().Sugar()

// L returns the process-wide logger. It discards everything until Init is called.
func L() *zap.SugaredLogger { return global }

var levels = map[string]zapcore.Level{
	"debug":  zapcore.DebugLevel,
	"info":   zapcore.InfoLevel,
	"warn":   zapcore.WarnLevel,
	"error":  zapcore.ErrorLevel,
	"dpanic": zapcore.DPanicLevel,
	"panic":  zapcore.PanicLevel,
	"fatal":  zapcore.FatalLevel,
}

// ParseLevel maps a level name to a zap level. Unknown names yield info.
func ParseLevel(s string) zapcore.Level {
	lvl, ok := levels[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return zapcore.InfoLevel
	}
	return lvl
}

// New builds a logger writing to stdout and, if set, to opts.File.
// The returned cleanup flushes the logger and closes the file sink.
func New(opts Options) (*zap.SugaredLogger, func(), error) {
	var encoderCfg zapcore.EncoderConfig
	if opts.Debug {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
	} else {
		encoderCfg = zap.NewProductionEncoderConfig()
	}
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	newEncoder := func() zapcore.Encoder {
		if opts.Console {
			return zapcore.NewConsoleEncoder(encoderCfg)
		}
		return zapcore.NewJSONEncoder(encoderCfg)
	}

	level := zap.NewAtomicLevelAt(ParseLevel(opts.Level))
	cores := []zapcore.Core{
		zapcore.NewCore(newEncoder(), zapcore.AddSync(os.Stdout), level),
	}
	var file *os.File

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		file = f
		fileEnc := zapcore.NewJSONEncoder(encoderCfg)
		cores = append(cores, zapcore.NewCore(fileEnc, zapcore.AddSync(f), level))
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	sugar := logger.Sugar()
	cleanup := func() {
		_ = sugar.Sync()
		if file != nil {
			_ = file.Close()
			file = nil
		}
	}
	return sugar, cleanup, nil
}

// Init builds a logger and installs it as the process-wide logger.
// Cleanup restores the discarding logger before closing the sinks.
func Init(opts Options) (*zap.SugaredLogger, func(), error) {
	l, closeSinks, err := New(opts)
	if err != nil {
		return nil, nil, err
	}
	global = l
	return l, func() {
		global = zap.NewNop().Sugar()
		closeSinks()
	}, nil
}
