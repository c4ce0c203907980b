package logtools

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/sethvargo/go-envconfig"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultFilename is the file sink used when Config.Filename is empty.
const DefaultFilename = "app.log"

// Config selects the level and sinks of the process-wide logger.
type Config struct {
	Level     string `env:"LOG_LEVEL, default=INFO"`
	ToConsole bool   `env:"LOG_TO_CONSOLE, default=true"`
	ToFile    bool   `env:"LOG_TO_FILE, default=false"`
	Filename  string `env:"LOG_FILE, default=app.log"`
}

// DefaultConfig logs INFO and above to the console only.
func DefaultConfig() Config {
	return Config{
		Level:     "INFO",
		ToConsole: true,
		Filename:  DefaultFilename,
	}
}

// ConfigFromEnv reads Config from LOG_LEVEL, LOG_TO_CONSOLE, LOG_TO_FILE and
// LOG_FILE.
func ConfigFromEnv(ctx context.Context) (Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load log config: %w", err)
	}
	return cfg, nil
}

// ParseLevel maps a level name to a zap level. Names are case-insensitive;
// unknown names fall back to INFO.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return zap.DebugLevel
	case "INFO":
		return zap.InfoLevel
	case "WARN", "WARNING":
		return zap.WarnLevel
	case "ERROR":
		return zap.ErrorLevel
	case "CRITICAL", "FATAL":
		return zap.FatalLevel
	default:
		return zap.InfoLevel
	}
}

var (
	mu       sync.Mutex
	active   *zap.Logger
	fileSink *os.File
)

// Setup builds the process-wide logger and installs it with
// zap.ReplaceGlobals. It is the single configuration point: calling it again
// replaces the previous sinks, closing the previous log file, so handlers are
// never duplicated.
//
// Lines look like
//
//	2025-12-17 10:04:05 [INFO] message {"field": "value"}
func Setup(cfg Config) (*zap.Logger, error) {
	mu.Lock()
	defer mu.Unlock()

	level := ParseLevel(cfg.Level)
	encoder := zapcore.NewConsoleEncoder(encoderConfig())

	cores := make([]zapcore.Core, 0, 2)
	if cfg.ToConsole {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level))
	}

	var file *os.File
	if cfg.ToFile {
		name := cfg.Filename
		if name == "" {
			name = DefaultFilename
		}
		f, err := os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %q: %w", name, err)
		}
		file = f
		cores = append(cores, zapcore.NewCore(encoder.Clone(), zapcore.Lock(f), level))
	}

	logger := zap.New(zapcore.NewTee(cores...))
	if err := releaseLocked(); err != nil {
		logger.Warn("failed to close previous log file", zap.Error(err))
	}
	active, fileSink = logger, file
	zap.ReplaceGlobals(logger)
	return logger, nil
}

// Close flushes the installed logger, closes its file sink and installs a
// no-op global logger.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	err := releaseLocked()
	zap.ReplaceGlobals(zap.NewNop())
	return err
}

func releaseLocked() error {
	var err error
	if active != nil {
		// Sync on a console core reports EINVAL for terminals; only file
		// errors matter here.
		_ = active.Sync()
		active = nil
	}
	if fileSink != nil {
		err = fileSink.Close()
		fileSink = nil
	}
	return err
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = "time"
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	cfg.EncodeLevel = func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString("[" + l.CapitalString() + "]")
	}
	cfg.CallerKey = zapcore.OmitKey
	cfg.NameKey = zapcore.OmitKey
	cfg.StacktraceKey = zapcore.OmitKey
	cfg.ConsoleSeparator = " "
	return cfg
}
