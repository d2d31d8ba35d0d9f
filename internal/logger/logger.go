package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/julianstephens/lifetrack/internal/constants"
)

// Logger is the process-wide logger. It is nil until Init is called, and every
// helper below is a no-op in that state.
var Logger *log.Logger

type Config struct {
	Debug bool
	// Dir is the directory holding the database; logs go to Dir/logs
	Dir string
}

// LogPath returns the log file location for a given config directory
func LogPath(dir string) string {
	return filepath.Join(dir, constants.LogDirName, constants.LogFileName)
}

// Init configures Logger to write to a rotating file, and additionally to
// stderr when Debug is set.
func Init(cfg Config) error {
	path := LogPath(cfg.Dir)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	rotating := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    constants.LogMaxSizeMB,
		MaxBackups: constants.LogMaxBackups,
		MaxAge:     constants.LogMaxAgeDays,
		Compress:   true,
	}

	level := log.WarnLevel
	var w io.Writer = rotating
	if cfg.Debug {
		level = log.DebugLevel
		w = io.MultiWriter(os.Stderr, rotating)
	}

	Logger = log.NewWithOptions(w, log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          constants.AppName,
	})
	return nil
}

func Debug(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

func Info(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

func Warn(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

func Error(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}
