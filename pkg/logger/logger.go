package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var log *logrus.Logger

// Options configures InitWithOptions
type Options struct {
	Level      string
	Format     string
	Output     string
	FilePath   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

func Init(verbose bool) {
	log = logrus.New()

	log.SetOutput(os.Stderr)

	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05Z07:00",
	})

	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
}

// InitWithOptions configures level, format and destination. Output is one of
// stdout, stderr, file or both (stderr plus file); file output rotates.
func InitWithOptions(opts Options) error {
	lvl, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}

	var formatter logrus.Formatter
	switch strings.ToLower(opts.Format) {
	case "json":
		formatter = &logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05Z07:00"}
	case "text", "":
		formatter = &logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006-01-02T15:04:05Z07:00"}
	default:
		return fmt.Errorf("invalid log format %q", opts.Format)
	}

	output := strings.ToLower(opts.Output)
	if (output == "file" || output == "both") && opts.FilePath == "" {
		return fmt.Errorf("log output %q needs a file path", opts.Output)
	}

	var out io.Writer
	switch output {
	case "stdout":
		out = os.Stdout
	case "stderr", "":
		out = os.Stderr
	case "file":
		out = rotatingFile(opts)
	case "both":
		out = io.MultiWriter(os.Stderr, rotatingFile(opts))
	default:
		return fmt.Errorf("invalid log output %q", opts.Output)
	}

	l := logrus.New()
	l.SetLevel(lvl)
	l.SetFormatter(formatter)
	l.SetOutput(out)
	log = l
	return nil
}

func rotatingFile(opts Options) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   opts.FilePath,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Compress:   opts.Compress,
	}
}

func GetLogger() *logrus.Logger {
	if log == nil {
		Init(false)
	}
	return log
}

func Debug(format string, args ...any) {
	GetLogger().Debugf(format, args...)
}

func Info(format string, args ...any) {
	GetLogger().Infof(format, args...)
}

func Warn(format string, args ...any) {
	GetLogger().Warnf(format, args...)
}

func Error(format string, args ...any) {
	GetLogger().Errorf(format, args...)
}

func Fatal(format string, args ...any) {
	GetLogger().Fatalf(format, args...)
}

func WithField(key string, value any) *logrus.Entry {
	return GetLogger().WithField(key, value)
}

func WithFields(fields logrus.Fields) *logrus.Entry {
	return GetLogger().WithFields(fields)
}
