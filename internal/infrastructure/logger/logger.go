package logger

import (
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. Call Init once from main.
var Log = logrus.New()

// Init configures Log from LOG_LEVEL (default info) and LOG_FORMAT
// (json or text), writing to stdout.
func Init() {
	level, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		level = "info"
	}
	Log = New(level, os.Getenv("LOG_FORMAT"), os.Stdout)
}

// New builds a logger. Unknown levels fall back to info.
func New(level, format string, out io.Writer) *logrus.Logger {
	l := logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if strings.ToLower(format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	l.SetOutput(out)
	return l
}

// NewRunID returns a fresh id correlating the log lines of one run
func NewRunID() string {
	return uuid.NewString()
}

// ForRun returns an entry tagged with run_id
func ForRun(l logrus.FieldLogger, runID string) *logrus.Entry {
	return l.WithField("run_id", runID)
}
