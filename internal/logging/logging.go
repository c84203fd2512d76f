// Package logging builds the structured logger shared by a single run.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"tasktrack/internal/config"
)

// DefaultLevel keeps routine warnings out of normal command output.
const DefaultLevel = logrus.ErrorLevel

// New returns a logger writing to w, tagged with the app name and a fresh
// run id. --debug wins over log_level from config.toml.
func New(cfg *config.Config, w io.Writer) *logrus.Entry {
	l := logrus.New()
	l.SetOutput(w)

	if strings.EqualFold(cfg.Settings.LogFormat, "json") {
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "ts",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	l.SetLevel(DefaultLevel)
	if cfg.Settings.LogLevel != "" {
		if lvl, err := logrus.ParseLevel(cfg.Settings.LogLevel); err == nil {
			l.SetLevel(lvl)
		}
	}
	if cfg.Debug {
		l.SetLevel(logrus.DebugLevel)
	}

	return l.WithFields(logrus.Fields{
		"app":    config.AppName,
		"run_id": uuid.NewString(),
	})
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}
