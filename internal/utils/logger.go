package utils

import (
	"github.com/sirupsen/logrus" // Structured logging
)

// SetupLogger configures the standard logrus logger. format is "text" or "json";
// an unknown level falls back to info.
func SetupLogger(level, format string) {
	if format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}
