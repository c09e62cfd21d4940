package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

const (
	logDir      = "logs"
	logFileName = "lightemall.log"
)

var log = logrus.New()

// setupLogging points log at logs/lightemall.log with debug level when debug
// is set and discards everything otherwise. The returned file, if any, must
// be closed by the caller.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetLevel(logrus.DebugLevel)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	log.Debug("debug logging enabled")
	return f
}
