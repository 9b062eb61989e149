// Package logging configures the process-wide logger: log records go to
// stderr (stdout carries protocol frames when serving over stdio) and to a
// rotated file underneath the configured log directory.
package logging

import (
	"os"
	"path/filepath"

	"github.com/phuslu/log"
)

// Setup installs the default logger with the given verbosity and log
// directory. The directory is created when missing; an empty directory
// disables the file writer.
func Setup(verbosity, directory string) error {
	writers := log.MultiEntryWriter{
		&log.ConsoleWriter{Writer: os.Stderr},
	}
	if directory != "" {
		if err := os.MkdirAll(directory, 0o755); err != nil {
			return err
		}
		writers = append(writers, &log.FileWriter{
			Filename:   filepath.Join(directory, "ucmcp.log"),
			MaxSize:    50 << 20,
			MaxBackups: 7,
			LocalTime:  true,
		})
	}
	log.DefaultLogger = log.Logger{
		Level:      Level(verbosity),
		TimeFormat: "2006-01-02 15:04:05",
		Writer:     &writers,
	}
	return nil
}

// Level maps a verbosity name to a log level. Unknown names fall back to
// warn, matching the default verbosity.
func Level(verbosity string) log.Level {
	switch verbosity {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning", "":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "critical":
		return log.FatalLevel
	default:
		return log.WarnLevel
	}
}
