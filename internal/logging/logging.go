// Package logging writes the app's diagnostic log. The TUI owns the
// terminal, so log output goes to a JSON-lines file under the config dir
// instead of stderr.
package logging

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const logFileName = "resumeforge.log"

// Path is the log file location inside the config directory.
func Path(dir string) string {
	return filepath.Join(dir, logFileName)
}

// Setup returns the app logger. With debug off everything is discarded;
// with debug on JSON lines are appended to the log file. The returned
// close func releases the file and is safe to call either way.
func Setup(dir string, debug bool) (zerolog.Logger, func(), error) {
	if !debug {
		return zerolog.Nop(), func() {}, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return zerolog.Nop(), func() {}, errors.Wrapf(err, "create log dir %s", dir)
	}
	path := Path(dir)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), func() {}, errors.Wrapf(err, "open log file %s", path)
	}
	logger := zerolog.New(f).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	return logger, func() { _ = f.Close() }, nil
}

// Component tags a child logger with the subsystem it logs for.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}
