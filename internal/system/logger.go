package system

import (
	"io"
	"os"

	clog "github.com/charmbracelet/log"
)

// Logger is the shared application logger. The editor owns the terminal
// while it runs, so log output is discarded unless routed to a file with
// EnableLogFile.
var Logger = clog.NewWithOptions(io.Discard, clog.Options{
	ReportTimestamp: true,
})

// EnableLogFile redirects Logger to the named file, creating it if needed.
// The file handle stays open for the life of the process.
func EnableLogFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	Logger.SetOutput(f)
	return nil
}

// SetLevelFromEnv applies a log level name such as "debug" or "warn".
// Unknown or empty names leave the current level in place.
func SetLevelFromEnv(name string) {
	if name == "" {
		return
	}
	lvl, err := clog.ParseLevel(name)
	if err != nil {
		return
	}
	Logger.SetLevel(lvl)
}
