package system

import (
	"os"

	clog "github.com/charmbracelet/log"
)

// Logger is the shared process logger for CLI-level messages.
// It prints to stderr with timestamps enabled.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
	Prefix:          "vkhello",
})

// SetDebug lowers the Logger level to debug when on.
func SetDebug(on bool) {
	if on {
		Logger.SetLevel(clog.DebugLevel)
		return
	}
	Logger.SetLevel(clog.InfoLevel)
}
