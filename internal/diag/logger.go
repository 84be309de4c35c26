package diag

import (
	"fmt"
	"io"
	"os"
	"strings"

	clog "github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// Logger writes tagged, colorized lines for one phase of the application.
// Tag and color never change after construction.
type Logger struct {
	tag     string
	enabled bool
	color   Color

	out *clog.Logger
}

// lineBreaks escapes line breaks so every message stays on one line.
var lineBreaks = strings.NewReplacer("\r\n", `\n`, "\n", `\n`, "\r", `\r`)

type loggerOptions struct {
	w         io.Writer
	profile   *termenv.Profile
	timestamp bool
}

// LoggerOption configures a Logger.
type LoggerOption func(*loggerOptions)

// WithOutput directs output to w instead of stdout.
func WithOutput(w io.Writer) LoggerOption {
	return func(o *loggerOptions) { o.w = w }
}

// WithColorProfile forces the color profile instead of detecting it from
// the output. termenv.Ascii yields plain text.
func WithColorProfile(p termenv.Profile) LoggerOption {
	return func(o *loggerOptions) { o.profile = &p }
}

// WithTimestamp prefixes each line with the time of day.
func WithTimestamp(on bool) LoggerOption {
	return func(o *loggerOptions) { o.timestamp = on }
}

// NewLogger returns a Logger for tag. A disabled logger never touches its
// output.
func NewLogger(tag string, enabled bool, color Color, opts ...LoggerOption) *Logger {
	o := loggerOptions{w: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}
	l := &Logger{tag: tag, enabled: enabled, color: color}
	if !enabled {
		return l
	}
	if o.w == nil {
		o.w = io.Discard
	}
	out := clog.NewWithOptions(o.w, clog.Options{
		Prefix:          tag,
		ReportTimestamp: o.timestamp,
		TimeFormat:      "15:04:05.000",
	})
	styles := clog.DefaultStyles()
	styles.Prefix = color.style().Bold(true)
	styles.Message = color.style()
	out.SetStyles(styles)
	if o.profile != nil {
		out.SetColorProfile(*o.profile)
	}
	l.out = out
	return l
}

func (l *Logger) Tag() string   { return l.tag }
func (l *Logger) Enabled() bool { return l.enabled }
func (l *Logger) Color() Color  { return l.color }

// Emit writes msg as a single line, with embedded line breaks escaped as
// \n and \r. It is a no-op on a disabled logger and never reports write
// failures.
func (l *Logger) Emit(msg string) {
	if l == nil || !l.enabled || l.out == nil {
		return
	}
	l.out.Print(lineBreaks.Replace(msg))
}

// Emitf formats according to format and emits the result.
func (l *Logger) Emitf(format string, args ...any) {
	if l == nil || !l.enabled {
		return
	}
	l.Emit(fmt.Sprintf(format, args...))
}
