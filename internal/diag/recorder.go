package diag

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Recorder keeps an append-only trail of checkpoints so the last known
// position of the program can be reported after a failure.
type Recorder struct {
	mu      sync.Mutex
	entries []string
	w       io.Writer
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithDumpOutput directs Dump output to w instead of stdout.
func WithDumpOutput(w io.Writer) RecorderOption {
	return func(r *Recorder) { r.w = w }
}

// NewRecorder returns an empty Recorder.
func NewRecorder(opts ...RecorderOption) *Recorder {
	r := &Recorder{w: os.Stdout}
	for _, opt := range opts {
		opt(r)
	}
	if r.w == nil {
		r.w = io.Discard
	}
	return r
}

// Note appends checkpoint to the trail.
func (r *Recorder) Note(checkpoint string) {
	r.mu.Lock()
	r.entries = append(r.entries, checkpoint)
	r.mu.Unlock()
}

// Last returns the most recent checkpoint, or "" when none was noted.
func (r *Recorder) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.entries) == 0 {
		return ""
	}
	return r.entries[len(r.entries)-1]
}

// Len reports the number of retained checkpoints.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Entries returns a copy of the retained checkpoints in insertion order.
func (r *Recorder) Entries() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.entries))
	copy(out, r.entries)
	return out
}

// Dump writes every checkpoint, one per line, and then clears the trail so
// a later dump does not repeat history. It does nothing unless verbose.
func (r *Recorder) Dump(verbose bool) {
	if !verbose {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		// output failures are ignored: diagnostics must not fail the caller
		_, _ = fmt.Fprintln(r.w, e)
	}
	r.entries = nil
}
