package runner

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Progress prints short status lines such as "Loading 'in.png'..done".
// A disabled Progress prints nothing.
type Progress struct {
	w       io.Writer
	enabled bool
}

// NewProgress returns a Progress writing to f, enabled only when f is a
// terminal so redirected output stays clean.
func NewProgress(f *os.File) *Progress {
	return &Progress{w: f, enabled: term.IsTerminal(int(f.Fd()))}
}

// Start begins a status line for verb applied to path.
func (p *Progress) Start(verb, path string) {
	if p == nil || !p.enabled {
		return
	}
	fmt.Fprintf(p.w, "%s %q", verb, path)
}

// Fail ends the current status line after an error.
func (p *Progress) Fail() {
	if p == nil || !p.enabled {
		return
	}
	fmt.Fprintln(p.w, "..failed")
}

// Done ends the current status line.
func (p *Progress) Done() {
	if p == nil || !p.enabled {
		return
	}
	fmt.Fprintln(p.w, "..done")
}
