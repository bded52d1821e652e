// Package runner executes one pictool invocation: look up the command,
// load the input image, apply the transform and save the result when the
// transform reports a modification and an output path was given.
package runner

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/ironsheep/pictool/internal/imaging"
	"github.com/ironsheep/pictool/internal/plugin"
)

// Invocation is one requested command.
type Invocation struct {
	Command string
	Options plugin.Options
	Input   string
	Output  string // optional; empty means do not save

	// Out receives diagnostic output such as the display dump. Nil means
	// the runner's default writer.
	Out io.Writer
}

// Result describes a completed invocation.
type Result struct {
	Command  string        `json:"command"`
	Modified bool          `json:"modified"`
	Saved    bool          `json:"saved"`
	Output   string        `json:"output,omitempty"`
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Elapsed  time.Duration `json:"elapsed_ns"`
}

// Runner runs invocations against a registry, loading images through a
// shared cache.
type Runner struct {
	registry *plugin.Registry
	cache    *imaging.ImageCache
	out      io.Writer
	progress *Progress
	debug    bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithProgress reports load, process and save progress to p.
func WithProgress(p *Progress) Option {
	return func(r *Runner) { r.progress = p }
}

// WithDebug enables timing and cache log lines.
func WithDebug(debug bool) Option {
	return func(r *Runner) { r.debug = debug }
}

// New creates a runner. Diagnostic transform output (display) is written
// to out.
func New(registry *plugin.Registry, cache *imaging.ImageCache, out io.Writer, opts ...Option) *Runner {
	r := &Runner{
		registry: registry,
		cache:    cache,
		out:      out,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Registry returns the registry the runner dispatches through.
func (r *Runner) Registry() *plugin.Registry {
	return r.registry
}

// Cache returns the image cache the runner loads through.
func (r *Runner) Cache() *imaging.ImageCache {
	return r.cache
}

// Run executes inv.
//
// Unknown commands and options fail with plugin.ErrConfiguration before the
// input is read. A missing or unreadable input fails with imaging.ErrIO.
// Parameter errors from the transform wrap imaging.ErrInvalidArgument. The
// buffer is saved only when the transform modified it and inv.Output is
// set; a malformed buffer then fails with imaging.ErrCorruptBuffer and no
// file is written.
func (r *Runner) Run(ctx context.Context, inv Invocation) (*Result, error) {
	spec, err := r.registry.Lookup(inv.Command, inv.Options)
	if err != nil {
		return nil, err
	}
	if inv.Input == "" {
		return nil, fmt.Errorf("%w: no input file given", plugin.ErrConfiguration)
	}

	r.progress.Start("Loading", inv.Input)
	buf, err := imaging.LoadBuffer(r.cache, inv.Input)
	if err != nil {
		r.progress.Fail()
		return nil, err
	}
	r.progress.Done()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	r.progress.Start("Processing", inv.Input)
	out := inv.Out
	if out == nil {
		out = r.out
	}
	modified, err := spec.Apply(buf, spec.Resolve(inv.Options), out)
	if err != nil {
		r.progress.Fail()
		return nil, fmt.Errorf("%s: %w", spec.Name, err)
	}
	r.progress.Done()

	res := &Result{
		Command:  spec.Name,
		Modified: modified,
		Width:    buf.Width(),
		Height:   buf.Height(),
		Elapsed:  time.Since(start),
	}
	if r.debug {
		log.Printf("%s on %q took %s (modified=%t, cached=%d)",
			spec.Name, inv.Input, res.Elapsed, modified, r.cache.Len())
	}

	if !modified || inv.Output == "" {
		return res, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.progress.Start("Saving", inv.Output)
	if err := imaging.SaveBuffer(buf, inv.Output); err != nil {
		r.progress.Fail()
		return nil, err
	}
	r.progress.Done()
	r.cache.Evict(inv.Output)

	res.Saved = true
	res.Output = inv.Output
	return res, nil
}
