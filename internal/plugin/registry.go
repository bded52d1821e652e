// Package plugin maps command names to image transforms.
//
// Each transform is registered as a Spec that declares its optional
// parameters, their kinds and their default values up front. The Registry
// checks those declarations when a Spec is registered and checks caller
// options against them on Lookup, so a misspelled command or option is
// reported as ErrConfiguration before any image is loaded.
package plugin

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/ironsheep/pictool/internal/imaging"
)

// ErrConfiguration means a command name or an option name is not recognized.
var ErrConfiguration = errors.New("configuration error")

// Func applies a transform to b. Diagnostic output goes to out. The result
// reports whether b was modified and therefore whether it should be saved.
type Func func(b *imaging.Buffer, opts Options, out io.Writer) (bool, error)

// Param describes one optional transform parameter.
type Param struct {
	Name        string
	Kind        Kind
	Default     any
	Description string
}

// Spec describes a registered transform.
type Spec struct {
	Name        string
	Description string
	Params      []Param
	Apply       Func
}

// Param returns the parameter with the given name.
func (s *Spec) Param(name string) (Param, bool) {
	return lo.Find(s.Params, func(p Param) bool { return p.Name == name })
}

// Resolve returns a copy of opts with every missing parameter set to its
// default value.
func (s *Spec) Resolve(opts Options) Options {
	resolved := make(Options, len(s.Params))
	for _, p := range s.Params {
		resolved[p.Name] = p.Default
	}
	for k, v := range opts {
		resolved[k] = v
	}
	return resolved
}

// Usage returns a one-line synopsis such as
// "flip [--vertical=false] input [output]".
func (s *Spec) Usage() string {
	var sb strings.Builder
	sb.WriteString(s.Name)
	for _, p := range s.Params {
		fmt.Fprintf(&sb, " [--%s=%v]", p.Name, p.Default)
	}
	sb.WriteString(" input [output]")
	return sb.String()
}

// Registry is a set of transform specs keyed by command name.
// It is not safe for concurrent registration.
type Registry struct {
	specs map[string]*Spec
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{specs: make(map[string]*Spec)}
}

// Register adds spec to the registry.
//
// It fails if the name is empty or already taken, if Apply is nil, if two
// parameters share a name, or if a parameter's default does not match its
// kind.
func (r *Registry) Register(spec Spec) error {
	if spec.Name == "" {
		return errors.New("plugin has no name")
	}
	if _, ok := r.specs[spec.Name]; ok {
		return fmt.Errorf("plugin %q is already registered", spec.Name)
	}
	if spec.Apply == nil {
		return fmt.Errorf("plugin %q has no implementation", spec.Name)
	}
	seen := make(map[string]bool, len(spec.Params))
	for _, p := range spec.Params {
		if p.Name == "" {
			return fmt.Errorf("plugin %q has an unnamed parameter", spec.Name)
		}
		if seen[p.Name] {
			return fmt.Errorf("plugin %q declares parameter %q twice", spec.Name, p.Name)
		}
		seen[p.Name] = true
		if !p.Kind.accepts(p.Default) {
			return fmt.Errorf("plugin %q parameter %q: default %v (%T) is not a %s",
				spec.Name, p.Name, p.Default, p.Default, p.Kind)
		}
	}
	r.specs[spec.Name] = &spec
	return nil
}

// MustRegister is like Register but panics on error. It is meant for
// building fixed registries at startup.
func (r *Registry) MustRegister(spec Spec) {
	if err := r.Register(spec); err != nil {
		panic(err)
	}
}

// Lookup returns the spec registered under name after checking that every
// key in opts is one of its declared parameters.
//
// Errors wrap ErrConfiguration.
func (r *Registry) Lookup(name string, opts Options) (*Spec, error) {
	spec, ok := r.specs[name]
	if !ok {
		return nil, fmt.Errorf("%w: unrecognized command %q", ErrConfiguration, name)
	}

	bad := lo.Filter(lo.Keys(map[string]any(opts)), func(key string, _ int) bool {
		_, ok := spec.Param(key)
		return !ok
	})
	if len(bad) > 0 {
		sort.Strings(bad)
		flags := lo.Map(bad, func(key string, _ int) string { return "--" + key })
		return nil, fmt.Errorf("%w: plugin %q does not recognize the following options: %s",
			ErrConfiguration, name, strings.Join(flags, ", "))
	}
	return spec, nil
}

// Names returns the registered command names in sorted order.
func (r *Registry) Names() []string {
	names := lo.Keys(r.specs)
	sort.Strings(names)
	return names
}

// Specs returns the registered specs sorted by name.
func (r *Registry) Specs() []*Spec {
	return lo.Map(r.Names(), func(name string, _ int) *Spec { return r.specs[name] })
}
