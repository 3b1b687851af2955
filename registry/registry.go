/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package registry holds the shorthand lookup tables used to expand
// utility classes into CSS.
//
// A Registry is built once with New and never mutated afterwards, so a
// single instance may be shared between goroutines.
package registry

import (
	"maps"
	"slices"
)

// Special expands a class value into a complete declaration body,
// e.g. "mx" turning "1rem" into "margin-left:1rem;margin-right:1rem".
type Special func(value string) string

// Registry is an immutable set of shorthand tables.
type Registry struct {
	properties     map[string]string
	values         map[string]string
	contextValues  map[string]map[string]string
	modifiers      map[string]string
	pseudoElements map[string]string
	declarations   map[string]string
	specials       map[string]Special
}

type options struct {
	withoutDefaults bool
	edits           []func(*Registry)
}

// Option configures a Registry under construction.
type Option func(*options)

// New builds a Registry. Default tables are installed first unless
// WithoutDefaults is given; the remaining options are applied in order,
// so later entries override earlier ones key by key.
func New(opts ...Option) *Registry {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	r := &Registry{
		properties:     make(map[string]string),
		values:         make(map[string]string),
		contextValues:  make(map[string]map[string]string),
		modifiers:      make(map[string]string),
		pseudoElements: make(map[string]string),
		declarations:   make(map[string]string),
		specials:       make(map[string]Special),
	}
	if !o.withoutDefaults {
		installDefaults(r)
	}
	for _, edit := range o.edits {
		edit(r)
	}
	return r
}

// Default returns a Registry with only the default tables.
func Default() *Registry {
	return New()
}

func edit(fn func(*Registry)) Option {
	return func(o *options) {
		o.edits = append(o.edits, fn)
	}
}

// WithoutDefaults starts from empty tables.
func WithoutDefaults() Option {
	return func(o *options) {
		o.withoutDefaults = true
	}
}

// WithProperties adds property shorthands, e.g. "m" -> "margin".
func WithProperties(m map[string]string) Option {
	return edit(func(r *Registry) { maps.Copy(r.properties, m) })
}

// WithValues adds global value shorthands.
func WithValues(m map[string]string) Option {
	return edit(func(r *Registry) { maps.Copy(r.values, m) })
}

// WithContextValues adds value shorthands that only apply when the
// resolved property equals property.
func WithContextValues(property string, m map[string]string) Option {
	return edit(func(r *Registry) {
		table, ok := r.contextValues[property]
		if !ok {
			table = make(map[string]string, len(m))
			r.contextValues[property] = table
		}
		maps.Copy(table, m)
	})
}

// WithModifiers adds pseudo-class shorthands, e.g. "odd" -> "nth-child(odd)".
func WithModifiers(m map[string]string) Option {
	return edit(func(r *Registry) { maps.Copy(r.modifiers, m) })
}

// WithPseudoElements adds pseudo-element shorthands.
func WithPseudoElements(m map[string]string) Option {
	return edit(func(r *Registry) { maps.Copy(r.pseudoElements, m) })
}

// WithDeclarations adds value-less classes and their declaration bodies,
// e.g. "flex-row" -> "display:flex;flex-direction:row".
func WithDeclarations(m map[string]string) Option {
	return edit(func(r *Registry) { maps.Copy(r.declarations, m) })
}

// WithSpecial registers a special expansion for a resolved property name.
func WithSpecial(property string, fn Special) Option {
	return edit(func(r *Registry) { r.specials[property] = fn })
}

// WithCSSColors registers every named CSS color as a value-less class
// setting the text color, e.g. "white" -> "color:white".
func WithCSSColors() Option {
	return edit(func(r *Registry) {
		for _, name := range cssColors {
			r.declarations[name] = "color:" + name
		}
	})
}

// MultiProperty returns a Special that assigns the same value to each
// property in order.
func MultiProperty(properties ...string) Special {
	props := slices.Clone(properties)
	return func(value string) string {
		var out []byte
		for i, p := range props {
			if i > 0 {
				out = append(out, ';')
			}
			out = append(out, p...)
			out = append(out, ':')
			out = append(out, value...)
		}
		return string(out)
	}
}

// Property resolves a property shorthand, falling back to name.
func (r *Registry) Property(name string) string {
	if v, ok := r.properties[name]; ok {
		return v
	}
	return name
}

// Value resolves a value for the given resolved property. The
// property-scoped table wins over the global one; unknown values are
// returned unchanged.
func (r *Registry) Value(property, value string) string {
	if table, ok := r.contextValues[property]; ok {
		if v, ok := table[value]; ok {
			return v
		}
	}
	if v, ok := r.values[value]; ok {
		return v
	}
	return value
}

// Modifier resolves a pseudo-class shorthand, falling back to name.
func (r *Registry) Modifier(name string) string {
	if v, ok := r.modifiers[name]; ok {
		return v
	}
	return name
}

// PseudoElement resolves a pseudo-element shorthand, falling back to name.
func (r *Registry) PseudoElement(name string) string {
	if v, ok := r.pseudoElements[name]; ok {
		return v
	}
	return name
}

// Declaration returns the body registered for a value-less class.
func (r *Registry) Declaration(name string) (string, bool) {
	v, ok := r.declarations[name]
	return v, ok
}

// Special returns the special registered for a resolved property.
func (r *Registry) Special(property string) (Special, bool) {
	fn, ok := r.specials[property]
	return fn, ok
}

// Declarations returns the names of all value-less classes, sorted.
func (r *Registry) Declarations() []string {
	return slices.Sorted(maps.Keys(r.declarations))
}

// Properties returns the known property shorthands, sorted.
func (r *Registry) Properties() []string {
	return slices.Sorted(maps.Keys(r.properties))
}
