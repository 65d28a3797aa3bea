package template

import "maps"

// Bindings holds the values available to one render call.
//
// Vars feed {{name}} tokens. Flags optionally force the truth of a
// {{#if name}} block; without a flag a block is shown when Vars[name] is
// non-empty, so the condition follows the data it guards.
type Bindings struct {
	Vars  map[string]string
	Flags map[string]bool
}

// NewBindings returns empty, ready-to-use Bindings.
func NewBindings() *Bindings {
	return &Bindings{
		Vars:  make(map[string]string),
		Flags: make(map[string]bool),
	}
}

// FromMap builds Bindings from plain string values.
func FromMap(vars map[string]string) *Bindings {
	b := NewBindings()
	maps.Copy(b.Vars, vars)
	return b
}

// Set binds a variable value.
func (b *Bindings) Set(name, value string) *Bindings {
	if b.Vars == nil {
		b.Vars = make(map[string]string)
	}
	b.Vars[name] = value
	return b
}

// SetFlag forces the truth value of a conditional.
func (b *Bindings) SetFlag(name string, value bool) *Bindings {
	if b.Flags == nil {
		b.Flags = make(map[string]bool)
	}
	b.Flags[name] = value
	return b
}

// Lookup returns the bound value of a variable.
func (b *Bindings) Lookup(name string) (string, bool) {
	if b == nil || b.Vars == nil {
		return "", false
	}
	v, ok := b.Vars[name]
	return v, ok
}

// Truthy reports whether the conditional block name should render.
func (b *Bindings) Truthy(name string) bool {
	if b == nil {
		return false
	}
	if flag, ok := b.Flags[name]; ok {
		return flag
	}
	return b.Vars[name] != ""
}

// Clone returns a deep copy.
func (b *Bindings) Clone() *Bindings {
	out := NewBindings()
	if b == nil {
		return out
	}
	maps.Copy(out.Vars, b.Vars)
	maps.Copy(out.Flags, b.Flags)
	return out
}
