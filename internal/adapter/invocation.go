package adapter

import (
	"reflect"
	"sort"
)

// Settings are the ambient execution settings of one invocation.
type Settings struct {
	Region  string
	Profile string

	// Force skips the confirmation prompt of destructive operations.
	Force bool

	// PassThru replaces the payload with the operation's pass-through
	// parameter value.
	PassThru bool

	// MaxItems caps the number of items an auto-draining list operation
	// emits. Zero means no ceiling.
	MaxItems int

	// NoAutoIteration requests a single page even when no marker is bound.
	NoAutoIteration bool
}

// Invocation is the immutable set of parameters the caller bound for one
// call. A name is present only if the caller supplied it explicitly.
type Invocation struct {
	values   map[string]any
	settings Settings
}

// NewInvocation copies values so later changes to the map, or to slices
// held in it, do not leak into the invocation.
func NewInvocation(values map[string]any, settings Settings) *Invocation {
	copied := make(map[string]any, len(values))
	for k, v := range values {
		copied[k] = cloneSlice(v)
	}
	return &Invocation{values: copied, settings: settings}
}

// cloneSlice returns a shallow copy of v when it is a non-nil slice.
func cloneSlice(v any) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice || rv.IsNil() {
		return v
	}
	return copySlice(rv).Interface()
}

// Lookup returns the bound value for name.
func (i *Invocation) Lookup(name string) (any, bool) {
	v, ok := i.values[name]
	return v, ok
}

// Has reports whether name was bound.
func (i *Invocation) Has(name string) bool {
	_, ok := i.values[name]
	return ok
}

// Names returns the bound parameter names in sorted order.
func (i *Invocation) Names() []string {
	names := make([]string, 0, len(i.values))
	for k := range i.values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Settings returns the ambient settings.
func (i *Invocation) Settings() Settings {
	return i.settings
}
