package keymap

import "slices"

// Resolver looks up the action bound to a key string as reported by
// tea.KeyMsg.String.
type Resolver struct {
	actions  map[string]Action
	bindings []Binding
}

// NewResolver indexes bindings. A key bound twice resolves to its last
// binding.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		actions:  make(map[string]Action, len(bindings)*2),
		bindings: bindings,
	}
	for _, b := range bindings {
		for _, k := range b.Keys {
			r.actions[k] = b.Action
		}
	}
	return r
}

// ForContext indexes the bindings of the given contexts, later contexts
// taking precedence.
func ForContext(contexts ...string) *Resolver {
	var bindings []Binding
	for _, c := range contexts {
		bindings = append(bindings, ByContext(c)...)
	}
	return NewResolver(bindings)
}

// Resolve returns the action bound to key, or "" when it is unbound.
func (r *Resolver) Resolve(key string) Action {
	return r.actions[key]
}

// KeysFor lists the keys bound to a, in binding order and without
// repeats. Keys rebound to another action are left out.
func (r *Resolver) KeysFor(a Action) []string {
	var keys []string
	for _, b := range r.bindings {
		if b.Action != a {
			continue
		}
		for _, k := range b.Keys {
			if r.actions[k] == a && !slices.Contains(keys, k) {
				keys = append(keys, k)
			}
		}
	}
	return keys
}
