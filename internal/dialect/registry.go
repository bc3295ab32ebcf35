package dialect

import (
	"fmt"
	"sort"
	"strings"
)

// GenericID is the fallback dialect used when detection finds no confident
// match and the caller has not selected a dialect explicitly.
const GenericID = "generic"

// Registry is the immutable catalog of dialect definitions, loaded once.
type Registry struct {
	byID  map[string]*Definition
	order []string
}

// NewRegistry builds the default registry from the built-in definitions.
func NewRegistry() *Registry {
	return newRegistry(builtinDefinitions())
}

func newRegistry(defs []*Definition) *Registry {
	reg := &Registry{byID: make(map[string]*Definition, len(defs))}
	for _, def := range defs {
		if _, exists := reg.byID[def.ID]; exists {
			panic(fmt.Sprintf("dialect %q registered twice", def.ID))
		}
		reg.byID[def.ID] = def
		reg.order = append(reg.order, def.ID)
	}
	sort.Strings(reg.order)
	return reg
}

// Get returns the definition for an id, matching case-insensitively.
func (r *Registry) Get(id string) (*Definition, bool) {
	def, ok := r.byID[strings.ToLower(strings.TrimSpace(id))]
	return def, ok
}

// Generic returns the fallback dialect.
func (r *Registry) Generic() *Definition {
	def, ok := r.byID[GenericID]
	if !ok {
		panic("generic dialect missing from registry")
	}
	return def
}

// All returns every registered definition in stable id order.
func (r *Registry) All() []*Definition {
	defs := make([]*Definition, 0, len(r.order))
	for _, id := range r.order {
		defs = append(defs, r.byID[id])
	}
	return defs
}
