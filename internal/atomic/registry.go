package atomic

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps atomic function names to implementations.
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]Function
}

// NewRegistry creates a registry holding the built-in atomic functions.
func NewRegistry() *Registry {
	r := &Registry{
		funcs: make(map[string]Function),
	}
	r.Register(LogitInvCloglogFunc{})
	r.Register(LogitPnormFunc{})
	return r
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry used by backends that are not
// given one explicitly.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Register adds fn, replacing any function with the same name.
func (r *Registry) Register(fn Function) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.funcs[fn.Name()] = fn
}

// Get returns the function registered under name.
func (r *Registry) Get(name string) (Function, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.funcs[name]
	return fn, ok
}

// MustGet is like Get but panics for unknown names.
func (r *Registry) MustGet(name string) Function {
	fn, ok := r.Get(name)
	if !ok {
		panic(fmt.Sprintf("unknown atomic function: %q", name))
	}
	return fn
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
