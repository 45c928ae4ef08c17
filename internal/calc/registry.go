package calc

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	apperrors "github.com/agbru/bigmod/internal/errors"
)

// AllOperations is the plan keyword that selects every registered operation.
const AllOperations = "all"

// Registry is a thread-safe set of named operations. Operations returned by
// Get and Resolve are wrapped by Instrumented and cached.
type Registry struct {
	mu        sync.RWMutex
	order     []string
	ops       map[string]Operation
	decorated map[string]Operation
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		ops:       make(map[string]Operation),
		decorated: make(map[string]Operation),
	}
}

// NewDefaultRegistry creates a registry with every engine operation
// registered in plan order: add, sub, mul, rsh, mod, quo, gcd, lcm, modadd,
// modsub, modmul, modsquare, modpow.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, op := range coreOps {
		_ = r.Register(op)
	}
	return r
}

// Register adds op under its name. Registering a name again replaces the
// operation but keeps its position in the plan order.
func (r *Registry) Register(op Operation) error {
	if op == nil {
		return fmt.Errorf("calc: cannot register a nil operation")
	}
	name := op.Name()
	if name == "" || name == AllOperations || strings.ContainsAny(name, ", ") {
		return apperrors.ValidationError{Field: "operation", Message: fmt.Sprintf("invalid operation name %q", name)}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.ops[name]; !exists {
		r.order = append(r.order, name)
	}
	r.ops[name] = op
	delete(r.decorated, name)
	return nil
}

// Get returns the instrumented operation registered under name.
func (r *Registry) Get(name string) (Operation, error) {
	r.mu.RLock()
	if op, ok := r.decorated[name]; ok {
		r.mu.RUnlock()
		return op, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if op, ok := r.decorated[name]; ok {
		return op, nil
	}
	core, ok := r.ops[name]
	if !ok {
		return nil, apperrors.ValidationError{Field: "ops", Message: fmt.Sprintf("unknown operation %q (available: %s)", name, strings.Join(r.sortedLocked(), ", "))}
	}
	op := NewInstrumented(core)
	r.decorated[name] = op
	return op, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.ops[name]
	return ok
}

// List returns the registered names sorted alphabetically.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedLocked()
}

func (r *Registry) sortedLocked() []string {
	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve turns an operation selection into operations. "all" (or an empty
// spec) selects every operation in registration order; otherwise spec is a
// comma-separated list of names, kept in the given order with duplicates
// dropped.
func (r *Registry) Resolve(spec string) ([]Operation, error) {
	spec = strings.TrimSpace(strings.ToLower(spec))
	var names []string
	if spec == "" || spec == AllOperations {
		r.mu.RLock()
		names = append(names, r.order...)
		r.mu.RUnlock()
	} else {
		seen := make(map[string]bool)
		for _, name := range strings.Split(spec, ",") {
			name = strings.TrimSpace(name)
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, apperrors.ValidationError{Field: "ops", Message: "no operation selected"}
	}

	ops := make([]Operation, 0, len(names))
	for _, name := range names {
		op, err := r.Get(name)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}
