package power

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Solver produces a linear power spectrum table, typically by invoking an
// external Boltzmann code. Implementations live outside this module.
type Solver func() (*Table, error)

// Registry maps solver names ("camb", "class") to their callbacks.
type Registry struct {
	solvers map[string]Solver
}

var errDuplicateSolver = errors.New("duplicate solver name")

// NewRegistry creates an empty solver registry.
func NewRegistry() *Registry {
	return &Registry{solvers: make(map[string]Solver)}
}

// Register adds a solver under the given name. Names are case-insensitive.
func (r *Registry) Register(name string, solver Solver) error {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return errors.New("empty solver name")
	}

	if solver == nil {
		return errors.New("nil solver")
	}

	if _, exists := r.solvers[key]; exists {
		return fmt.Errorf("%w: %s", errDuplicateSolver, key)
	}

	r.solvers[key] = solver

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name string, solver Solver) {
	err := r.Register(name, solver)
	if err != nil {
		panic("power solver registry: " + err.Error())
	}
}

// Lookup returns the solver registered under name, or nil.
func (r *Registry) Lookup(name string) Solver {
	if r == nil {
		return nil
	}
	return r.solvers[strings.ToLower(strings.TrimSpace(name))]
}

// Load resolves a spectrum source. A source naming a readable file is read
// as a two-column table; otherwise it is treated as a solver key in reg.
// A source matching neither yields ErrUnknownSource; there is no default
// spectrum.
func Load(source string, reg *Registry) (*Table, error) {
	if _, err := os.Stat(source); err == nil {
		return ReadTableFile(source)
	}

	if solver := reg.Lookup(source); solver != nil {
		t, err := solver()
		if err != nil {
			return nil, fmt.Errorf("power: solver %q: %w", strings.ToLower(strings.TrimSpace(source)), err)
		}
		if t == nil {
			return nil, fmt.Errorf("power: solver %q returned no table", strings.ToLower(strings.TrimSpace(source)))
		}
		return t, nil
	}

	return nil, fmt.Errorf("%w: %q is neither a readable file nor a registered solver", ErrUnknownSource, source)
}
