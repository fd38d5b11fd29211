package param

import (
	"fmt"

	"github.com/turian/torchsynth/pkg/dsp"
)

// Set is an ordered, name-addressed parameter collection. Modules embed one
// so callers can enumerate and tweak settings generically while the module
// keeps typed accessors for its own use.
type Set struct {
	params map[string]*Parameter
	order  []string
}

// NewSet creates an empty parameter set.
func NewSet() *Set {
	return &Set{
		params: make(map[string]*Parameter),
		order:  make([]string, 0, 8),
	}
}

// Add registers parameters. A duplicate name replaces the earlier entry and
// keeps its position.
func (s *Set) Add(params ...*Parameter) {
	for _, p := range params {
		if _, exists := s.params[p.Name()]; !exists {
			s.order = append(s.order, p.Name())
		}
		s.params[p.Name()] = p
	}
}

// Get retrieves a parameter by name.
func (s *Set) Get(name string) (*Parameter, error) {
	p, ok := s.params[name]
	if !ok {
		return nil, fmt.Errorf("unknown parameter %q: %w", name, dsp.ErrInvalidParameter)
	}
	return p, nil
}

// Names returns the parameter names in registration order.
func (s *Set) Names() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// All returns the parameters in registration order.
func (s *Set) All() []*Parameter {
	result := make([]*Parameter, len(s.order))
	for i, name := range s.order {
		result[i] = s.params[name]
	}
	return result
}

// Len returns the number of registered parameters.
func (s *Set) Len() int {
	return len(s.order)
}
