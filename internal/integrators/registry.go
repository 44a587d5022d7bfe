package integrators

import (
	"fmt"
	"sort"

	"github.com/san-kum/brownsim/internal/dynamo"
)

// Default is the rule used when no integrator is named.
const Default = "impulse"

var registry = map[string]func() dynamo.Integrator{
	"impulse": func() dynamo.Integrator { return NewImpulse() },
	"euler":   func() dynamo.Integrator { return NewEuler() },
}

func Lookup(name string) (dynamo.Integrator, error) {
	if name == "" {
		name = Default
	}
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", dynamo.ErrUnknownIntegrator, name, Names())
	}
	return fn(), nil
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
