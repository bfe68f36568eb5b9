package connector

import (
	"fmt"
	"sort"
)

// Constructor is a function that creates a new Connector instance.
type Constructor func() Connector

var registry = map[string]Constructor{}

// Register adds a connector constructor under the given provider name.
// Registering the same name twice panics.
func Register(name string, ctor Constructor) {
	if _, dup := registry[name]; dup {
		panic("connector: duplicate provider " + name)
	}
	registry[name] = ctor
}

// Get returns the connector constructor for the given provider name.
func Get(name string) (Constructor, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown connector provider: %s (known: %v)", name, Providers())
	}
	return ctor, nil
}

// Providers returns the sorted names of all registered connector providers.
func Providers() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
