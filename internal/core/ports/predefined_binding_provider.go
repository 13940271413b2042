package ports

import "github.com/phoe-krk/pseudonyms/internal/core/domain/binding"

// PredefinedBindingProvider defines the interface for sourcing pseudonym
// bindings from a predefined list, like a configuration file.
type PredefinedBindingProvider interface {
	// GetPredefinedBindings loads bindings from a predefined source,
	// keyed by the scope they should be registered in.
	GetPredefinedBindings() (map[string][]binding.Binding, error)
}
