package testutil

import (
	"errors"

	"github.com/phoe-krk/pseudonyms/internal/core/domain/binding"
)

// MockPredefinedBindingProvider is a mock implementation of
// ports.PredefinedBindingProvider for testing.
type MockPredefinedBindingProvider struct {
	GetPredefinedBindingsFunc func() (map[string][]binding.Binding, error)
}

func (m *MockPredefinedBindingProvider) GetPredefinedBindings() (map[string][]binding.Binding, error) {
	if m.GetPredefinedBindingsFunc != nil {
		return m.GetPredefinedBindingsFunc()
	}
	return nil, errors.New("MockPredefinedBindingProvider: GetPredefinedBindingsFunc not implemented")
}
