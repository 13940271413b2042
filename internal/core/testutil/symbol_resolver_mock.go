package testutil

import (
	"errors"

	"github.com/phoe-krk/pseudonyms/internal/core/domain/symbol"
)

// MockSymbolResolver is a mock implementation of ports.SymbolResolver for testing.
type MockSymbolResolver struct {
	ResolveFunc func(namespace, name string) (symbol.Symbol, symbol.Visibility, error)
	InternFunc  func(namespace, name string) (symbol.Symbol, error)
}

func (m *MockSymbolResolver) Resolve(namespace, name string) (symbol.Symbol, symbol.Visibility, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(namespace, name)
	}
	return symbol.Symbol{}, symbol.VisibilityNotFound, errors.New("MockSymbolResolver: ResolveFunc not implemented")
}

func (m *MockSymbolResolver) Intern(namespace, name string) (symbol.Symbol, error) {
	if m.InternFunc != nil {
		return m.InternFunc(namespace, name)
	}
	return symbol.Symbol{}, errors.New("MockSymbolResolver: InternFunc not implemented")
}
