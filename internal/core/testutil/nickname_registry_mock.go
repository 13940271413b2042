package testutil

import (
	"errors"

	"github.com/phoe-krk/pseudonyms/internal/core/domain/binding"
)

// MockNicknameRegistry is a mock implementation of ports.NicknameRegistry for testing.
type MockNicknameRegistry struct {
	RegisterFunc          func(scope, namespace, nickname string) (string, error)
	UnregisterFunc        func(scope, datum string) string
	LookupByNicknameFunc  func(scope, nickname string) (string, bool)
	LookupByNamespaceFunc func(scope, namespace string) (string, bool)
	ListFunc              func(scope string) []binding.Binding
}

func (m *MockNicknameRegistry) Register(scope, namespace, nickname string) (string, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(scope, namespace, nickname)
	}
	return "", errors.New("MockNicknameRegistry: RegisterFunc not implemented")
}

func (m *MockNicknameRegistry) Unregister(scope, datum string) string {
	if m.UnregisterFunc != nil {
		return m.UnregisterFunc(scope, datum)
	}
	return datum
}

func (m *MockNicknameRegistry) LookupByNickname(scope, nickname string) (string, bool) {
	if m.LookupByNicknameFunc != nil {
		return m.LookupByNicknameFunc(scope, nickname)
	}
	return "", false
}

func (m *MockNicknameRegistry) LookupByNamespace(scope, namespace string) (string, bool) {
	if m.LookupByNamespaceFunc != nil {
		return m.LookupByNamespaceFunc(scope, namespace)
	}
	return "", false
}

func (m *MockNicknameRegistry) List(scope string) []binding.Binding {
	if m.ListFunc != nil {
		return m.ListFunc(scope)
	}
	return nil
}
