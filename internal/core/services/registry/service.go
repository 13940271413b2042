package registry

import (
	"fmt"
	"sync"

	"github.com/phoe-krk/pseudonyms/internal/core/domain/binding"
	"github.com/phoe-krk/pseudonyms/internal/core/ports"
)

/*
service is the in-memory pseudonym registry. Bindings live in per-scope
tables created lazily on first registration; a scope key persists once
touched, since lookups on an empty table simply report "not found". All
comparisons are case-sensitive string equality.

A single mutex guards every operation. Registration and lookup are rare,
small-cardinality operations, so coarse locking is enough.
*/
type service struct {
	mu     sync.Mutex
	tables map[string][]binding.Binding
}

// NewService creates a new pseudonym registry. The registry is expected to
// live for the process lifetime; there is no teardown.
func NewService() ports.NicknameRegistry {
	return &service{tables: make(map[string][]binding.Binding)}
}

// Register implements ports.NicknameRegistry. A failed registration leaves
// the scope's table unchanged.
func (s *service) Register(scope, namespace, nickname string) (string, error) {
	if scope == "" {
		return "", &EmptyArgumentError{Argument: "scope"}
	}
	if namespace == "" {
		return "", &EmptyArgumentError{Argument: "namespace name"}
	}
	if nickname == "" {
		return "", &EmptyArgumentError{Argument: "nickname"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.tables[scope] {
		if b.Nickname == nickname {
			return "", &AlreadyBoundError{
				Scope:      scope,
				Datum:      nickname,
				BoundTo:    b.Namespace,
				IsNickname: true,
			}
		}
		if b.Namespace == namespace {
			return "", &AlreadyBoundError{
				Scope:   scope,
				Datum:   namespace,
				BoundTo: b.Nickname,
			}
		}
	}

	// Newest first. The order has no semantic effect beyond display.
	s.tables[scope] = append(
		[]binding.Binding{{Namespace: namespace, Nickname: nickname}},
		s.tables[scope]...,
	)
	return fmt.Sprintf("%s => %s", nickname, namespace), nil
}

// Unregister implements ports.NicknameRegistry. The datum may be either a
// nickname or a namespace name; exact match only.
func (s *service) Unregister(scope, datum string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	table := s.tables[scope]
	for i, b := range table {
		if b.Nickname == datum || b.Namespace == datum {
			s.tables[scope] = append(table[:i:i], table[i+1:]...)
			break
		}
	}
	return datum
}

// LookupByNickname implements ports.NicknameRegistry.
func (s *service) LookupByNickname(scope, nickname string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.tables[scope] {
		if b.Nickname == nickname {
			return b.Namespace, true
		}
	}
	return "", false
}

// LookupByNamespace implements ports.NicknameRegistry.
func (s *service) LookupByNamespace(scope, namespace string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.tables[scope] {
		if b.Namespace == namespace {
			return b.Nickname, true
		}
	}
	return "", false
}

// List implements ports.NicknameRegistry.
func (s *service) List(scope string) []binding.Binding {
	s.mu.Lock()
	defer s.mu.Unlock()

	table := s.tables[scope]
	if len(table) == 0 {
		return nil
	}
	out := make([]binding.Binding, len(table))
	copy(out, table)
	return out
}
