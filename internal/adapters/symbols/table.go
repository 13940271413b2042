/*
Package symbols provides an in-memory implementation of the host's
identifier-interning and visibility service.
*/
package symbols

import (
	"fmt"
	"sync"

	"github.com/phoe-krk/pseudonyms/internal/core/domain/symbol"
)

// UnknownNamespaceError reports a resolve or intern against a namespace the
// table has never been told about.
type UnknownNamespaceError struct {
	Namespace string
}

func (e *UnknownNamespaceError) Error() string {
	return fmt.Sprintf("namespace %q does not exist", e.Namespace)
}

type entry struct {
	exported bool
}

// Table is a namespace-partitioned symbol store implementing
// ports.SymbolResolver. Symbols start internal and become external via
// Export.
type Table struct {
	mu         sync.Mutex
	namespaces map[string]map[string]entry
}

// NewTable creates an empty symbol table.
func NewTable() *Table {
	return &Table{namespaces: make(map[string]map[string]entry)}
}

// DefineNamespace makes namespace known to the table. Defining an existing
// namespace is a no-op.
func (t *Table) DefineNamespace(namespace string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.namespaces[namespace]; !ok {
		t.namespaces[namespace] = make(map[string]entry)
	}
}

// Intern implements ports.SymbolResolver. The namespace must already exist.
func (t *Table) Intern(namespace, name string) (symbol.Symbol, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	ns, ok := t.namespaces[namespace]
	if !ok {
		return symbol.Symbol{}, &UnknownNamespaceError{Namespace: namespace}
	}
	if _, ok := ns[name]; !ok {
		ns[name] = entry{}
	}
	return symbol.Symbol{Namespace: namespace, Name: name}, nil
}

// Export interns name in namespace and marks it externally visible.
func (t *Table) Export(namespace, name string) (symbol.Symbol, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	ns, ok := t.namespaces[namespace]
	if !ok {
		return symbol.Symbol{}, &UnknownNamespaceError{Namespace: namespace}
	}
	ns[name] = entry{exported: true}
	return symbol.Symbol{Namespace: namespace, Name: name}, nil
}

// Resolve implements ports.SymbolResolver.
func (t *Table) Resolve(namespace, name string) (symbol.Symbol, symbol.Visibility, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	ns, ok := t.namespaces[namespace]
	if !ok {
		return symbol.Symbol{}, symbol.VisibilityNotFound, &UnknownNamespaceError{Namespace: namespace}
	}
	e, ok := ns[name]
	if !ok {
		return symbol.Symbol{}, symbol.VisibilityNotFound, nil
	}
	visibility := symbol.VisibilityInternal
	if e.exported {
		visibility = symbol.VisibilityExternal
	}
	return symbol.Symbol{Namespace: namespace, Name: name}, visibility, nil
}
