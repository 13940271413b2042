/*
Package symbol defines the canonical identifier produced by token resolution.
*/
package symbol

import "fmt"

// Symbol is a namespace-qualified identifier. A Symbol with an empty
// Namespace is an unqualified identifier that has not been resolved.
type Symbol struct {
	Namespace string
	Name      string
}

func (s Symbol) String() string {
	if s.Namespace == "" {
		return s.Name
	}
	return fmt.Sprintf("%s:%s", s.Namespace, s.Name)
}

// Visibility describes how a namespace exposes one of its symbols.
type Visibility int

const (
	// VisibilityNotFound means the namespace holds no symbol by that name.
	VisibilityNotFound Visibility = iota
	// VisibilityInternal means the symbol exists but is not exported.
	VisibilityInternal
	// VisibilityExternal means the symbol is exported by its namespace.
	VisibilityExternal
)

func (v Visibility) String() string {
	switch v {
	case VisibilityInternal:
		return "internal"
	case VisibilityExternal:
		return "external"
	default:
		return "not found"
	}
}
