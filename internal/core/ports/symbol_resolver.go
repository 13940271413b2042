package ports

import "github.com/phoe-krk/pseudonyms/internal/core/domain/symbol"

/*
SymbolResolver defines the interface for the host's identifier-interning and
visibility machinery. This is a driven port, typically implemented by an
adapter that understands the host's namespace layout.
*/
type SymbolResolver interface {
	/*
	   Resolve looks name up in the namespace called namespace. It reports
	   the symbol's visibility; when the visibility is VisibilityNotFound
	   the returned symbol is the zero value. An error is returned only
	   when the namespace itself is unknown.
	*/
	Resolve(namespace, name string) (symbol.Symbol, symbol.Visibility, error)

	/*
	   Intern creates (or retrieves) the canonical symbol for name in the
	   namespace called namespace, without any visibility requirement.
	*/
	Intern(namespace, name string) (symbol.Symbol, error)
}
