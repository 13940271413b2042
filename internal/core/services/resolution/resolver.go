/*
Package resolution implements the reader macro that turns a prefixed token
like $nick:identifier back into the namespace-qualified identifier the
nickname stands for.
*/
package resolution

import (
	"io"
	"strings"

	"github.com/phoe-krk/pseudonyms/internal/core/domain/symbol"
	"github.com/phoe-krk/pseudonyms/internal/core/ports"
)

// Separator delimits the nickname from the identifier it qualifies. A
// doubled separator marks a force-internal reference.
const Separator = ':'

type resolver struct {
	registry ports.NicknameRegistry
	symbols  ports.SymbolResolver
}

// NewResolver creates the pseudonym reader macro.
// It panics if either collaborator is nil.
func NewResolver(reg ports.NicknameRegistry, sym ports.SymbolResolver) ports.ReaderMacro {
	if reg == nil {
		panic("registry cannot be nil")
	}
	if sym == nil {
		panic("symbol resolver cannot be nil")
	}
	return &resolver{registry: reg, symbols: sym}
}

/*
TryHandle implements ports.ReaderMacro. The marker character has already
been consumed by the host reader; the stream is positioned at the first
character of the nickname. The token grammar is

	<nickname> <sep> <identifier>        visibility-checked reference
	<nickname> <sep> <sep> <identifier>  force-internal reference

Any failure aborts the current read without consulting or mutating the
registry further.
*/
func (r *resolver) TryHandle(_ rune, stream io.RuneScanner, ctx ports.ReadContext) (symbol.Symbol, error) {
	nickname, err := readNickname(stream)
	if err != nil {
		return symbol.Symbol{}, err
	}

	scope := ctx.CurrentScope()
	namespace, ok := r.registry.LookupByNickname(scope, nickname)
	if !ok {
		return symbol.Symbol{}, &UnknownNicknameError{Scope: scope, Nickname: nickname}
	}

	internal, err := readVisibilityMarker(stream)
	if err != nil {
		return symbol.Symbol{}, err
	}

	name, err := ctx.ReadIdentifier(stream)
	if err != nil {
		return symbol.Symbol{}, err
	}

	return r.resolve(namespace, name, internal)
}

/*
readNickname consumes characters up to, but not including, the separator.
Whitespace inside the nickname and input ending before a separator are both
malformed; so is a zero-length nickname, since an empty string can never
have been registered in the first place.
*/
func readNickname(stream io.RuneScanner) (string, error) {
	var buf strings.Builder
	for {
		c, _, err := stream.ReadRune()
		if err != nil {
			return "", &MalformedNicknameError{
				Nickname: buf.String(),
				Detail:   "input ended before the separator",
			}
		}
		if c == Separator {
			if err := stream.UnreadRune(); err != nil {
				return "", err
			}
			break
		}
		switch c {
		case ' ', '\t', '\r', '\n':
			return "", &MalformedNicknameError{
				Nickname: buf.String(),
				Detail:   "whitespace inside a nickname",
			}
		}
		buf.WriteRune(c)
	}
	if buf.Len() == 0 {
		return "", &MalformedNicknameError{Detail: "empty nickname before the separator"}
	}
	return buf.String(), nil
}

// readVisibilityMarker consumes the separator and reports whether a second
// consecutive separator follows (a force-internal reference).
func readVisibilityMarker(stream io.RuneScanner) (bool, error) {
	if _, _, err := stream.ReadRune(); err != nil {
		// readNickname peeked the separator, so it must be readable.
		return false, err
	}
	c, _, err := stream.ReadRune()
	if err != nil {
		// End of input; the identifier read will report it.
		return false, nil
	}
	if c == Separator {
		return true, nil
	}
	if err := stream.UnreadRune(); err != nil {
		return false, err
	}
	return false, nil
}

func (r *resolver) resolve(namespace, name string, internal bool) (symbol.Symbol, error) {
	sym, visibility, err := r.symbols.Resolve(namespace, name)
	if err != nil {
		return symbol.Symbol{}, err
	}
	if internal {
		if visibility == symbol.VisibilityNotFound {
			return r.symbols.Intern(namespace, name)
		}
		return sym, nil
	}
	if visibility != symbol.VisibilityExternal {
		return symbol.Symbol{}, &VisibilityError{
			Namespace:  namespace,
			Name:       name,
			Visibility: visibility,
		}
	}
	return sym, nil
}
