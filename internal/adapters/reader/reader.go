/*
Package reader provides a minimal datum reader with a single-character macro
dispatch table. It stands in for the host language's reading layer: the
pseudonym resolver plugs into it through the ports.ReaderMacro extension
point and delegates ordinary identifier reading back to it.
*/
package reader

import (
	"errors"
	"io"
	"strings"

	"github.com/phoe-krk/pseudonyms/internal/core/domain/symbol"
	"github.com/phoe-krk/pseudonyms/internal/core/ports"
)

// DefaultMarker is the character that triggers pseudonym resolution unless
// a different marker has been configured.
const DefaultMarker = '$'

// ErrUnexpectedEOF is returned when the input ends where a datum was
// expected.
var ErrUnexpectedEOF = errors.New("unexpected end of input")

/*
Reader reads whitespace-separated identifiers from a rune stream. A datum is
either a bare identifier, read as an unqualified symbol, or a macro-prefixed
token handled by the macro registered for its leading character. Only one
macro character can be active at a time.
*/
type Reader struct {
	scope  string
	marker rune
	macros map[rune]ports.ReaderMacro
}

// New creates a Reader whose reads happen in the given scope.
func New(scope string) *Reader {
	return &Reader{scope: scope, macros: make(map[rune]ports.ReaderMacro)}
}

// CurrentScope implements ports.ReadContext.
func (r *Reader) CurrentScope() string { return r.scope }

// SetScope changes the scope subsequent reads happen in.
func (r *Reader) SetScope(scope string) { r.scope = scope }

/*
SetMacroCharacter binds m to the marker character, unbinding whichever
marker was active before. Binding the same marker again simply replaces the
handler, so enabling is idempotent.
*/
func (r *Reader) SetMacroCharacter(marker rune, m ports.ReaderMacro) {
	if r.marker != 0 {
		delete(r.macros, r.marker)
	}
	r.marker = marker
	r.macros[marker] = m
}

/*
EnablePseudonyms activates m as the resolution hook. It binds the default
marker unless a marker is already active, in which case the active marker is
kept. Enabling twice is safe.
*/
func (r *Reader) EnablePseudonyms(m ports.ReaderMacro) {
	marker := r.marker
	if marker == 0 {
		marker = DefaultMarker
	}
	r.SetMacroCharacter(marker, m)
}

/*
Read skips leading whitespace and reads the next datum. A macro character
hands the stream to its registered handler; anything else is read as a bare
identifier. Read returns ErrUnexpectedEOF when the input holds no datum.
*/
func (r *Reader) Read(stream io.RuneScanner) (symbol.Symbol, error) {
	if err := skipWhitespace(stream); err != nil {
		return symbol.Symbol{}, ErrUnexpectedEOF
	}

	c, _, err := stream.ReadRune()
	if err != nil {
		return symbol.Symbol{}, ErrUnexpectedEOF
	}
	if macro, ok := r.macros[c]; ok {
		return macro.TryHandle(c, stream, r)
	}
	if err := stream.UnreadRune(); err != nil {
		return symbol.Symbol{}, err
	}

	text, err := readIdentifierText(stream)
	if err != nil {
		return symbol.Symbol{}, err
	}
	return symbol.Symbol{Name: text}, nil
}

/*
ReadIdentifier implements ports.ReadContext. It reads the next datum through
the normal Read path, so a macro-prefixed token nested inside another token
is resolved by the host recursion, and returns the datum's name.
*/
func (r *Reader) ReadIdentifier(stream io.RuneScanner) (string, error) {
	sym, err := r.Read(stream)
	if err != nil {
		return "", err
	}
	return sym.Name, nil
}

// ReadString is a convenience wrapper reading the first datum of s.
func (r *Reader) ReadString(s string) (symbol.Symbol, error) {
	return r.Read(strings.NewReader(s))
}

func isWhitespace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func skipWhitespace(stream io.RuneScanner) error {
	for {
		c, _, err := stream.ReadRune()
		if err != nil {
			return err
		}
		if !isWhitespace(c) {
			return stream.UnreadRune()
		}
	}
}

// readIdentifierText consumes runes until whitespace or end of input. The
// caller has already established that at least one rune is present.
func readIdentifierText(stream io.RuneScanner) (string, error) {
	var buf strings.Builder
	for {
		c, _, err := stream.ReadRune()
		if err != nil {
			break
		}
		if isWhitespace(c) {
			if err := stream.UnreadRune(); err != nil {
				return "", err
			}
			break
		}
		buf.WriteRune(c)
	}
	if buf.Len() == 0 {
		return "", ErrUnexpectedEOF
	}
	return buf.String(), nil
}
