package ports

import (
	"io"

	"github.com/phoe-krk/pseudonyms/internal/core/domain/symbol"
)

/*
ReadContext is the slice of the host reader that a macro is allowed to see:
the scope the read is happening in, and the reader's normal read routine for
obtaining the next identifier. ReadIdentifier goes through the reader's own
macro dispatch, so a macro that delegates to it supports nesting naturally.
*/
type ReadContext interface {
	CurrentScope() string
	ReadIdentifier(stream io.RuneScanner) (string, error)
}

/*
ReaderMacro is a pluggable tokenizer extension point. The host reader calls
TryHandle after consuming the marker character it was registered under; the
macro consumes as much of the stream as it needs and produces the resolved
symbol, or an error that aborts the current read.
*/
type ReaderMacro interface {
	TryHandle(marker rune, stream io.RuneScanner, ctx ReadContext) (symbol.Symbol, error)
}
