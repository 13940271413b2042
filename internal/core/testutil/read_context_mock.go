package testutil

import (
	"errors"
	"io"
	"strings"
)

// MockReadContext is a mock implementation of ports.ReadContext for testing.
// Its default ReadIdentifier reads runes up to whitespace or end of input,
// which is enough for most resolver tests.
type MockReadContext struct {
	Scope              string
	ReadIdentifierFunc func(stream io.RuneScanner) (string, error)
}

func (m *MockReadContext) CurrentScope() string { return m.Scope }

func (m *MockReadContext) ReadIdentifier(stream io.RuneScanner) (string, error) {
	if m.ReadIdentifierFunc != nil {
		return m.ReadIdentifierFunc(stream)
	}
	var buf strings.Builder
	for {
		c, _, err := stream.ReadRune()
		if err != nil {
			break
		}
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' {
			break
		}
		buf.WriteRune(c)
	}
	if buf.Len() == 0 {
		return "", errors.New("MockReadContext: no identifier in stream")
	}
	return buf.String(), nil
}
