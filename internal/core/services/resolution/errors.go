package resolution

import (
	"fmt"

	"github.com/phoe-krk/pseudonyms/internal/core/domain/symbol"
)

// MalformedNicknameError reports a nickname token that could not be scanned:
// embedded whitespace, a zero-length nickname, or input ending before the
// separator. Nickname holds whatever had been consumed when scanning failed.
type MalformedNicknameError struct {
	Nickname string
	Detail   string
}

func (e *MalformedNicknameError) Error() string {
	if e.Nickname == "" {
		return fmt.Sprintf("malformed nickname: %s", e.Detail)
	}
	return fmt.Sprintf("malformed nickname %q: %s", e.Nickname, e.Detail)
}

// UnknownNicknameError reports a nickname with no binding in the scope the
// read is happening in.
type UnknownNicknameError struct {
	Scope    string
	Nickname string
}

func (e *UnknownNicknameError) Error() string {
	return fmt.Sprintf("nickname %q is not bound in scope %q", e.Nickname, e.Scope)
}

/*
VisibilityError reports an identifier that was referenced through a single
separator but is not exported by its namespace. Visibility distinguishes an
internal symbol from one the namespace does not hold at all.
*/
type VisibilityError struct {
	Namespace  string
	Name       string
	Visibility symbol.Visibility
}

func (e *VisibilityError) Error() string {
	if e.Visibility == symbol.VisibilityNotFound {
		return fmt.Sprintf("identifier %q is not present in namespace %q", e.Name, e.Namespace)
	}
	return fmt.Sprintf("identifier %q is not exported by namespace %q", e.Name, e.Namespace)
}
