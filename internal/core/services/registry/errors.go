package registry

import "fmt"

// EmptyArgumentError reports a registry call that received an empty string
// where a scope, namespace, or nickname was required.
type EmptyArgumentError struct {
	Argument string
}

func (e *EmptyArgumentError) Error() string {
	return fmt.Sprintf("%s must be a non-empty string", e.Argument)
}

/*
AlreadyBoundError reports a Register call that would break the bijection
between namespaces and nicknames within a scope. Datum is the colliding
value and BoundTo its existing counterpart, so the message always names the
binding that is in the way.
*/
type AlreadyBoundError struct {
	Scope      string
	Datum      string
	BoundTo    string
	IsNickname bool
}

func (e *AlreadyBoundError) Error() string {
	if e.IsNickname {
		return fmt.Sprintf("nickname %q is already bound to namespace %q in scope %q",
			e.Datum, e.BoundTo, e.Scope)
	}
	return fmt.Sprintf("namespace %q is already bound to nickname %q in scope %q",
		e.Datum, e.BoundTo, e.Scope)
}
