package ports

import "github.com/phoe-krk/pseudonyms/internal/core/domain/binding"

/*
NicknameRegistry defines the contract for the process-wide pseudonym store.
Bindings are partitioned by scope (the namespace a binding was registered
from); within one scope the mapping between namespaces and nicknames is a
bijection. This is a driven port, representing a domain capability.
*/
type NicknameRegistry interface {
	/*
	   Register binds nickname to namespace inside scope. It fails if any
	   argument is empty, or if either the nickname or the namespace is
	   already bound within the scope. On success it returns a confirmation
	   string of the form "<nickname> => <namespace>".
	*/
	Register(scope, namespace, nickname string) (string, error)

	/*
	   Unregister removes the single binding in scope whose nickname or
	   namespace equals datum. Removing a binding that does not exist is a
	   no-op. The datum is always returned unchanged.
	*/
	Unregister(scope, datum string) string

	// LookupByNickname returns the namespace bound to nickname in scope.
	LookupByNickname(scope, nickname string) (namespace string, ok bool)

	// LookupByNamespace returns the nickname bound to namespace in scope.
	LookupByNamespace(scope, namespace string) (nickname string, ok bool)

	// List returns a snapshot of scope's bindings, most recently
	// registered first. The snapshot is safe to retain.
	List(scope string) []binding.Binding
}
