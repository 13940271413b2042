/*
Package binding defines the core domain entity for a pseudonym binding.
*/
package binding

/*
Binding associates a short nickname with a fully-qualified namespace name,
scoped to the namespace it was registered from. This is a core domain entity.
*/
type Binding struct {
	Namespace string `yaml:"namespace"`
	Nickname  string `yaml:"nickname"`
}
