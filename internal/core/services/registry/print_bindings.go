package registry

import (
	"fmt"
	"io"

	"github.com/phoe-krk/pseudonyms/internal/core/ports"
)

/*
FprintBindings writes a human-readable listing of scope's bindings to w and
returns the number of bindings printed. When the scope has no bindings, a
notice naming the scope is written instead. The output is for people, not
machines; its exact shape carries no stability guarantee.
*/
func FprintBindings(w io.Writer, reg ports.NicknameRegistry, scope string) int {
	bindings := reg.List(scope)
	if len(bindings) == 0 {
		fmt.Fprintf(w, "No pseudonyms defined in scope %s.\n", scope)
		return 0
	}

	fmt.Fprintf(w, "Pseudonyms defined in scope %s:\n", scope)
	for _, b := range bindings {
		fmt.Fprintf(w, "%s => %s\n", b.Namespace, b.Nickname)
	}
	return len(bindings)
}
