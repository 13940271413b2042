package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/phoe-krk/pseudonyms/internal/core/ports"
	"github.com/phoe-krk/pseudonyms/internal/handlers/ui"
)

/*
registerPredefinedBindings registers every binding the provider yields,
scope by scope in sorted order so output is stable. A binding that fails to
register (usually a conflict) is reported on stderr and skipped; only a
provider failure aborts the whole load.
*/
func registerPredefinedBindings(
	provider ports.PredefinedBindingProvider,
	registry ports.NicknameRegistry,
) (registered, skipped int, err error) {
	byScope, err := provider.GetPredefinedBindings()
	if err != nil {
		return 0, 0, err
	}

	scopes := make([]string, 0, len(byScope))
	for scope := range byScope {
		scopes = append(scopes, scope)
	}
	sort.Strings(scopes)

	for _, scope := range scopes {
		for _, b := range byScope[scope] {
			confirmation, regErr := registry.Register(scope, b.Namespace, b.Nickname)
			if regErr != nil {
				fmt.Fprintln(os.Stderr, ui.WarningColor(
					fmt.Sprintf("Skipping binding in scope %s: %v", scope, regErr)))
				skipped++
				continue
			}
			fmt.Println(ui.SuccessColor(fmt.Sprintf("[%s] %s", scope, confirmation)))
			registered++
		}
	}
	return registered, skipped, nil
}
