package cli

import (
	"fmt"

	"github.com/phoe-krk/pseudonyms/internal/core/ports"
	"github.com/phoe-krk/pseudonyms/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewUnbindCommand creates the 'unbind' subcommand.
func NewUnbindCommand(registry ports.NicknameRegistry) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unbind DATUM",
		Short: "Remove a pseudonym binding by nickname or namespace name.",
		Long: `Removes the binding whose nickname or namespace equals DATUM in the
current scope. Unbinding something that was never bound is a no-op.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnbindCmd(cmd, args, registry)
		},
	}
	return cmd
}

func runUnbindCmd(cmd *cobra.Command, args []string, registry ports.NicknameRegistry) error {
	datum := registry.Unregister(scopeFlag(cmd), args[0])
	fmt.Println(ui.InfoColor(fmt.Sprintf("Unbound %q (if it was bound).", datum)))
	return nil
}
