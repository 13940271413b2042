package cli

import (
	"fmt"

	"github.com/phoe-krk/pseudonyms/internal/core/ports"
	"github.com/phoe-krk/pseudonyms/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewBindCommand creates the 'bind' subcommand.
func NewBindCommand(registry ports.NicknameRegistry) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bind NAMESPACE NICKNAME",
		Short: "Bind a nickname to a fully-qualified namespace name.",
		Long: `Registers NICKNAME as a pseudonym for NAMESPACE in the current scope.
Both directions of the mapping must be free: a nickname can stand for only
one namespace, and a namespace can carry only one nickname per scope.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBindCmd(cmd, args, registry)
		},
	}
	return cmd
}

func runBindCmd(cmd *cobra.Command, args []string, registry ports.NicknameRegistry) error {
	namespace, nickname := args[0], args[1]

	confirmation, err := registry.Register(scopeFlag(cmd), namespace, nickname)
	if err != nil {
		return fmt.Errorf("could not bind %q: %w", nickname, err)
	}

	fmt.Println(ui.SuccessColor(confirmation))
	return nil
}
