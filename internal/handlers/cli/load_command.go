package cli

import (
	"fmt"

	"github.com/phoe-krk/pseudonyms/internal/adapters/predefinedbindings"
	"github.com/phoe-krk/pseudonyms/internal/core/ports"
	"github.com/phoe-krk/pseudonyms/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewLoadCommand creates the 'load' subcommand.
func NewLoadCommand(registry ports.NicknameRegistry) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load FILE",
		Short: "Register predefined bindings from a YAML file.",
		Long: `Reads a YAML file mapping scope names to lists of bindings and registers
each binding in its scope. Bindings that conflict with existing ones are
reported and skipped; the rest of the file is still processed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoadCmd(cmd, args, registry)
		},
	}
	return cmd
}

func runLoadCmd(_ *cobra.Command, args []string, registry ports.NicknameRegistry) error {
	provider, err := predefinedbindings.NewYAMLProvider(args[0])
	if err != nil {
		return fmt.Errorf("could not open predefined bindings: %w", err)
	}

	registered, skipped, err := registerPredefinedBindings(provider, registry)
	if err != nil {
		return fmt.Errorf("could not load predefined bindings: %w", err)
	}

	if registered == 0 && skipped == 0 {
		fmt.Println(ui.InfoColor(fmt.Sprintf("No predefined bindings found in %s.", args[0])))
		return nil
	}
	fmt.Println(ui.InfoColor(fmt.Sprintf("Registered %d binding(s), skipped %d.", registered, skipped)))
	return nil
}
