package cli

import (
	"fmt"

	"github.com/phoe-krk/pseudonyms/internal/adapters/symbols"
	"github.com/phoe-krk/pseudonyms/internal/core/ports"
	"github.com/spf13/cobra"
)

// defaultScope stands in for the caller's current namespace. Every command
// takes the scope explicitly through --scope rather than reading ambient
// state.
const defaultScope = "user"

var rootCmd *cobra.Command

func NewRootCommand(
	version string,
	registry ports.NicknameRegistry,
	symbolTable *symbols.Table,
) *cobra.Command {
	rootCmd = &cobra.Command{
		Use:   "pseudonyms",
		Short: "pseudonyms manages scoped nicknames for namespace names.",
		Long: `pseudonyms lets you bind short nicknames to fully-qualified namespace
names and resolve prefixed tokens like $nick:identifier back into the
namespace-qualified identifier they stand for.`,
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if registry == nil {
				return fmt.Errorf("nickname registry not initialized for command %s", cmd.Name())
			}
			if symbolTable == nil && cmd.Name() == "resolve" {
				return fmt.Errorf("symbol table not initialized for command %s", cmd.Name())
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().String("scope", defaultScope,
		"Scope (owning namespace) the command operates in.")

	rootCmd.AddCommand(NewBindCommand(registry))
	rootCmd.AddCommand(NewUnbindCommand(registry))
	rootCmd.AddCommand(NewListCommand(registry))
	rootCmd.AddCommand(NewLoadCommand(registry))
	rootCmd.AddCommand(NewResolveCommand(registry, symbolTable))

	return rootCmd
}

// scopeFlag reads the persistent --scope flag, falling back to the default
// when the flag is somehow unset.
func scopeFlag(cmd *cobra.Command) string {
	scope, err := cmd.Flags().GetString("scope")
	if err != nil || scope == "" {
		return defaultScope
	}
	return scope
}
