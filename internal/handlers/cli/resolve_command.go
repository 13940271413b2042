package cli

import (
	"fmt"

	"github.com/phoe-krk/pseudonyms/internal/adapters/predefinedbindings"
	"github.com/phoe-krk/pseudonyms/internal/adapters/reader"
	"github.com/phoe-krk/pseudonyms/internal/adapters/symbols"
	"github.com/phoe-krk/pseudonyms/internal/core/ports"
	"github.com/phoe-krk/pseudonyms/internal/core/services/resolution"
	"github.com/phoe-krk/pseudonyms/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewResolveCommand creates the 'resolve' subcommand.
func NewResolveCommand(registry ports.NicknameRegistry, symbolTable *symbols.Table) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve TOKEN",
		Short: "Resolve a pseudonym-prefixed token to a qualified identifier.",
		Long: `Reads TOKEN through the pseudonym-aware reader and prints the resolved
namespace-qualified identifier. A token like $m:add requires "add" to be
exported by the namespace m stands for; $m::add accepts internal
identifiers as well.

Because the registry lives in memory, the bindings to resolve against are
supplied on the command line: --bind pkg.math=m registers a single binding,
--bindings FILE loads a predefined bindings file first. The --export and
--intern flags populate the demo symbol table before the read, e.g.
--export pkg.math:add.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolveCmd(cmd, args, registry, symbolTable)
		},
	}

	cmd.Flags().String("marker", string(reader.DefaultMarker), "Marker character that triggers resolution.")
	cmd.Flags().String("bindings", "", "YAML file of predefined bindings to load before resolving.")
	cmd.Flags().StringArray("bind", nil, "NAMESPACE=NICKNAME to register in the current scope before resolving (repeatable).")
	cmd.Flags().StringArray("export", nil, "NAMESPACE:NAME to intern and export before resolving (repeatable).")
	cmd.Flags().StringArray("intern", nil, "NAMESPACE:NAME to intern without exporting before resolving (repeatable).")

	return cmd
}

func runResolveCmd(
	cmd *cobra.Command,
	args []string,
	registry ports.NicknameRegistry,
	symbolTable *symbols.Table,
) error {
	flags, err := parseResolveCommandFlags(cmd)
	if err != nil {
		return err
	}

	if flags.bindingsFile != "" {
		provider, err := predefinedbindings.NewYAMLProvider(flags.bindingsFile)
		if err != nil {
			return fmt.Errorf("could not open predefined bindings: %w", err)
		}
		if _, _, err := registerPredefinedBindings(provider, registry); err != nil {
			return fmt.Errorf("could not load predefined bindings: %w", err)
		}
	}
	for _, spec := range flags.bound {
		namespace, nickname, err := splitBindingSpec(spec)
		if err != nil {
			return err
		}
		if _, err := registry.Register(scopeFlag(cmd), namespace, nickname); err != nil {
			return fmt.Errorf("could not bind %q: %w", spec, err)
		}
	}

	if err := populateSymbolTable(symbolTable, flags.exported, flags.interned); err != nil {
		return err
	}

	// Every namespace a binding points at has to exist before the read.
	for _, b := range registry.List(scopeFlag(cmd)) {
		symbolTable.DefineNamespace(b.Namespace)
	}

	rd := reader.New(scopeFlag(cmd))
	rd.SetMacroCharacter(flags.marker, resolution.NewResolver(registry, symbolTable))

	sym, err := rd.ReadString(args[0])
	if err != nil {
		return fmt.Errorf("could not resolve %q: %w", args[0], err)
	}

	if sym.Namespace == "" {
		fmt.Println(ui.InfoColor(fmt.Sprintf("%s is a plain identifier (no pseudonym involved).", sym.Name)))
		return nil
	}
	fmt.Println(ui.SuccessColor(fmt.Sprintf("%s resolves to %s",
		args[0], ui.NamespaceColor(sym.String()))))
	return nil
}
