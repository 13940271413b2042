package cli

import (
	"fmt"
	"strings"

	"github.com/phoe-krk/pseudonyms/internal/adapters/symbols"
	"github.com/spf13/cobra"
)

type resolveCommandFlags struct {
	marker       rune
	bindingsFile string
	bound        []string
	exported     []string
	interned     []string
}

func parseResolveCommandFlags(cmd *cobra.Command) (resolveCommandFlags, error) {
	var flags resolveCommandFlags

	markerStr, _ := cmd.Flags().GetString("marker")
	markerRunes := []rune(markerStr)
	if len(markerRunes) != 1 {
		return flags, fmt.Errorf("marker must be a single character, got %q", markerStr)
	}
	flags.marker = markerRunes[0]

	flags.bindingsFile, _ = cmd.Flags().GetString("bindings")
	flags.bound, _ = cmd.Flags().GetStringArray("bind")
	flags.exported, _ = cmd.Flags().GetStringArray("export")
	flags.interned, _ = cmd.Flags().GetStringArray("intern")
	return flags, nil
}

// splitBindingSpec parses a NAMESPACE=NICKNAME binding given on the command
// line.
func splitBindingSpec(spec string) (namespace, nickname string, err error) {
	parts := strings.SplitN(spec, "=", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("binding spec must look like NAMESPACE=NICKNAME, got %q", spec)
	}
	return parts[0], parts[1], nil
}

// populateSymbolTable interns the NAMESPACE:NAME pairs given on the command
// line, exporting the ones from --export.
func populateSymbolTable(table *symbols.Table, exported, interned []string) error {
	for _, spec := range exported {
		namespace, name, err := splitSymbolSpec(spec)
		if err != nil {
			return err
		}
		table.DefineNamespace(namespace)
		if _, err := table.Export(namespace, name); err != nil {
			return fmt.Errorf("could not export %q: %w", spec, err)
		}
	}
	for _, spec := range interned {
		namespace, name, err := splitSymbolSpec(spec)
		if err != nil {
			return err
		}
		table.DefineNamespace(namespace)
		if _, err := table.Intern(namespace, name); err != nil {
			return fmt.Errorf("could not intern %q: %w", spec, err)
		}
	}
	return nil
}

func splitSymbolSpec(spec string) (namespace, name string, err error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("symbol spec must look like NAMESPACE:NAME, got %q", spec)
	}
	return parts[0], parts[1], nil
}
