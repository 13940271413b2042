package cli

import (
	"fmt"
	"os"

	"github.com/phoe-krk/pseudonyms/internal/core/ports"
	"github.com/phoe-krk/pseudonyms/internal/core/services/registry"
	"github.com/phoe-krk/pseudonyms/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewListCommand creates the 'list' subcommand.
func NewListCommand(reg ports.NicknameRegistry) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pseudonym bindings in the current scope.",
		Long:  `Displays the bindings of the current scope, most recently bound first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListCmd(cmd, args, reg)
		},
	}
	cmd.Flags().Bool("plain", false, "Print plain \"namespace => nickname\" lines instead of a table.")
	return cmd
}

// runListCmd contains the core logic for the 'list' command.
func runListCmd(
	cmd *cobra.Command,
	_ []string,
	reg ports.NicknameRegistry,
) error {
	scope := scopeFlag(cmd)

	if plain, _ := cmd.Flags().GetBool("plain"); plain {
		registry.FprintBindings(os.Stdout, reg, scope)
		return nil
	}

	bindings := reg.List(scope)
	if len(bindings) == 0 {
		fmt.Println(ui.InfoColor(fmt.Sprintf("No pseudonyms defined in scope %s.", scope)))
		return nil
	}

	fmt.Println(ui.HeaderColor(fmt.Sprintf("Pseudonyms defined in scope %s:", scope)))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Nickname", "Namespace"})
	table.SetBorder(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, b := range bindings {
		table.Append([]string{b.Nickname, b.Namespace})
	}
	table.Render()
	return nil
}
