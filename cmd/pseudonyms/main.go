package main

import (
	"os"

	"github.com/phoe-krk/pseudonyms/internal/adapters/symbols"
	"github.com/phoe-krk/pseudonyms/internal/core/services/registry"
	"github.com/phoe-krk/pseudonyms/internal/handlers/cli"
)

// Version is set at build time
var Version = "dev"

func main() {
	nicknameRegistry := registry.NewService()
	symbolTable := symbols.NewTable()

	rootCmd := cli.NewRootCommand(Version, nicknameRegistry, symbolTable)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
