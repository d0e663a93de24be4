package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blank/internal/registry"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List available backends",
	Long:  `Shows the backends compiled into this binary.`,
	Args:  cobra.NoArgs,
	Run:   runBackends,
}

func runBackends(cmd *cobra.Command, args []string) {
	backends := registry.List()

	if len(backends) == 0 {
		fmt.Println("No backends available.")
		return
	}

	fmt.Println("Available backends:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, b := range backends {
		if len(b.Name) > maxNameLen {
			maxNameLen = len(b.Name)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")

	for _, b := range backends {
		desc := b.Description
		if b.Name == defaultBackend {
			desc += " (default)"
		}
		fmt.Printf("  %-*s  %s\n", maxNameLen, b.Name, desc)
	}

	fmt.Println()
	fmt.Println("Run 'blank run --backend <name>' to use one.")
}
