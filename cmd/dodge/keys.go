package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/platform/tui"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show key bindings",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Print(formatKeys(tui.DefaultKeyMap()))
	},
}

// formatKeys lists every binding with all of its keys. Keys are case-sensitive.
func formatKeys(km tui.KeyMap) string {
	var sb strings.Builder
	sb.WriteString("Key bindings (case-sensitive):\n\n")
	for _, col := range km.FullHelp() {
		for _, b := range col {
			writeBinding(&sb, b)
		}
	}
	return sb.String()
}

func writeBinding(sb *strings.Builder, b key.Binding) {
	fmt.Fprintf(sb, "  %-10s %s\n", strings.Join(b.Keys(), ", "), b.Help().Desc)
}
