package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const noToolSelected = "None"

type toolSpec struct {
	name  string
	short string
}

// Placeholders for external assessment tools; they only report the selection.
var placeholderTools = []toolSpec{
	{name: "linpeas", short: "Linpeas module"},
	{name: "winpeas", short: "Winpeas module"},
	{name: "pspy", short: "Pspy module"},
}

func newToolCommands() []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(placeholderTools))
	for _, tool := range placeholderTools {
		cmds = append(cmds, newToolCommand(tool))
	}
	return cmds
}

func newToolCommand(tool toolSpec) *cobra.Command {
	return &cobra.Command{
		Use:   tool.name,
		Short: tool.short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Selected tool: %s\n", tool.name)
			return nil
		},
	}
}
