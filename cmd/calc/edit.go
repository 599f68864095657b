package main

import (
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calc/internal/editor"
)

func newEditCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Evaluate as you type",
		Long: `Edit opens a text box whose value is shown below it and updated on every
keystroke. ctrl+l clears the text; esc or ctrl+c quits.`,
		Args: cobra.NoArgs,
		RunE: a.runEdit,
	}
}

func (a *app) runEdit(cmd *cobra.Command, args []string) error {
	a.log.Debug("starting editor")
	// The editor owns the terminal, so its logs go only to the file.
	return editor.Run(cmd.Context(), a.cfg.Display.Prompt, a.log.FileOnly(), cmd.InOrStdin(), cmd.OutOrStdout())
}
