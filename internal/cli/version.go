package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/claude-notify/internal/build"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Aliases: []string{"v"},
		Short:   "Display version information",
		Long:    "Display version, commit, build date, Go version and platform for claude-notify",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), build.Info())
		},
	}
}
