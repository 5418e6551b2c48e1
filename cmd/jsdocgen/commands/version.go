package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sonemaro/jsdocgen/internal/version"
)

// newVersionCommand creates the version command
func newVersionCommand() *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			if full {
				fmt.Print(version.FullVersion())
				return
			}
			fmt.Println(version.Version)
		},
	}

	cmd.Flags().BoolVarP(&full, "full", "f", false,
		"print full build information")

	return cmd
}
