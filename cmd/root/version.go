package root

import (
	"github.com/spf13/cobra"

	"github.com/o0x0o/pigment/pkg/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("pigment version %s\n", version.Version)
			cmd.Printf("Commit: %s\n", version.Commit)
		},
	}
}
