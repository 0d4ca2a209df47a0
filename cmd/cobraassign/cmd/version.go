package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cobraops/cobraops/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), version.Current().String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
