package cmd

import (
	"github.com/spf13/cobra"
)

var rootPathCmd = &cobra.Command{
	Use:     "root [PATH]",
	Aliases: []string{"r"},
	Short:   "Print the repository root containing PATH",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		path, err := targetPath(args)
		if err != nil {
			return err
		}
		return svc.Root(path)
	},
}

func init() {
	rootCmd.AddCommand(rootPathCmd)
}
