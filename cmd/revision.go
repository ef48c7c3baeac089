package cmd

import (
	"github.com/spf13/cobra"
)

var revisionCmd = &cobra.Command{
	Use:     "revision [PATH]",
	Aliases: []string{"rev"},
	Short:   "Show the current revision of the repository containing PATH",
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
		return svc.Revision(path)
	},
}

func init() {
	rootCmd.AddCommand(revisionCmd)
}
