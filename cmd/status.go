package cmd

import (
	"github.com/spf13/cobra"
)

var watchFlag bool

var statusCmd = &cobra.Command{
	Use:     "status [PATH]",
	Aliases: []string{"st"},
	Short:   "Show the working-tree status of the repository containing PATH",
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
		if watchFlag {
			return svc.WatchStatus(cmd.Context(), path)
		}
		return svc.Status(path)
	},
}

func init() {
	statusCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Re-print the status whenever the repository changes")
	rootCmd.AddCommand(statusCmd)
}
