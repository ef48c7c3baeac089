package cmd

import (
	"github.com/spf13/cobra"
)

var refsCmd = &cobra.Command{
	Use:   "refs [PATH]",
	Short: "List branches, tags and modified files of the Git checkout containing PATH",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		path, err := targetPath(args)
		if err != nil {
			return err
		}
		return svc.Refs(path)
	},
}

func init() {
	rootCmd.AddCommand(refsCmd)
}
