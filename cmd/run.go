package cmd

import (
	"github.com/spf13/cobra"

	"github.com/joelmoss/vcsinfo/internal/errs"
	"github.com/joelmoss/vcsinfo/internal/vcs"
)

var (
	yesFlag    bool
	chooseFlag bool
)

var runCmd = &cobra.Command{
	Use:   "run ACTION [PATH]",
	Short: "Launch the repository's GUI tool for an action",
	Long:  "Launch the commit or browse GUI tool of the repository containing PATH. The first installed candidate tool is used unless --choose is given.",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		action := vcs.Action(args[0])
		if action != vcs.ActionCommit && action != vcs.ActionBrowse {
			return errs.ErrUnknownAction
		}

		svc, err := newService()
		if err != nil {
			return err
		}
		path, err := targetPath(args[1:])
		if err != nil {
			return err
		}
		return svc.Launch(path, action, yesFlag, chooseFlag)
	},
}

func init() {
	runCmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "Launch without confirmation")
	runCmd.Flags().BoolVarP(&chooseFlag, "choose", "c", false, "Pick which installed tool to launch")
	rootCmd.AddCommand(runCmd)
}
