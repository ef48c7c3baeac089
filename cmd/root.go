package cmd

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/joelmoss/vcsinfo/internal/config"
	"github.com/joelmoss/vcsinfo/internal/inspect"
	"github.com/joelmoss/vcsinfo/internal/log"
	"github.com/joelmoss/vcsinfo/internal/ui"
	"github.com/joelmoss/vcsinfo/internal/vcs"
)

var (
	verbose    bool
	logFile    string
	versionStr = "dev"
)

func SetVersion(v string) {
	versionStr = v
}

var rootCmd = &cobra.Command{
	Use:          "vcsinfo",
	Short:        "Inspect Git and Mercurial repositories",
	Long:         "Detect the repository containing a path and report its root, status, revision and refs, or launch the matching commit/browse GUI tool.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return log.SetFile(logFile)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed and verbose output")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write debug logs to this file")
}

func Execute(ctx context.Context) error {
	defer func() { _ = log.Close() }()
	return rootCmd.ExecuteContext(ctx)
}

func newService() (*inspect.Service, error) {
	cfg := config.New("")
	settings, err := cfg.Read()
	if err != nil {
		return nil, err
	}

	client := vcs.NewClient()
	client.ExtraTools = toolOverrides(settings)

	return &inspect.Service{
		VCS:       client,
		Config:    cfg,
		Out:       os.Stdout,
		Verbose:   verbose,
		ConfirmFn: ui.Confirm,
		ChooseFn:  ui.Select,
	}, nil
}

// toolOverrides converts the config's tool table into launch candidates.
func toolOverrides(settings config.Settings) map[string]map[vcs.Action][]vcs.Tool {
	if len(settings.Tools) == 0 {
		return nil
	}
	overrides := map[string]map[vcs.Action][]vcs.Tool{}
	for vcsName, actions := range settings.Tools {
		overrides[vcsName] = map[vcs.Action][]vcs.Tool{}
		for action, specs := range actions {
			tools := make([]vcs.Tool, 0, len(specs))
			for _, ts := range specs {
				tools = append(tools, vcs.Tool{Name: ts.Name, Args: ts.Args})
			}
			overrides[vcsName][vcs.Action(action)] = tools
		}
	}
	return overrides
}

func getCwd() (string, error) {
	return os.Getwd()
}

// targetPath resolves the optional positional PATH argument, defaulting to
// the current directory.
func targetPath(args []string) (string, error) {
	if len(args) > 0 {
		return filepath.Abs(args[0])
	}
	return getCwd()
}
