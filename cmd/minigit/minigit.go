package main

import (
	"github.com/Nivl/minigit/internal/env"
	"github.com/Nivl/minigit/internal/pathutil"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type globalFlags struct {
	env     *env.Env
	logger  *logrus.Logger
	C       pflag.Value // simpler version of git's -C: https://git-scm.com/docs/git#Documentation/git.txt--Cltpathgt
	verbose bool
}

func newRootCmd(cwd string, e *env.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "minigit",
		Short:         "minimal version control system",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cfg := &globalFlags{
		env:    e,
		logger: logrus.New(),
	}
	cfg.C = pathutil.NewDirPathFlagWithDefault(cwd)
	cmd.PersistentFlags().VarP(cfg.C, "C", "C", "Run as if minigit was started in the provided path instead of the current working directory.")
	cmd.PersistentFlags().BoolVarP(&cfg.verbose, "verbose", "v", false, "Print debug logs.")

	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		cfg.logger.SetOutput(cmd.ErrOrStderr())
		if cfg.verbose {
			cfg.logger.SetLevel(logrus.DebugLevel)
		}
	}

	// porcelain
	cmd.AddCommand(newInitCmd(cfg))
	cmd.AddCommand(newAddCmd(cfg))
	cmd.AddCommand(newCommitCmd(cfg))
	cmd.AddCommand(newCheckoutCmd(cfg))
	cmd.AddCommand(newLogCmd(cfg))

	// plumbing
	cmd.AddCommand(newCatFileCmd(cfg))
	cmd.AddCommand(newHashObjectCmd(cfg))

	return cmd
}
