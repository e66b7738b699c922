package main

import (
	"fmt"
	"io"

	"github.com/Nivl/minigit"
	"github.com/Nivl/minigit/ginternals/config"
	"github.com/Nivl/minigit/internal/errutil"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newInitCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an empty repository",
		Args:  cobra.NoArgs,
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return initCmd(cmd.OutOrStdout(), cfg)
	}

	return cmd
}

func initCmd(out io.Writer, cfg *globalFlags) (err error) {
	opts, err := config.LoadConfig(cfg.env, config.LoadConfigOptions{
		WorkingDirectory: cfg.C.String(),
		SkipGitDirLookUp: true,
	})
	if err != nil {
		return errors.Wrap(err, "could not load the config")
	}

	r, err := git.InitRepositoryWithOptions(opts.WorkTreePath, git.InitOptions{
		Config: opts,
		Logger: cfg.logger,
	})
	if err != nil {
		return err
	}
	defer errutil.Close(r, &err)

	fmt.Fprintf(out, "Initialized empty minigit repository in %s\n", opts.GitDirPath)
	return nil
}
