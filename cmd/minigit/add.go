package main

import (
	"path/filepath"

	"github.com/Nivl/minigit/internal/errutil"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newAddCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add PATH...",
		Short: "Add files and directories to the index",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return addCmd(cfg, args)
	}

	return cmd
}

func addCmd(cfg *globalFlags, paths []string) (err error) {
	r, err := loadRepository(cfg)
	if err != nil {
		return err
	}
	defer errutil.Close(r, &err)

	for _, p := range paths {
		// paths are relative to where the command is run, not to the
		// working tree
		if !filepath.IsAbs(p) {
			p = filepath.Join(cfg.C.String(), p)
		}
		oid, err := r.Stage(p)
		if err != nil {
			return errors.Wrapf(err, "could not add %s", p)
		}
		cfg.logger.WithField("path", p).Debugf("staged %s", oid.String())
	}
	return nil
}
