package main

import (
	"github.com/Nivl/minigit/internal/errutil"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newCheckoutCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkout COMMIT",
		Short: "Replace the working tree by the content of a commit",
		Long:  "Replace the working tree by the content of a commit.\n\nEverything at the root of the working tree is removed, except the repository and the paths matching checkout.protect. This cannot be undone.",
		Args:  cobra.ExactArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return checkoutCmd(cfg, args[0])
	}

	return cmd
}

func checkoutCmd(cfg *globalFlags, sha string) (err error) {
	r, err := loadRepository(cfg)
	if err != nil {
		return err
	}
	defer errutil.Close(r, &err)

	oid, err := r.Hash().ConvertFromString(sha)
	if err != nil {
		return errors.Wrapf(err, "not a valid commit %s", sha)
	}
	return r.Checkout(oid)
}
