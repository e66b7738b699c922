package main

import (
	"fmt"
	"io"

	"github.com/Nivl/minigit/internal/errutil"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type commitCmdFlags struct {
	message string
	author  string
}

func newCommitCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Record the staged changes",
		Args:  cobra.NoArgs,
	}

	flags := commitCmdFlags{}
	cmd.Flags().StringVarP(&flags.message, "message", "m", "", "Use the given message as the commit message.")
	cmd.Flags().StringVar(&flags.author, "author", "", "Override the commit author. Defaults to user.name.")
	_ = cmd.MarkFlagRequired("message")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return commitCmd(cmd.OutOrStdout(), cfg, flags)
	}

	return cmd
}

func commitCmd(out io.Writer, cfg *globalFlags, flags commitCmdFlags) (err error) {
	r, err := loadRepository(cfg)
	if err != nil {
		return err
	}
	defer errutil.Close(r, &err)

	author := flags.author
	if author == "" {
		name, ok := r.Config.FromFiles().UserName()
		if !ok {
			return errors.New("no author provided and user.name is not set")
		}
		author = name
	}

	oid, err := r.Commit(author, flags.message)
	if err != nil {
		return errors.Wrap(err, "could not commit")
	}
	fmt.Fprintf(out, "[%s] %s\n", oid.String(), flags.message)
	return nil
}
