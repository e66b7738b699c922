package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/Nivl/minigit"
	"github.com/Nivl/minigit/ginternals/object"
	"github.com/Nivl/minigit/internal/errutil"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newLogCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the commit logs",
		Args:  cobra.NoArgs,
	}

	maxCount := cmd.Flags().IntP("max-count", "n", 0, "Limit the number of commits to output.")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return logCmd(cmd.OutOrStdout(), cfg, *maxCount)
	}

	return cmd
}

func logCmd(out io.Writer, cfg *globalFlags, maxCount int) (err error) {
	r, err := loadRepository(cfg)
	if err != nil {
		return err
	}
	defer errutil.Close(r, &err)

	head, err := r.Head()
	if err != nil {
		return errors.Wrap(err, "could not get HEAD")
	}

	count := 0
	return r.WalkHistory(head, func(c *object.Commit) error {
		if maxCount > 0 && count == maxCount {
			return git.WalkStop
		}
		count++

		fmt.Fprintf(out, "commit %s\n", c.ID().String())
		fmt.Fprintf(out, "Author: %s\n", c.Author())
		fmt.Fprintf(out, "Date:   %s\n\n", c.Date().Format(object.DateFormat))
		for _, line := range strings.Split(c.Message(), "\n") {
			fmt.Fprintf(out, "    %s\n", line)
		}
		fmt.Fprintln(out, "")
		return nil
	})
}
