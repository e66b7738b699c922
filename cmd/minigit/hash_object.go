package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Nivl/minigit/ginternals/githash"
	"github.com/Nivl/minigit/ginternals/object"
	"github.com/Nivl/minigit/internal/errutil"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type hashObjectCmdFlags struct {
	typ   string
	write bool
}

func newHashObjectCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash-object FILE",
		Short: "Compute object ID and optionally creates a blob from a file",
		Args:  cobra.ExactArgs(1),
	}

	flags := hashObjectCmdFlags{}
	cmd.Flags().StringVarP(&flags.typ, "type", "t", "blob", "Specify the type")
	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "Actually write the object into the object database.")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return hashObjectCmd(cmd.OutOrStdout(), cfg, flags, args[0])
	}

	return cmd
}

func hashObjectCmd(out io.Writer, cfg *globalFlags, flags hashObjectCmdFlags, filePath string) (err error) {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(cfg.C.String(), filePath)
	}
	content, err := os.ReadFile(filePath)
	if err != nil {
		return errors.Wrapf(err, "could not read %s", filePath)
	}

	typ, err := object.NewTypeFromString(flags.typ)
	if err != nil {
		return errors.Wrapf(err, "unsupported object type %s", flags.typ)
	}
	if flags.write && typ != object.TypeBlob {
		return errors.Errorf("only blobs can be written, not %s", flags.typ)
	}

	// The hash of the repository is only known when writing
	hash := githash.NewSHA1()
	o := object.New(hash, typ, content)
	switch typ {
	case object.TypeCommit:
		if _, err = o.AsCommit(); err != nil {
			return errors.Wrap(err, "invalid commit file")
		}
	case object.TypeTree:
		if _, err = o.AsTree(); err != nil {
			return errors.Wrap(err, "invalid tree file")
		}
	}

	if !flags.write {
		fmt.Fprintln(out, o.ID().String())
		return nil
	}

	r, err := loadRepository(cfg)
	if err != nil {
		return err
	}
	defer errutil.Close(r, &err)

	blob, err := r.NewBlob(content)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, blob.ID().String())
	return nil
}
