package main

import (
	"fmt"
	"io"

	"github.com/Nivl/minigit/ginternals/object"
	"github.com/Nivl/minigit/internal/errutil"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var errBadFile = errors.New("bad file")

func newCatFileCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cat-file [TYPE] OBJECT",
		Short: "Provide the content of repository objects",
		Long:  "Provide the content of repository objects.\n\nObjects are stored without their type. When TYPE is provided, the object is parsed as TYPE and pretty-printed.",
		Args:  cobra.RangeArgs(1, 2),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		p := catFileParams{
			objectName: args[0],
		}
		if len(args) == 2 {
			p.typ = args[0]
			p.objectName = args[1]
		}
		return catFileCmd(cmd.OutOrStdout(), cfg, p)
	}
	return cmd
}

type catFileParams struct {
	objectName string
	typ        string
}

func catFileCmd(out io.Writer, cfg *globalFlags, p catFileParams) (err error) {
	var typ object.Type
	if p.typ != "" {
		typ, err = object.NewTypeFromString(p.typ)
		if err != nil {
			return errors.Wrapf(err, "%s", p.typ)
		}
	}

	r, err := loadRepository(cfg)
	if err != nil {
		return err
	}
	defer errutil.Close(r, &err)

	oid, err := r.Hash().ConvertFromString(p.objectName)
	if err != nil {
		return errors.Wrapf(err, "not a valid object name %s", p.objectName)
	}

	switch typ {
	case object.TypeCommit:
		c, err := r.GetCommit(oid)
		if err != nil {
			return errors.Wrapf(errBadFile, "%s: %s", p.objectName, err.Error())
		}
		fmt.Fprintf(out, "tree %s\n", c.TreeID().String())
		if !c.IsRoot() {
			fmt.Fprintf(out, "parent %s\n", c.ParentID().String())
		}
		fmt.Fprintf(out, "author %s\n", c.Author())
		fmt.Fprintf(out, "date %s\n", c.Date().Format(object.DateFormat))
		fmt.Fprintln(out, "")
		fmt.Fprintln(out, c.Message())
	case object.TypeTree:
		tree, err := r.GetTree(oid)
		if err != nil {
			return errors.Wrapf(errBadFile, "%s: %s", p.objectName, err.Error())
		}
		for _, e := range tree.Entries() {
			fmt.Fprintf(out, "%s %s\t%s\n", e.Type.String(), e.ID.String(), e.Path)
		}
	default:
		// blobs and untyped objects are printed as-is
		blob, err := r.GetBlob(oid)
		if err != nil {
			return err
		}
		if _, err = out.Write(blob.Bytes()); err != nil {
			return errors.Wrap(err, "could not write the object")
		}
	}
	return nil
}
