package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/gordian-engine/lightmerkle"
	"github.com/spf13/cobra"
)

func newProveCommand(e *env) *cobra.Command {
	var index int

	cmd := &cobra.Command{
		Use:   "prove --index N FILE FILE...",
		Short: "Print the inclusion proof for one of the given files",
		Long: `Print the inclusion proof for the file at --index.

The output has one root line, one lemma line per lemma entry
(leaf first, root last), and one path line of 1 (left) and 0 (right) bits.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := buildTree(e, args)
			if err != nil {
				return err
			}

			p, err := tree.Prove(index)
			if err != nil {
				return err
			}

			return writeProof(cmd.OutOrStdout(), tree.Root(), p)
		},
	}

	cmd.Flags().IntVarP(&index, "index", "i", 0, "index of the file to prove")

	return cmd
}

func writeProof(w io.Writer, root lightmerkle.Hash32, p lightmerkle.Proof[lightmerkle.Hash32]) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "root %s\n", root)
	for _, d := range p.Lemma() {
		fmt.Fprintf(&sb, "lemma %s\n", d)
	}
	fmt.Fprintf(&sb, "path %s\n", formatPath(p.Path()))

	_, err := io.WriteString(w, sb.String())
	return err
}

func formatPath(path []bool) string {
	b := make([]byte, len(path))
	for i, left := range path {
		if left {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}
	return string(b)
}

func parsePath(s string) ([]bool, error) {
	path := make([]bool, len(s))
	for i, c := range s {
		switch c {
		case '1':
			path[i] = true
		case '0':
		default:
			return nil, fmt.Errorf("invalid path bit %q at offset %d", c, i)
		}
	}
	return path, nil
}
