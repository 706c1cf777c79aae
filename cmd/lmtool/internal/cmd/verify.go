package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/gordian-engine/lightmerkle"
	"github.com/gordian-engine/lightmerkle/lmverify"
	"github.com/spf13/cobra"
)

func newVerifyCommand(e *env) *cobra.Command {
	var rootHex, lemmaList, pathBits string

	cmd := &cobra.Command{
		Use:   "verify --root HEX --lemma HEX,HEX,... --path BITS FILE",
		Short: "Check that a file is included under a trusted root",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := lightmerkle.ParseHash32(rootHex)
			if err != nil {
				return fmt.Errorf("invalid --root: %w", err)
			}

			var lemma []lightmerkle.Hash32
			for i, s := range strings.Split(lemmaList, ",") {
				d, err := lightmerkle.ParseHash32(strings.TrimSpace(s))
				if err != nil {
					return fmt.Errorf("invalid --lemma entry %d: %w", i, err)
				}
				lemma = append(lemma, d)
			}

			path, err := parsePath(pathBits)
			if err != nil {
				return fmt.Errorf("invalid --path: %w", err)
			}

			p, err := lightmerkle.NewProof(lemma, path)
			if err != nil {
				return err
			}

			item, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read item: %w", err)
			}

			h, err := e.hasher()
			if err != nil {
				return err
			}

			if err := lmverify.VerifyItem(h, root, item, p); err != nil {
				return err
			}

			e.log.Debug("Verified inclusion", "index", p.Index(), "root", root)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok index=%d\n", p.Index())
			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&rootHex, "root", "", "trusted root hash, hex encoded")
	f.StringVar(&lemmaList, "lemma", "", "comma-separated lemma hashes, leaf first and root last")
	f.StringVar(&pathBits, "path", "", "path bits, 1 for left and 0 for right")
	_ = cmd.MarkFlagRequired("root")
	_ = cmd.MarkFlagRequired("lemma")
	_ = cmd.MarkFlagRequired("path")

	return cmd
}
