package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gordian-engine/lightmerkle"
	"github.com/spf13/cobra"
)

// env carries the resolved global flags to each subcommand.
type env struct {
	log *slog.Logger

	hashName string
}

func (e *env) hasher() (lightmerkle.Hasher[lightmerkle.Hash32], error) {
	return NewHasher(e.hashName)
}

// Run executes lmtool with the given arguments
// and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand(stdout, stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}

// NewRootCommand builds the lmtool command tree.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var (
		e          env
		configPath string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "lmtool",
		Short: "Build Merkle trees over files and prove file inclusion",
		Long: `lmtool treats each file argument as one leaf, in argument order.

The root, proof, and verify subcommands must all be given the same hash
for their outputs to agree.`,

		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			e.log = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

			if configPath != "" {
				c, err := LoadConfig(configPath)
				if err != nil {
					return err
				}
				if !cmd.Flags().Changed("hash") && c.Hash != "" {
					e.hashName = c.Hash
				}
				e.log.Debug("Loaded config", "path", configPath, "hash", e.hashName)
			}

			// Validate early so every subcommand fails the same way.
			_, err := e.hasher()
			return err
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	pf := cmd.PersistentFlags()
	pf.StringVar(&e.hashName, "hash", "sha256", "hash function (sha256 or sha3)")
	pf.StringVar(&configPath, "config", "", "path to TOML config file")
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newRootHashCommand(&e),
		newProveCommand(&e),
		newVerifyCommand(&e),
	)

	return cmd
}

// readLeaves reads each named file in full.
func readLeaves(log *slog.Logger, paths []string) ([][]byte, error) {
	items := make([][]byte, len(paths))
	for i, p := range paths {
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read leaf %d: %w", i, err)
		}
		log.Debug("Read leaf", "index", i, "path", p, "size", len(b))
		items[i] = b
	}
	return items, nil
}

// buildTree reads the files and builds a tree over them.
func buildTree(e *env, paths []string) (*lightmerkle.Tree[lightmerkle.Hash32], error) {
	items, err := readLeaves(e.log, paths)
	if err != nil {
		return nil, err
	}

	h, err := e.hasher()
	if err != nil {
		return nil, err
	}

	tree, err := lightmerkle.Build(items, h)
	if err != nil {
		return nil, fmt.Errorf("failed to build tree: %w", err)
	}

	e.log.Debug(
		"Built tree",
		"leaves", tree.OriginalLen(),
		"padded_leaves", tree.LeafCount(),
		"height", tree.Height(),
	)
	return tree, nil
}
