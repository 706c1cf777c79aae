// Executable lmtool builds Merkle trees over files
// and produces and checks inclusion proofs for them.
package main

import (
	"os"

	"github.com/gordian-engine/lightmerkle/cmd/lmtool/internal/cmd"
)

func main() {
	os.Exit(cmd.Run(os.Args[1:], os.Stdout, os.Stderr))
}
