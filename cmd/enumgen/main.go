// Command enumgen generates Go enum packages from definition files.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/enumset/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
