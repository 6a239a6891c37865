// Command pagelist shows a paginated list with Previous and Next navigation.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rshade/pagelist/internal/cli"
	"github.com/rshade/pagelist/pkg/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI with args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	root := cli.NewRootCmd(version.Display())
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
