// Command revcache loads a git repository into a revision cache and
// answers queries against it.
package main

import (
	"context"
	"os"

	"github.com/jmgilman/go/revcache/internal/cli"
)

func main() {
	os.Exit(cli.Execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
