// Command todo is a tiny task tracker backed by a local JSON file.
package main

import (
	"context"
	"os"

	"github.com/roach88/todo/internal/cli"
)

func main() {
	os.Exit(cli.Execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
