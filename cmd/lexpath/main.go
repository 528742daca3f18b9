// Command lexpath runs the lexpath searches from the command line.
//
//	lexpath shortest --source s                       # sample weighted graph
//	lexpath bfs --source s --edge s:a --edge a:b      # graph from flags
//	lexpath path --source s --dest d --sep " -> "
//
// Edges are given as "from:to[:weight]"; without any --edge flag the commands
// use built-in sample graphs.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
