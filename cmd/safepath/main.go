// SPDX-License-Identifier: MIT

// Command safepath finds the safest route through a road network.
//
//	safepath find [FROM TO] [--json] [--max-distance D]
//	safepath nodes
//	safepath serve [--addr HOST:PORT]
//
// Exit status is 0 on success, 2 when the destination is unreachable and 1
// on any other failure.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/safepath/route"
)

// Exit codes.
const (
	exitOK          = 0
	exitFailure     = 1
	exitUnreachable = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "safepath: %v\n", err)
		return exitCode(err)
	}
	return exitOK
}

func exitCode(err error) int {
	if errors.Is(err, route.ErrUnreachable) {
		return exitUnreachable
	}
	return exitFailure
}
