// Command talonfmt reads a parsed Talon AST and prints its canonical text form.
//
// This module does not own parsing, so the driver accepts the AST as JSON rather than raw Talon
// source: a real deployment would sit this CLI behind a parser front-end that emits the same
// shape this tool reads.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
