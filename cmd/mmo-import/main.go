// Command mmo-import converts the legacy MMO dictionary export into the new
// entry schema. It writes the converted entries plus every legacy field the
// conversion did not consume ("leftovers") for auditing.
//
// Subcommands:
//
//	run       convert and write output files (requires the acknowledgement flag)
//	validate  check invariants and convert in memory, write nothing
//	resolve   link related-entry text in an entries file to entry ids
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
