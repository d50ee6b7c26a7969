package main

import (
	"fmt"
	"strings"

	compinject "github.com/alnah/go-compinject"
)

// runProbeCmd prints the legacy browser version for a User-Agent string.
// All arguments are joined with spaces, so the string need not be quoted.
func runProbeCmd(args []string, env *Environment) int {
	if len(args) == 0 {
		printProbeUsage(env.Stderr)
		return ExitUsage
	}
	fmt.Fprintln(env.Stdout, compinject.LegacyIEVersion(strings.Join(args, " ")))
	return ExitSuccess
}
