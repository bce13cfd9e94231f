// Command nfa builds, combines, and inspects automata described in YAML or JSON files.
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
