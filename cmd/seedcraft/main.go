// Seedcraft is a deterministic randomness toolkit for procedural game
// content: seeded draws, bias remapping, weighted sampling and Lua-scripted
// generators, explored from an interactive shell.
// Usage: seedcraft [--version] [--plain] [--seed <n>] [--seed-string <s>] [--script <file>]
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/nathoo/seedcraft/cli"
	"github.com/nathoo/seedcraft/rng"
	"github.com/nathoo/seedcraft/script"
	"github.com/nathoo/seedcraft/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	plain := false
	seedSet := false
	var seed int64
	var seedString string
	var scriptFile string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("seedcraft %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--seed":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--seed requires an integer\n")
				os.Exit(1)
			}
			i++
			n, err := strconv.ParseInt(args[i], 10, 64)
			if err != nil {
				fmt.Fprintf(os.Stderr, "--seed: %q is not an integer\n", args[i])
				os.Exit(1)
			}
			seed = n
			seedSet = true
		case "--seed-string":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--seed-string requires a value\n")
				os.Exit(1)
			}
			i++
			seedString = args[i]
		case "--script":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--script requires a file path\n")
				os.Exit(1)
			}
			i++
			scriptFile = args[i]
		default:
			fmt.Fprintf(os.Stderr, "Usage: seedcraft [--version] [--plain] [--seed <n>] [--seed-string <s>] [--script <file>]\n")
			os.Exit(1)
		}
	}

	var e *rng.Engine
	switch {
	case seedSet:
		e = rng.New(seed)
	case seedString != "":
		e = rng.NewFromString(seedString)
	default:
		e = rng.NewFromEntropy()
	}

	// Script mode: run the Lua generator and print its result as JSON.
	if scriptFile != "" {
		result, err := script.Run(scriptFile, e)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running script: %v\n", err)
			os.Exit(1)
		}
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
		return
	}

	// Use plain CLI if --plain flag or stdout is not a terminal.
	if plain || !isTerminal() {
		cli.New(e).Run()
		return
	}

	if err := tui.Run(e); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
