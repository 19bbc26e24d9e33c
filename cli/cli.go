// Package cli provides the plain-terminal explorer REPL and the shared
// draw-command evaluator for the seedcraft engine.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nathoo/seedcraft/rng"
	"github.com/nathoo/seedcraft/session"
)

// CLI handles terminal interaction with the explorer.
type CLI struct {
	Engine    *rng.Engine
	In        io.Reader
	Out       io.Writer
	SaveDir   string
	EchoInput bool   // echo each input line after the prompt (for script playback)
	lastCmd   string // for "again"/"g" repeat
}

// New creates a CLI wired to the given engine.
func New(e *rng.Engine) *CLI {
	home, _ := os.UserHomeDir()
	return &CLI{
		Engine:  e,
		In:      os.Stdin,
		Out:     os.Stdout,
		SaveDir: filepath.Join(home, ".seedcraft", "sessions"),
	}
}

// Run starts the explorer loop: prompt → input → dispatch → output.
func (c *CLI) Run() {
	c.printLine(fmt.Sprintf("seedcraft explorer — seed %d. Type help for commands.", c.Engine.Seed()))

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		// Meta-commands start with '/'.
		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return // /quit
			}
			continue
		}

		// "again" / "g" repeats the last draw command.
		lower := strings.ToLower(input)
		if lower == "again" || lower == "g" {
			if c.lastCmd == "" {
				c.printLine("Nothing to repeat.")
				continue
			}
			input = c.lastCmd
		} else {
			c.lastCmd = input
		}

		for _, line := range Exec(c.Engine, input) {
			c.printLine(line)
		}
	}
}

// handleMeta dispatches meta-commands. Returns true if the explorer
// should exit.
func (c *CLI) handleMeta(input string) bool {
	parts := strings.Fields(input)
	cmd := parts[0]
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		return true

	case "/seed":
		c.cmdSeed(arg)

	case "/state":
		c.printSystem(fmt.Sprintf("Seed: %d", c.Engine.Seed()))
		c.printSystem(fmt.Sprintf("Position: %d", c.Engine.Position()))

	case "/save":
		c.cmdSave(arg)

	case "/load":
		c.cmdLoad(arg)

	case "/help":
		for _, line := range helpLines() {
			c.printLine(line)
		}

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}

	return false
}

// cmdSeed reseeds the engine. No argument draws from entropy; a number
// is used directly; anything else is hashed as a string seed.
func (c *CLI) cmdSeed(arg string) {
	switch {
	case arg == "":
		c.Engine = rng.NewFromEntropy()
	default:
		if n, err := strconv.ParseInt(arg, 10, 64); err == nil {
			c.Engine = rng.New(n)
		} else {
			c.Engine = rng.NewFromString(arg)
		}
	}
	c.printSystem(fmt.Sprintf("Seed: %d", c.Engine.Seed()))
}

func (c *CLI) cmdSave(name string) {
	if name == "" {
		name = "quicksave"
	}

	data, err := session.Save(c.Engine)
	if err != nil {
		c.printSystem(fmt.Sprintf("Save failed: %v", err))
		return
	}

	if err := os.MkdirAll(c.SaveDir, 0o755); err != nil {
		c.printSystem(fmt.Sprintf("Save failed: %v", err))
		return
	}

	path := filepath.Join(c.SaveDir, name+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		c.printSystem(fmt.Sprintf("Save failed: %v", err))
		return
	}

	c.printSystem(fmt.Sprintf("Session saved to %s.", name))
}

func (c *CLI) cmdLoad(name string) {
	if name == "" {
		name = "quicksave"
	}

	path := filepath.Join(c.SaveDir, name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		c.printSystem(fmt.Sprintf("Load failed: %v", err))
		return
	}

	sd, err := session.Load(data)
	if err != nil {
		c.printSystem(fmt.Sprintf("Load failed: %v", err))
		return
	}

	c.Engine = session.Apply(sd)
	c.printSystem(fmt.Sprintf("Session loaded from %s (seed %d, position %d).",
		name, sd.Seed, sd.Position))
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
