// Package retention resolves what happens to the user data tree when the
// application is uninstalled: keep it for a later reinstall or purge it.
package retention

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// Outcome is the user's data-retention decision.
type Outcome int

const (
	// Kept leaves the data tree untouched, a later reinstall picks it up again
	Kept Outcome = iota
	// Purged removes the entire data tree
	Purged
)

func (o Outcome) String() string {
	switch o {
	case Kept:
		return "kept"
	case Purged:
		return "purged"
	default:
		return "unknown"
	}
}

// Prompter resolves the retention decision for a data root. The call blocks
// until a decision is available; there is no timeout.
type Prompter interface {
	ResolveRetention(dataRoot string) (Outcome, error)
}

// ConsolePrompter asks the binary keep-or-purge question on the terminal.
// Keeping the data is the default and the recommended answer.
type ConsolePrompter struct {
	In  io.Reader
	Out io.Writer
}

// NewConsolePrompter returns a prompter wired to stdin and stdout.
func NewConsolePrompter() *ConsolePrompter {
	return &ConsolePrompter{In: os.Stdin, Out: os.Stdout}
}

// ResolveRetention asks the user whether to remove the data tree. Without an
// interactive terminal the question is skipped and the data is kept: an
// unattended uninstall must never destroy user data.
func (p *ConsolePrompter) ResolveRetention(dataRoot string) (Outcome, error) {
	if f, ok := p.In.(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
		log.Infof("no interactive terminal attached, keeping user data in %s", dataRoot)
		return Kept, nil
	}

	fmt.Fprintf(p.Out, "Remove all TechDeck user data in %s (plugins, profiles, logs)? [y/N]: ", dataRoot)

	scanner := bufio.NewScanner(p.In)
	for scanner.Scan() {
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "", "n", "no":
			return Kept, nil
		case "y", "yes":
			return Purged, nil
		}
		fmt.Fprint(p.Out, "Please answer \"y\" or \"n\" [y/N]: ")
	}

	if err := scanner.Err(); err != nil {
		return Kept, fmt.Errorf("read retention answer: %w", err)
	}

	// input closed without an answer, keep the data
	return Kept, nil
}
