package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KirkDiggler/fairdice/internal/services/game"
)

// Define errors
var (
	ErrNilConfig = errors.New("config cannot be nil")
	ErrNilInput  = errors.New("input reader cannot be nil")
	ErrNilOutput = errors.New("output writer cannot be nil")
)

// Prompter reads menu selections from a terminal-style input stream. It
// implements game.Prompter: malformed input re-prompts forever, "?" prints
// the help table, and "X" (either case) aborts the session.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// Config holds configuration for the prompter
type Config struct {
	// Input is the stream selections are read from, normally os.Stdin
	Input io.Reader

	// Output is where menus and messages are written, normally os.Stdout
	Output io.Writer
}

// New creates a new interactive prompter
func New(cfg *Config) (*Prompter, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Input == nil {
		return nil, ErrNilInput
	}

	if cfg.Output == nil {
		return nil, ErrNilOutput
	}

	return &Prompter{
		scanner: bufio.NewScanner(cfg.Input),
		out:     cfg.Output,
	}, nil
}

// Select shows the menu and loops until the player enters a legal option,
// asks for help, or quits. Retries are unlimited and never escalate.
func (p *Prompter) Select(ctx context.Context, input *game.SelectInput) (*game.SelectOutput, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p.printMenu(input)

		line, err := p.readLine()
		if err != nil {
			// Losing stdin mid-game is treated as the player walking away.
			return nil, game.ErrSessionAborted
		}

		line = strings.TrimSpace(line)

		if line == "?" {
			fmt.Fprint(p.out, input.Help)
			continue
		}

		if strings.EqualFold(line, "x") {
			return nil, game.ErrSessionAborted
		}

		value, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(p.out, "Invalid input, try again.")
			continue
		}

		if !legalOption(input.Options, value) {
			fmt.Fprintln(p.out, "Invalid selection, try again.")
			continue
		}

		return &game.SelectOutput{Value: value}, nil
	}
}

func (p *Prompter) printMenu(input *game.SelectInput) {
	if input.Prompt != "" {
		fmt.Fprintln(p.out, input.Prompt)
	}

	for _, opt := range input.Options {
		fmt.Fprintf(p.out, "%d - %s\n", opt.Value, opt.Label)
	}

	fmt.Fprintln(p.out, "X - exit")
	fmt.Fprintln(p.out, "? - help")
	fmt.Fprint(p.out, "Your selection: ")
}

func (p *Prompter) readLine() (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return p.scanner.Text(), nil
}

func legalOption(options []game.Option, value int) bool {
	for _, opt := range options {
		if opt.Value == value {
			return true
		}
	}

	return false
}
