package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/fairdice/internal/services/game"
)

func newPrompter(t *testing.T, input string) (*Prompter, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	p, err := New(&Config{
		Input:  strings.NewReader(input),
		Output: out,
	})
	require.NoError(t, err)

	return p, out
}

func menu() *game.SelectInput {
	return &game.SelectInput{
		Prompt: "Choose your dice:",
		Options: []game.Option{
			{Value: 0, Label: "[2,2,4,4,9,9]"},
			{Value: 1, Label: "[1,1,6,6,8,8]"},
		},
		Help: "HELP TABLE\n",
	}
}

func TestNew_Validation(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrNilConfig)

	_, err = New(&Config{Output: &bytes.Buffer{}})
	assert.ErrorIs(t, err, ErrNilInput)

	_, err = New(&Config{Input: strings.NewReader("")})
	assert.ErrorIs(t, err, ErrNilOutput)
}

func TestSelect_ValidChoice(t *testing.T) {
	p, out := newPrompter(t, "1\n")

	got, err := p.Select(context.Background(), menu())
	require.NoError(t, err)
	assert.Equal(t, 1, got.Value)

	menuText := out.String()
	assert.Contains(t, menuText, "Choose your dice:")
	assert.Contains(t, menuText, "0 - [2,2,4,4,9,9]")
	assert.Contains(t, menuText, "X - exit")
	assert.Contains(t, menuText, "? - help")
	assert.Contains(t, menuText, "Your selection: ")
}

func TestSelect_TrimsWhitespace(t *testing.T) {
	p, _ := newPrompter(t, "  0  \n")

	got, err := p.Select(context.Background(), menu())
	require.NoError(t, err)
	assert.Equal(t, 0, got.Value)
}

func TestSelect_HelpThenChoice(t *testing.T) {
	p, out := newPrompter(t, "?\n0\n")

	got, err := p.Select(context.Background(), menu())
	require.NoError(t, err)
	assert.Equal(t, 0, got.Value)

	assert.Contains(t, out.String(), "HELP TABLE")
	// The menu is shown again after help.
	assert.Equal(t, 2, strings.Count(out.String(), "Your selection: "))
}

func TestSelect_RetriesOnInvalidInput(t *testing.T) {
	p, out := newPrompter(t, "banana\n7\n1\n")

	got, err := p.Select(context.Background(), menu())
	require.NoError(t, err)
	assert.Equal(t, 1, got.Value)

	assert.Contains(t, out.String(), "Invalid input, try again.")
	assert.Contains(t, out.String(), "Invalid selection, try again.")
	assert.Equal(t, 3, strings.Count(out.String(), "Your selection: "))
}

func TestSelect_ExitAborts(t *testing.T) {
	for _, input := range []string{"X\n", "x\n"} {
		p, _ := newPrompter(t, input)

		_, err := p.Select(context.Background(), menu())
		assert.ErrorIs(t, err, game.ErrSessionAborted)
	}
}

func TestSelect_EOFAborts(t *testing.T) {
	p, _ := newPrompter(t, "")

	_, err := p.Select(context.Background(), menu())
	assert.ErrorIs(t, err, game.ErrSessionAborted)
}

func TestSelect_ContextCancelled(t *testing.T) {
	p, _ := newPrompter(t, "0\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Select(ctx, menu())
	assert.ErrorIs(t, err, context.Canceled)
}
