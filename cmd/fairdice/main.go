package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/KirkDiggler/fairdice/internal/common/random"
	"github.com/KirkDiggler/fairdice/internal/dice"
	"github.com/KirkDiggler/fairdice/internal/fairness"
	"github.com/KirkDiggler/fairdice/internal/handlers/cli"
	gameService "github.com/KirkDiggler/fairdice/internal/services/game"
)

func main() {
	diceSet, err := dice.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Usage: fairdice 2,2,4,4,9,9 6,8,1,1,8,6 7,5,3,7,5,3")
		os.Exit(1)
	}

	source := random.NewCryptoSource()

	generator, err := fairness.New(&fairness.Config{
		Source: source,
	})
	if err != nil {
		log.Fatalf("Failed to create fairness generator: %v", err)
	}

	prompter, err := cli.New(&cli.Config{
		Input:  os.Stdin,
		Output: os.Stdout,
	})
	if err != nil {
		log.Fatalf("Failed to create prompter: %v", err)
	}

	gameSvc, err := gameService.New(&gameService.Config{
		Generator: generator,
		Random:    source,
		Prompter:  prompter,
		Output:    os.Stdout,
	})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	_, err = gameSvc.Play(context.Background(), &gameService.PlayInput{
		Dice: diceSet,
	})
	if err != nil {
		// An explicit exit at any prompt is a normal way to leave the game.
		if errors.Is(err, gameService.ErrSessionAborted) {
			return
		}

		log.Fatalf("Game failed: %v", err)
	}
}
