package game

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/KirkDiggler/fairdice/internal/common/clock"
	"github.com/KirkDiggler/fairdice/internal/common/random"
	"github.com/KirkDiggler/fairdice/internal/common/uuid"
	"github.com/KirkDiggler/fairdice/internal/fairness"
	"github.com/KirkDiggler/fairdice/internal/models"
	"github.com/KirkDiggler/fairdice/internal/probability"
)

// service implements the Service interface
type service struct {
	generator *fairness.Generator
	random    random.Source
	prompter  Prompter
	out       io.Writer
	clock     clock.Clock
	uuid      uuid.Generator
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Generator == nil {
		return nil, ErrNilGenerator
	}

	if cfg.Random == nil {
		return nil, ErrNilRandomSource
	}

	if cfg.Prompter == nil {
		return nil, ErrNilPrompter
	}

	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	ids := cfg.UUID
	if ids == nil {
		ids = uuid.New()
	}

	return &service{
		generator: cfg.Generator,
		random:    cfg.Random,
		prompter:  cfg.Prompter,
		out:       out,
		clock:     clk,
		uuid:      ids,
	}, nil
}

// Play drives the session state machine from init to end. Stages run in a
// fixed order and are never revisited; an abort at any prompt surfaces as
// ErrSessionAborted with no partial result reported.
func (s *service) Play(ctx context.Context, input *PlayInput) (*PlayOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if len(input.Dice) == 0 {
		return nil, ErrNoDice
	}

	sess := &models.Session{
		ID:        s.uuid.NewID(),
		Dice:      input.Dice,
		Stage:     models.StageInit,
		CreatedAt: s.clock.Now(),
	}

	help := probability.RenderComparisonTable(sess.Dice)

	if err := s.determineFirst(ctx, sess, help); err != nil {
		return nil, err
	}

	if err := s.selectDice(ctx, sess, help); err != nil {
		return nil, err
	}

	sess.Stage = models.StageSystemRound
	fmt.Fprintln(s.out, "It's time for my roll.")

	systemRound, err := s.playRound(ctx, sess.SystemDie(), help)
	if err != nil {
		return nil, err
	}

	sess.SystemRound = systemRound
	fmt.Fprintf(s.out, "My roll result is %d.\n", systemRound.Face)

	sess.Stage = models.StageUserRound
	fmt.Fprintln(s.out, "It's time for your roll.")

	userRound, err := s.playRound(ctx, sess.UserDie(), help)
	if err != nil {
		return nil, err
	}

	sess.UserRound = userRound
	fmt.Fprintf(s.out, "Your roll result is %d.\n", userRound.Face)

	s.compare(sess)

	return &PlayOutput{
		Session: sess,
	}, nil
}

// determineFirst runs the turn-order toss: commit to a value in {0,1}, show
// the tag, take the player's guess, then reveal. The player moves first iff
// the guess matches the revealed value. No combiner step here.
func (s *service) determineFirst(ctx context.Context, sess *models.Session, help string) error {
	sess.Stage = models.StageDetermineFirst

	c, err := s.generator.Generate(0, 1)
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "I selected a random value in the range 0..1 (HMAC=%s).\n", c.Tag())

	out, err := s.prompter.Select(ctx, &SelectInput{
		Prompt: "Try to guess my selection.",
		Options: []Option{
			{Value: 0, Label: "0"},
			{Value: 1, Label: "1"},
		},
		Help: help,
	})
	if err != nil {
		return err
	}

	value, key, err := c.Reveal()
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "My selection: %d (KEY=%s).\n", value, key)

	sess.UserFirst = out.Value == value

	return nil
}

// selectDice assigns a die to each party. Whoever moves first picks freely;
// the other side is restricted to the remaining dice. The system's own pick
// is uniform via the secure source but needs no commitment round.
func (s *service) selectDice(ctx context.Context, sess *models.Session, help string) error {
	sess.Stage = models.StageSelectDice

	if sess.UserFirst {
		idx, err := s.promptDie(ctx, sess.Dice, -1, help)
		if err != nil {
			return err
		}

		sess.UserDieIndex = idx
		fmt.Fprintf(s.out, "You chose: %s\n", sess.UserDie().Label())

		rem := remainingIndices(len(sess.Dice), idx)
		pick, err := random.Int(s.random, len(rem))
		if err != nil {
			return err
		}

		sess.SystemDieIndex = rem[pick]
		fmt.Fprintf(s.out, "I chose: %s\n", sess.SystemDie().Label())

		return nil
	}

	idx, err := random.Int(s.random, len(sess.Dice))
	if err != nil {
		return err
	}

	sess.SystemDieIndex = idx
	fmt.Fprintf(s.out, "I choose first: %s\n", sess.SystemDie().Label())

	userIdx, err := s.promptDie(ctx, sess.Dice, idx, help)
	if err != nil {
		return err
	}

	sess.UserDieIndex = userIdx
	fmt.Fprintf(s.out, "You chose: %s\n", sess.UserDie().Label())

	return nil
}

// promptDie shows the dice menu, hiding the excluded index when the system
// has already claimed a die
func (s *service) promptDie(ctx context.Context, dice []models.Die, exclude int, help string) (int, error) {
	options := make([]Option, 0, len(dice))
	for i, d := range dice {
		if i == exclude {
			continue
		}

		options = append(options, Option{Value: i, Label: d.Label()})
	}

	out, err := s.prompter.Select(ctx, &SelectInput{
		Prompt:  "Choose your dice:",
		Options: options,
		Help:    help,
	})
	if err != nil {
		return 0, err
	}

	return out.Value, nil
}

// playRound resolves one fairness round for the given die: commit, show the
// tag, collect the player's modular number, reveal, combine, look up the
// face. The reveal must not happen until the player's number is captured;
// that ordering is the entire fairness guarantee.
func (s *service) playRound(ctx context.Context, die models.Die, help string) (*models.RoundResult, error) {
	faces := die.FaceCount()

	c, err := s.generator.Generate(0, faces-1)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(s.out, "I selected a random value in the range 0..%d (HMAC=%s).\n", faces-1, c.Tag())

	options := make([]Option, faces)
	for i := range options {
		options[i] = Option{Value: i, Label: strconv.Itoa(i)}
	}

	out, err := s.prompter.Select(ctx, &SelectInput{
		Prompt:  fmt.Sprintf("Add your number modulo %d.", faces),
		Options: options,
		Help:    help,
	})
	if err != nil {
		return nil, err
	}

	value, key, err := c.Reveal()
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(s.out, "My number is %d (KEY=%s).\n", value, key)

	index := fairness.Combine(value, out.Value, faces)
	fmt.Fprintf(s.out, "The fair number generation result is %d + %d = %d (mod %d).\n", value, out.Value, index, faces)

	return &models.RoundResult{
		ID:            s.uuid.NewID(),
		SystemValue:   value,
		UserValue:     out.Value,
		CombinedIndex: index,
		Face:          die.Face(index),
	}, nil
}

// compare decides the winner from the two round faces and closes the session
func (s *service) compare(sess *models.Session) {
	sess.Stage = models.StageCompare

	userFace := sess.UserRound.Face
	systemFace := sess.SystemRound.Face

	switch {
	case userFace > systemFace:
		sess.Outcome = models.OutcomeUserWin
		fmt.Fprintf(s.out, "You win (%d > %d)!\n", userFace, systemFace)
	case systemFace > userFace:
		sess.Outcome = models.OutcomeSystemWin
		fmt.Fprintf(s.out, "I win (%d > %d)!\n", systemFace, userFace)
	default:
		sess.Outcome = models.OutcomeTie
		fmt.Fprintf(s.out, "It's a tie (%d = %d)!\n", userFace, systemFace)
	}

	sess.Stage = models.StageEnd
	sess.CompletedAt = s.clock.Now()
}

func remainingIndices(n, exclude int) []int {
	rem := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i != exclude {
			rem = append(rem, i)
		}
	}

	return rem
}
