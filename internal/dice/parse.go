package dice

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/KirkDiggler/fairdice/internal/models"
)

const (
	// MinDice is the smallest playable dice set
	MinDice = 3

	// MinFaces is the smallest face count per die. Dice may carry more than
	// six faces as long as every die in the set has the same count.
	MinFaces = 6
)

// Parse validates a list of die specifications, one comma-separated face
// list per argument, and returns the dice in the order they were supplied.
// Rules are checked in a fixed order and the first violation wins: enough
// dice, integer faces, one shared face count, no identical dice, no face
// value shared between two dice.
func Parse(args []string) ([]models.Die, error) {
	if len(args) < MinDice {
		return nil, fmt.Errorf("at least %d dice are required, got %d", MinDice, len(args))
	}

	dice := make([]models.Die, 0, len(args))
	for i, arg := range args {
		die, err := parseDie(arg)
		if err != nil {
			return nil, fmt.Errorf("die %d: %w", i+1, err)
		}

		dice = append(dice, die)
	}

	faceCount := dice[0].FaceCount()
	for i, die := range dice[1:] {
		if die.FaceCount() != faceCount {
			return nil, fmt.Errorf("die 1 has %d faces but die %d has %d; all dice must have the same face count", faceCount, i+2, die.FaceCount())
		}
	}

	for i := 0; i < len(dice); i++ {
		for j := i + 1; j < len(dice); j++ {
			if identical(dice[i], dice[j]) {
				return nil, fmt.Errorf("die %d and die %d have identical faces %s", i+1, j+1, dice[i].Label())
			}

			if shared := sharedFaces(dice[i], dice[j]); len(shared) > 0 {
				return nil, fmt.Errorf("die %d and die %d share face values %v; face sets must be disjoint", i+1, j+1, shared)
			}
		}
	}

	return dice, nil
}

func parseDie(spec string) (models.Die, error) {
	parts := strings.Split(spec, ",")

	faces := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		face, err := strconv.Atoi(part)
		if err != nil {
			return models.Die{}, fmt.Errorf("face %q is not an integer", part)
		}

		faces = append(faces, face)
	}

	if len(faces) < MinFaces {
		return models.Die{}, fmt.Errorf("has %d faces, need at least %d", len(faces), MinFaces)
	}

	return models.Die{Faces: faces}, nil
}

func identical(a, b models.Die) bool {
	if a.FaceCount() != b.FaceCount() {
		return false
	}

	for i := range a.Faces {
		if a.Faces[i] != b.Faces[i] {
			return false
		}
	}

	return true
}

func sharedFaces(a, b models.Die) []int {
	seen := make(map[int]bool, a.FaceCount())
	for _, f := range a.Faces {
		seen[f] = true
	}

	common := make(map[int]bool)
	for _, f := range b.Faces {
		if seen[f] {
			common[f] = true
		}
	}

	if len(common) == 0 {
		return nil
	}

	shared := make([]int, 0, len(common))
	for f := range common {
		shared = append(shared, f)
	}

	sort.Ints(shared)

	return shared
}
