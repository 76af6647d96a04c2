package probability

import (
	"github.com/KirkDiggler/fairdice/internal/models"
)

// WinProbability returns the chance that die a strictly beats die b over the
// full Cartesian product of ordered face pairs. Ties count for neither side,
// so WinProbability(a, b) + WinProbability(b, a) can fall short of 1; the
// remainder is the tie probability.
func WinProbability(a, b models.Die) float64 {
	wins, total := winCounts(a, b)
	if total == 0 {
		return 0
	}

	// Exact integer counts, degraded to floating point only here.
	return float64(wins) / float64(total)
}

func winCounts(a, b models.Die) (wins, total int) {
	for _, fa := range a.Faces {
		for _, fb := range b.Faces {
			if fa > fb {
				wins++
			}
			total++
		}
	}

	return wins, total
}
