package probability

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/KirkDiggler/fairdice/internal/models"
)

const (
	// headerCorner labels the row-axis of the comparison matrix
	headerCorner = "User dice v"

	// diagonalCell marks self-comparison cells, which are undefined
	diagonalCell = "------"

	// minLabelWidth keeps short face lists from producing a cramped table
	minLabelWidth = 13
)

// RenderComparisonTable renders the pairwise win-probability matrix as a
// bordered text table. Each cell holds the probability that the row die
// beats the column die, formatted to four decimal places. Cell widths are
// computed from display width rather than rune count so labels with
// multi-column characters stay aligned.
func RenderComparisonTable(dice []models.Die) string {
	labels := make([]string, len(dice))
	for i, d := range dice {
		labels[i] = d.Label()
	}

	width := minLabelWidth
	for _, lbl := range labels {
		if w := runewidth.StringWidth(lbl); w > width {
			width = w
		}
	}
	width += 2

	var sb strings.Builder

	border := tableBorder(width, len(labels)+1)

	sb.WriteString(border)
	sb.WriteString(tableRow(width, headerCorner, labels))
	sb.WriteString(border)

	for i, a := range dice {
		cells := make([]string, len(dice))
		for j, b := range dice {
			if i == j {
				cells[j] = diagonalCell
				continue
			}

			cells[j] = fmt.Sprintf("%.4f", WinProbability(a, b))
		}

		sb.WriteString(tableRow(width, labels[i], cells))
		sb.WriteString(border)
	}

	return sb.String()
}

func tableBorder(width, columns int) string {
	segment := strings.Repeat("-", width+2)

	var sb strings.Builder
	for i := 0; i < columns; i++ {
		sb.WriteString("+")
		sb.WriteString(segment)
	}
	sb.WriteString("+\n")

	return sb.String()
}

func tableRow(width int, head string, cells []string) string {
	var sb strings.Builder

	sb.WriteString("| ")
	sb.WriteString(padCenter(head, width))
	for _, cell := range cells {
		sb.WriteString(" | ")
		sb.WriteString(padCenter(cell, width))
	}
	sb.WriteString(" |\n")

	return sb.String()
}

// padCenter centers s within the given display width
func padCenter(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}

	left := gap / 2

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
