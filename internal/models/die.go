package models

import (
	"strconv"
	"strings"
)

// Die is an ordered sequence of integer faces. A die is validated once at
// startup and is read-only for the rest of the session.
type Die struct {
	// Faces holds the face values in the order they were supplied
	Faces []int
}

// FaceCount returns the number of faces on the die
func (d Die) FaceCount() int {
	return len(d.Faces)
}

// Face returns the face value at the given index
func (d Die) Face(index int) int {
	return d.Faces[index]
}

// Label renders the die as a compact face list, e.g. [2,2,4,4,9,9]
func (d Die) Label() string {
	parts := make([]string, len(d.Faces))
	for i, f := range d.Faces {
		parts[i] = strconv.Itoa(f)
	}

	return "[" + strings.Join(parts, ",") + "]"
}
