package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// idWidth is the minimum number of digits in a sequence suffix.
const idWidth = 3

// MaxSequence returns the highest numeric suffix among ids carrying prefix.
// Ids with another prefix or a non-integer suffix are ignored.
func MaxSequence(prefix string, ids []string) int {
	highest := 0
	for _, id := range ids {
		if n, ok := SequenceOf(prefix, id); ok && n > highest {
			highest = n
		}
	}
	return highest
}

// SequenceOf parses the positive integer suffix of id. ok is false when id
// lacks prefix or the suffix is not a positive integer.
func SequenceOf(prefix, id string) (n int, ok bool) {
	if !strings.HasPrefix(id, prefix) {
		return 0, false
	}
	n, err := strconv.Atoi(id[len(prefix):])
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// FormatSequentialID renders prefix+n zero-padded to three digits. Values
// above 999 are printed in full (SR_1000).
func FormatSequentialID(prefix string, n int) string {
	return fmt.Sprintf("%s%0*d", prefix, idWidth, n)
}

// NextSequentialID returns the id following the highest existing one, or
// prefix+"001" when none match.
func NextSequentialID(prefix string, ids []string) string {
	return FormatSequentialID(prefix, MaxSequence(prefix, ids)+1)
}
