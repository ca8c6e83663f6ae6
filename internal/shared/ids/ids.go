package ids

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Generator produces resource identifiers.
type Generator func() string

// New returns a random 32-character hex identifier.
func New() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Sequence returns a deterministic generator for tests: prefix-1, prefix-2, ...
func Sequence(prefix string) Generator {
	var n int
	return func() string {
		n++
		return prefix + "-" + strconv.Itoa(n)
	}
}
