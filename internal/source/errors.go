package source

import (
	"fmt"
	"strings"
)

// LengthMismatchError reports input files whose byte sizes are not all equal.
type LengthMismatchError struct {
	Sizes []int64
}

func (e *LengthMismatchError) Error() string {
	parts := make([]string, len(e.Sizes))
	for i, s := range e.Sizes {
		parts[i] = fmt.Sprint(s)
	}
	return "File lengths differ: " + strings.Join(parts, " ")
}
