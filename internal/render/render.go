// Package render prints classified offsets in the tool's text format:
// one "oooooooo: vv vv vv" line per observation under a section header.
package render

import (
	"TriDiff/internal/compare"
	"fmt"
	"io"
	"strings"
)

const (
	NoiseHeader  = "Noise (all files differ):"
	SignalHeader = "Signal (identical values across some but not all files):"
)

// Filter restricts printed signal to one value transition between the first
// two streams. It is active only when both ends are given.
type Filter struct {
	From, To int
	Active   bool
}

func NewFilter(from, to *int) Filter {
	if from == nil || to == nil {
		return Filter{}
	}
	return Filter{From: *from, To: *to, Active: true}
}

// Passes reports whether o's first two values are exactly (From, To).
// Other streams are not consulted.
func (f Filter) Passes(o compare.Observation) bool {
	if !f.Active {
		return true
	}
	return int(o.Values[0]) == f.From && int(o.Values[1]) == f.To
}

type Options struct {
	Decimal bool
	Filter  Filter
}

func FormatValue(v byte, decimal bool) string {
	if decimal {
		return fmt.Sprintf("%03d", v)
	}
	return fmt.Sprintf("%02x", v)
}

func FormatLine(o compare.Observation, decimal bool) string {
	var sb strings.Builder
	for _, v := range o.Values {
		sb.WriteString(FormatValue(v, decimal))
		sb.WriteByte(' ')
	}
	return fmt.Sprintf("%08x: %s", o.Offset, strings.TrimRight(sb.String(), " "))
}

// Write prints noise (only when no filter is active) and then signal. A
// section header is printed whenever its list is non-empty, even if the
// filter then suppresses every signal line.
func Write(w io.Writer, signal, noise []compare.Observation, opts Options) error {
	if len(noise) > 0 && !opts.Filter.Active {
		if _, err := fmt.Fprintln(w, NoiseHeader); err != nil {
			return err
		}
		for _, o := range noise {
			if _, err := fmt.Fprintln(w, FormatLine(o, opts.Decimal)); err != nil {
				return err
			}
		}
	}

	if len(signal) > 0 {
		if _, err := fmt.Fprintln(w, SignalHeader); err != nil {
			return err
		}
		for _, o := range signal {
			if !opts.Filter.Passes(o) {
				continue
			}
			if _, err := fmt.Fprintln(w, FormatLine(o, opts.Decimal)); err != nil {
				return err
			}
		}
	}
	return nil
}
