/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package media recognizes responsive and motion modifiers and turns
// them into media query conditions.
package media

import (
	"fmt"
	"strings"
)

// Breakpoint is a named viewport width.
type Breakpoint int

// Breakpoints, smallest first.
const (
	SM Breakpoint = iota
	MD
	LG
	XL
	XXL
)

var breakpointNames = [...]string{"sm", "md", "lg", "xl", "xxl"}

var breakpointPixels = [...]int{640, 768, 1024, 1280, 1536}

// ParseBreakpoint returns the breakpoint with the given name.
func ParseBreakpoint(name string) (Breakpoint, bool) {
	for i, n := range breakpointNames {
		if n == name {
			return Breakpoint(i), true
		}
	}
	return 0, false
}

// String returns the breakpoint name.
func (b Breakpoint) String() string {
	if b < SM || b > XXL {
		return fmt.Sprintf("Breakpoint(%d)", int(b))
	}
	return breakpointNames[b]
}

// Pixels returns the breakpoint width in px.
func (b Breakpoint) Pixels() int {
	return breakpointPixels[b]
}

// Next returns the next larger breakpoint, if any.
func (b Breakpoint) Next() (Breakpoint, bool) {
	if b >= XXL {
		return b, false
	}
	return b + 1, true
}

// Range selects which part of the viewport a breakpoint applies to.
type Range int

const (
	// AtLeast matches widths from the breakpoint upwards. No prefix.
	AtLeast Range = iota
	// Below matches widths under the breakpoint. Prefix '<'.
	Below
	// Between matches from the breakpoint up to the next one. Prefix '@'.
	Between
)

// Responsive is a breakpoint modifier.
type Responsive struct {
	Breakpoint Breakpoint
	Range      Range
}

// ParseResponsive recognizes tokens like "md", "<md" and "@md".
func ParseResponsive(token string) (Responsive, bool) {
	rng := AtLeast
	switch {
	case strings.HasPrefix(token, "<"):
		rng, token = Below, token[1:]
	case strings.HasPrefix(token, "@"):
		rng, token = Between, token[1:]
	}
	bp, ok := ParseBreakpoint(token)
	if !ok {
		return Responsive{}, false
	}
	return Responsive{Breakpoint: bp, Range: rng}, true
}

// Conditions returns the media conditions for r, without parentheses.
func (r Responsive) Conditions() []string {
	px := r.Breakpoint.Pixels()
	switch r.Range {
	case Below:
		return []string{maxWidth(px)}
	case Between:
		next, ok := r.Breakpoint.Next()
		if !ok {
			return []string{minWidth(px)}
		}
		return []string{minWidth(px), maxWidth(next.Pixels())}
	default:
		return []string{minWidth(px)}
	}
}

func minWidth(px int) string {
	return fmt.Sprintf("min-width:%dpx", px)
}

// maxWidth stops just short of px so ranges never overlap.
func maxWidth(px int) string {
	return fmt.Sprintf("max-width:%d.9px", px-1)
}

// Motion is a reduced-motion preference modifier.
type Motion int

const (
	// Reduce matches "motion-reduce".
	Reduce Motion = iota
	// Safe matches "motion-safe".
	Safe
)

// ParseMotion recognizes "motion-reduce" and "motion-safe".
func ParseMotion(token string) (Motion, bool) {
	switch token {
	case "motion-reduce":
		return Reduce, true
	case "motion-safe":
		return Safe, true
	}
	return 0, false
}

// Condition returns the media condition for m, without parentheses.
func (m Motion) Condition() string {
	if m == Safe {
		return "prefers-reduced-motion:no-preference"
	}
	return "prefers-reduced-motion:reduce"
}

// Split is a modifier list partitioned into selector modifiers and
// media modifiers.
type Split struct {
	// Generic holds the pseudo-class tokens in source order.
	Generic []string

	Responsive *Responsive
	Motion     *Motion
}

// Partition separates breakpoint and motion tokens from the rest. The
// first token of each media kind wins; later ones are dropped from both
// the media query and the selector chain.
func Partition(modifiers []string) Split {
	var s Split
	for _, m := range modifiers {
		if r, ok := ParseResponsive(m); ok {
			if s.Responsive == nil {
				s.Responsive = &r
			}
			continue
		}
		if mo, ok := ParseMotion(m); ok {
			if s.Motion == nil {
				s.Motion = &mo
			}
			continue
		}
		s.Generic = append(s.Generic, m)
	}
	return s
}

// Conditions returns every media condition of s, breakpoints first.
func (s Split) Conditions() []string {
	var out []string
	if s.Responsive != nil {
		out = append(out, s.Responsive.Conditions()...)
	}
	if s.Motion != nil {
		out = append(out, s.Motion.Condition())
	}
	return out
}
