// Package bidiresolve computes per-codepoint embedding levels for a
// paragraph using golang.org/x/text/unicode/bidi's character property
// lookup. It implements a simplified resolver rather than the full
// Unicode BiDi algorithm: explicit embeddings (LRE/RLE/PDF) nest on a
// stack up to UAX#9's max_depth, strong characters are raised to the
// next level of their own direction, and isolates are not handled,
// matching the spec's Non-goal of isolates beyond paragraph-level
// embeddings.
package bidiresolve

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/bidi"

	"github.com/go-typeset/stll/core"
)

// T traces to the core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

const maxDepth = 62 // UAX#9 max_depth

// Levels computes one embedding level per rune in text, given the
// paragraph's base direction (ltr == true for LTR). It returns a
// BidiFailure-kind error if the nesting of explicit embeddings exceeds
// UAX#9's max_depth, or if a rune has no BiDi property at all.
func Levels(text []rune, ltr bool) ([]int8, error) {
	base := int8(0)
	if !ltr {
		base = 1
	}
	levels := make([]int8, len(text))
	stack := []int8{base}

	push := func(lvl int8) error {
		if len(stack) >= maxDepth {
			T().Errorf("embedding nesting exceeds max depth %d", maxDepth)
			return core.NewError(core.BidiFailure, "embedding nesting exceeds max depth %d", maxDepth)
		}
		stack = append(stack, lvl)
		return nil
	}
	pop := func() {
		if len(stack) > 1 {
			stack = stack[:len(stack)-1]
		}
	}
	top := func() int8 { return stack[len(stack)-1] }

	for i, r := range text {
		switch r {
		case 0x202A: // LRE
			if err := push(nextEven(top())); err != nil {
				return nil, err
			}
			levels[i] = top()
			continue
		case 0x202B: // RLE
			if err := push(nextOdd(top())); err != nil {
				return nil, err
			}
			levels[i] = top()
			continue
		case 0x202C: // PDF
			levels[i] = top()
			pop()
			continue
		}

		props, size := bidi.LookupRune(r)
		if size == 0 {
			T().Errorf("no bidi class for rune %U", r)
			return nil, core.NewError(core.BidiFailure, "no bidi class for rune %U", r)
		}
		lvl := top()
		switch props.Class() {
		case bidi.R, bidi.AL:
			if lvl%2 == 0 {
				lvl++
			}
		case bidi.L:
			if lvl%2 == 1 {
				lvl++
			}
		case bidi.EN, bidi.AN:
			// numbers, like all weak and neutral classes, keep the
			// current embedding level; no later pass resolves them.
		}
		levels[i] = lvl
	}
	return levels, nil
}

func nextEven(l int8) int8 {
	if l%2 == 0 {
		return l + 2
	}
	return l + 1
}

func nextOdd(l int8) int8 {
	if l%2 == 1 {
		return l + 2
	}
	return l + 1
}
