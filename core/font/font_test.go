package font

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-typeset/stll/core/dimen"
)

type stubFont struct {
	has func(rune) bool
}

func (s stubFont) Ascender() dimen.Dimen           { return 0 }
func (s stubFont) Descender() dimen.Dimen          { return 0 }
func (s stubFont) UnderlinePosition() dimen.Dimen  { return 0 }
func (s stubFont) UnderlineThickness() dimen.Dimen { return 0 }
func (s stubFont) ContainsGlyph(cp rune) bool      { return s.has(cp) }
func (s stubFont) FaceHandle() interface{}         { return nil }

// The tests use *stubFont so that assert.Equal compares identity:
// reflect.DeepEqual never reports two non-nil func fields as equal.

func TestChainFallsBackToLastWhenNoneContainGlyph(t *testing.T) {
	primary := &stubFont{has: func(rune) bool { return false }}
	fallback := &stubFont{has: func(rune) bool { return false }}
	c := Chain{primary, fallback}
	assert.Equal(t, fallback, c.Get('x'))
}

func TestCachedReturnsSameAnswerWithoutRecomputing(t *testing.T) {
	calls := 0
	primary := &stubFont{has: func(rune) bool { calls++; return true }}
	fallback := &stubFont{has: func(rune) bool { return true }}
	cached := NewCached(Chain{primary, fallback})
	cached.Get('a')
	cached.Get('a')
	assert.Equal(t, primary, cached.Get('a'))
	assert.Equal(t, 1, calls) // only the first lookup walks the Chain
}

func TestCachedDelegatesDistinctCodepointsSeparately(t *testing.T) {
	fallback := &stubFont{has: func(rune) bool { return true }}
	primary := &stubFont{has: func(cp rune) bool { return cp == 'a' }}
	cached := NewCached(Chain{primary, fallback})
	assert.Equal(t, primary, cached.Get('a'))
	assert.Equal(t, fallback, cached.Get('b'))
	assert.Equal(t, primary, cached.Get('a'))
}
