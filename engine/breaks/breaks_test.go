package breaks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-typeset/stll/core/attrs"
	"github.com/go-typeset/stll/engine/view"
)

func TestAnalyzeLastPositionIsAlwaysMustBreak(t *testing.T) {
	v := view.New([]rune("a short sentence"), make([]int8, 16), attrs.Slice(nil))
	Analyze(v)
	assert.Equal(t, view.MustBreak, v.Linebreak(v.Len()-1))
}

func TestAnalyzeAllowsBreakBetweenWords(t *testing.T) {
	v := view.New([]rune("one two"), make([]int8, 7), attrs.Slice(nil))
	Analyze(v)
	// the space at index 3 ('one ' ends at index 3) should offer a break
	assert.NotEqual(t, view.NoBreak, v.Linebreak(3))
}

func TestAnalyzeEmptyView(t *testing.T) {
	v := view.New(nil, nil, attrs.Slice(nil))
	assert.NotPanics(t, func() { Analyze(v) })
}
