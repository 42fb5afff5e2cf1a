package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-typeset/stll/core/attrs"
)

func TestNewStripsBidiControls(t *testing.T) {
	text := []rune{'a', 0x202B, 'b', 0x202C, 'c'}
	levels := make([]int8, len(text))
	v := New(text, levels, attrs.Slice(nil))

	assert.Equal(t, "abc", string(v.Runes))
	assert.Equal(t, []int{0, 2, 4}, v.Idx)
	assert.Equal(t, 3, v.Len())
}

func TestHyphenLazyAllocation(t *testing.T) {
	v := New([]rune("word"), make([]int8, 4), attrs.Slice(nil))
	assert.False(t, v.Hyphen(1))
	v.SetHyphen(1)
	assert.True(t, v.Hyphen(1))
	assert.False(t, v.Hyphen(2))
}

func TestLevelsProjectThroughStrippedPositions(t *testing.T) {
	text := []rune{'a', 0x202A, 'b'}
	levels := []int8{0, 1, 2}
	v := New(text, levels, attrs.Slice(nil))
	assert.Equal(t, []int8{0, 2}, v.Levels)
}
