// Package hyphen locates hyphenation points inside a view's words and
// records them as soft-hyphen break opportunities. It mirrors the
// libhyphen-backed getHyphens from the original STLL implementation:
// words are found with a word-break analyzer, a per-language
// dictionary proposes break weights for each letter boundary, and only
// odd weights (libhyphen's convention for "hyphen allowed here") become
// break points. A word into which the author already placed an explicit
// soft hyphen (U+00AD) is left alone, since the author's choice
// overrides the dictionary.
package hyphen

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/derekparker/trie"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax29"

	"github.com/go-typeset/stll/core"
	"github.com/go-typeset/stll/engine/view"
)

// T traces to the core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

const softHyphen = 0x00AD

// Dict proposes hyphenation break weights for a word, one weight per
// inter-letter boundary (i.e. len(word)-1 weights, as runes). Following
// libhyphen, a boundary is an allowed break point when its weight is
// odd.
type Dict interface {
	Hyphenate(word []rune) []int
}

// Dicts resolves a Dict for a language tag. A missing dictionary for a
// language is not an error: callers should skip hyphenation for that
// word, matching the spec's "unsupported language is a warning, not a
// failure" rule (core.UnsupportedHyphenation exists for cases where the
// caller explicitly demands hyphenation and none is configured at all).
type Dicts interface {
	Dict(lang language.Tag) (Dict, bool)
}

// TrieDict is a minimal exception-list dictionary, backed by a prefix
// trie so lookups share storage across words with common prefixes. It
// knows a fixed set of whole words and the break weights for each, and
// declines every other word. Real dictionaries (pattern-based, per
// libhyphen's .dic format) are an external collaborator; this is a
// usable default for common exception words and for tests.
type TrieDict struct {
	t *trie.Trie
}

// NewTrieDict builds a dictionary from whole-word hyphenation exceptions,
// keyed by the lowercase word with break points marked as '-' (e.g.
// "hy-phen-ation"). This mirrors how libhyphen exception lists are
// authored.
func NewTrieDict(exceptions ...string) *TrieDict {
	t := trie.New()
	for _, e := range exceptions {
		word := strings.ReplaceAll(e, "-", "")
		runes := []rune(word)
		weights := make([]int, len(runes)-1)
		pos := 0
		for _, seg := range strings.Split(e, "-") {
			pos += len([]rune(seg))
			if pos > 0 && pos < len(runes) {
				weights[pos-1] = 1
			}
		}
		t.Add(strings.ToLower(word), weights)
	}
	return &TrieDict{t: t}
}

// Hyphenate implements Dict.
func (d *TrieDict) Hyphenate(word []rune) []int {
	key := strings.ToLower(string(word))
	node, ok := d.t.Find(key)
	if !ok {
		return nil
	}
	w, ok := node.Meta().([]int)
	if !ok || len(w) != len(word)-1 {
		return nil
	}
	return w
}

// MapDicts is a Dicts backed by a plain language-tag map.
type MapDicts map[string]Dict

// Dict implements Dicts. Entries are keyed by base language subtag (e.g.
// "de"); a tag that does not state its base language explicitly, such as
// language.Und, is looked up under the empty key.
func (m MapDicts) Dict(lang language.Tag) (Dict, bool) {
	key := ""
	if base, conf := lang.Base(); conf == language.Exact {
		key = base.String()
	}
	d, ok := m[key]
	return d, ok
}

// LangOf resolves the hyphenation language for the word starting at
// normalized position start: the section's own language attribute, not
// the paragraph's initial position's (the original STLL implementation
// read view.att(0).lang unconditionally, which is wrong for any text
// with more than one language run).
func LangOf(v *view.View, start int) language.Tag {
	if v.HasAttribute(start) {
		return v.Attribute(start).Lang
	}
	return language.Und
}

// Place scans v for words using a UAX#29 word-break analyzer and marks
// hyphenation points found by dicts. minLen is the shortest word, in
// runes, worth consulting a dictionary for.
func Place(v *view.View, dicts Dicts, minLen int) error {
	if dicts == nil {
		return nil
	}
	n := v.Len()
	if n == 0 {
		return nil
	}
	wb := uax29.NewWordBreaker(1)
	seg := segment.NewSegmenter(wb)
	seg.Init(strings.NewReader(string(v.Runes)))

	pos := 0
	for seg.Next() {
		word := []rune(seg.Text())
		start := pos
		pos += len(word)
		if !isWordlike(word) || len(word) < minLen {
			continue
		}
		if containsSoftHyphen(word) {
			continue
		}
		lang := LangOf(v, start)
		dict, ok := dicts.Dict(lang)
		if !ok {
			T().Debugf("no hyphenation dictionary for language %q, skipping word at %d", lang, start)
			continue
		}
		weights := dict.Hyphenate(word)
		if len(weights) != len(word)-1 {
			continue
		}
		for i, w := range weights {
			if w%2 == 1 {
				v.SetHyphen(start + i)
			}
		}
	}
	return nil
}

func containsSoftHyphen(word []rune) bool {
	for _, r := range word {
		if r == softHyphen {
			return true
		}
	}
	return false
}

func isWordlike(word []rune) bool {
	for _, r := range word {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r > 0xFF {
			return true
		}
	}
	return false
}

// RequireDict returns an UnsupportedHyphenation error when props demand
// hyphenation but no dictionary at all has been configured.
func RequireDict(dicts Dicts, hyphenate bool) error {
	if hyphenate && dicts == nil {
		T().Errorf("hyphenation requested but no dictionary configured")
		return core.NewError(core.UnsupportedHyphenation, "hyphenation requested but no dictionary configured")
	}
	return nil
}
