package dimen

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stll.core")
	defer teardown()
	//
	if got := Dimen(10 * 64).Round(); got != 10 {
		t.Errorf("expected 10px, got %d", got)
	}
	if got := Dimen(10*64 + 32).Round(); got != 11 {
		t.Errorf("expected rounding 10.5px up to 11, got %d", got)
	}
}

func TestPixels(t *testing.T) {
	d := 3 * PX
	if got := d.Pixels(); got != 3.0 {
		t.Errorf("expected 3 pixels, got %v", got)
	}
}

func TestMinMax(t *testing.T) {
	if Min(Dimen(5), Dimen(9)) != 5 {
		t.Error("Min failed")
	}
	if Max(Dimen(5), Dimen(9)) != 9 {
		t.Error("Max failed")
	}
}
