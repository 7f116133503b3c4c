package chanlun

import (
	"testing"

	"github.com/chanwatch/core/internal/bar"
)

func TestReduceEmpty(t *testing.T) {
	if got := Reduce(nil); got != nil {
		t.Fatalf("Reduce(nil) = %v, want nil", got)
	}
}

func TestReduceNoContainment(t *testing.T) {
	bars := []bar.Bar{
		{Time: 1, Open: 10, High: 12, Low: 9, Close: 11},
		{Time: 2, Open: 11, High: 14, Low: 11, Close: 13},
		{Time: 3, Open: 13, High: 16, Low: 13, Close: 15},
	}
	got := Reduce(bars)
	if len(got) != 3 {
		t.Fatalf("len(Reduce) = %d, want 3 (no bar contains another)", len(got))
	}
	for i, b := range got {
		if b.OrigIndex != i {
			t.Errorf("processed[%d].OrigIndex = %d, want %d", i, b.OrigIndex, i)
		}
	}
}

func TestReduceUptrendMerge(t *testing.T) {
	bars := []bar.Bar{
		{Time: 1, Open: 10, High: 10, Low: 5, Close: 9},
		{Time: 2, Open: 9, High: 20, Low: 8, Close: 18},
		// bar 3 is contained within bar 2's [8,20] range
		{Time: 3, Open: 15, High: 18, Low: 10, Close: 16},
	}
	got := Reduce(bars)
	if len(got) != 2 {
		t.Fatalf("len(Reduce) = %d, want 2 (bar 3 merges into bar 2)", len(got))
	}
	merged := got[1]
	if merged.High != 20 || merged.Low != 10 {
		t.Errorf("merged uptrend range = [%v,%v], want [10,20]", merged.Low, merged.High)
	}
	if merged.OrigIndex != 2 || merged.Time != 3 || merged.Close != 16 {
		t.Errorf("merge did not adopt incoming bar's index/time/close: %+v", merged)
	}
}

func TestReduceDowntrendMerge(t *testing.T) {
	bars := []bar.Bar{
		{Time: 1, Open: 30, High: 30, Low: 25, Close: 26},
		{Time: 2, Open: 26, High: 24, Low: 10, Close: 12},
		// bar 3 contained within bar 2's [10,24]
		{Time: 3, Open: 15, High: 20, Low: 12, Close: 14},
	}
	got := Reduce(bars)
	if len(got) != 2 {
		t.Fatalf("len(Reduce) = %d, want 2", len(got))
	}
	merged := got[1]
	if merged.High != 20 || merged.Low != 10 {
		t.Errorf("merged downtrend range = [%v,%v], want [10,20]", merged.Low, merged.High)
	}
}
