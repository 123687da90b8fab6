package season

import (
	"math"
	"testing"
	"time"
)

func TestDayOfYearConversion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		month time.Month
		day   int
		want  int
	}{
		{time.January, 1, 1},
		{time.February, 14, 45},
		{time.April, 20, 110},
		{time.July, 4, 185},
		{time.October, 31, 304},
		{time.November, 25, 329},
		{time.December, 25, 359},
		{time.December, 31, 365},
	}

	for _, tt := range tests {
		if got := dayOfYear(tt.month, tt.day); got != tt.want {
			t.Errorf("dayOfYear(%v, %d) = %d, want %d", tt.month, tt.day, got, tt.want)
		}
	}
}

func TestBuildTableSortedAndUnique(t *testing.T) {
	t.Parallel()

	table := buildTable()
	if len(table) != len(seasonalWeights) {
		t.Fatalf("buildTable() has %d anchors, want %d", len(table), len(seasonalWeights))
	}
	for i := 1; i < len(table); i++ {
		if table[i-1].Day >= table[i].Day {
			t.Errorf("table not strictly ascending at index %d: day %d then %d", i, table[i-1].Day, table[i].Day)
		}
	}
}

func TestTableWeightsSumToOne(t *testing.T) {
	t.Parallel()

	for _, e := range seasonalWeights {
		total := 0.0
		for _, w := range e.Weights {
			total += w
		}
		if math.Abs(total-1.0) > 0.01 {
			t.Errorf("%v %d: weights sum to %f, want 1.0", e.Month, e.Day, total)
		}
	}
}

func TestTableCoversEveryHoliday(t *testing.T) {
	t.Parallel()

	pinned := map[ID]bool{}
	for _, e := range seasonalWeights {
		for id, w := range e.Weights {
			if w == 1.0 {
				pinned[id] = true
			}
		}
	}

	for _, id := range []ID{Christmas, Thanksgiving, Halloween, FourthJuly, Easter, Valentines} {
		if !pinned[id] {
			t.Errorf("holiday %s never reaches weight 1.0 in the table", id)
		}
	}
}
