package season

import (
	"log"
	"math"
	"sort"
	"time"
)

// ID identifies one themed content set, a holiday or a time of year.
type ID string

const (
	Christmas    ID = "christmas"
	Winter       ID = "winter"
	NewYears     ID = "new_years"
	Fall         ID = "fall"
	Summer       ID = "summer"
	Spring       ID = "spring"
	Thanksgiving ID = "thanksgiving"
	FourthJuly   ID = "fourth_july"
	Easter       ID = "easter"
	Halloween    ID = "halloween"
	Valentines   ID = "valentines"
)

// anchor is one point in the seasonal calendar: a day of year and the
// exact season mix that applies on that day.
type anchor struct {
	Day     int
	Weights map[ID]float64
}

// tableYear converts (month, day) keys to days of year. Any non-leap
// year produces the same mapping; leap-day queries still resolve
// because interpolation covers every day in [1, 366].
const tableYear = 2025

// seasonalWeights pins exact season mixes to key calendar dates. The
// blender interpolates linearly between neighboring entries, so these
// anchors control both the holiday peaks and the ramp shapes around
// them. Weights for each date must sum to 1.0.
var seasonalWeights = []struct {
	Month   time.Month
	Day     int
	Weights map[ID]float64
}{
	// Thanksgiving week, with Christmas starting the day after.
	{time.November, 23, map[ID]float64{Fall: 0.85, Thanksgiving: 0.15}},
	{time.November, 24, map[ID]float64{Fall: 0.60, Thanksgiving: 0.40}},
	{time.November, 25, map[ID]float64{Thanksgiving: 1.0}}, // Thanksgiving Day
	{time.November, 26, map[ID]float64{Thanksgiving: 0.80, Christmas: 0.20}},
	{time.November, 28, map[ID]float64{Thanksgiving: 0.65, Christmas: 0.35}},
	{time.November, 30, map[ID]float64{Thanksgiving: 0.50, Christmas: 0.50}},

	// Christmas ramps through December.
	{time.December, 2, map[ID]float64{Thanksgiving: 0.35, Christmas: 0.65}},
	{time.December, 5, map[ID]float64{Thanksgiving: 0.20, Christmas: 0.80}},
	{time.December, 8, map[ID]float64{Thanksgiving: 0.10, Christmas: 0.90}},
	{time.December, 11, map[ID]float64{Christmas: 1.0}},
	{time.December, 14, map[ID]float64{Christmas: 1.0}},
	{time.December, 17, map[ID]float64{Christmas: 1.0}},
	{time.December, 20, map[ID]float64{Christmas: 1.0}},
	{time.December, 23, map[ID]float64{Christmas: 1.0}},
	{time.December, 24, map[ID]float64{Christmas: 1.0}}, // Christmas Eve
	{time.December, 25, map[ID]float64{Christmas: 1.0}}, // Christmas Day

	// Hand off to New Year's.
	{time.December, 26, map[ID]float64{Christmas: 0.70, NewYears: 0.30}},
	{time.December, 27, map[ID]float64{Christmas: 0.50, NewYears: 0.50}},
	{time.December, 28, map[ID]float64{Christmas: 0.30, NewYears: 0.70}},
	{time.December, 29, map[ID]float64{Christmas: 0.15, NewYears: 0.85}},
	{time.December, 30, map[ID]float64{NewYears: 0.25, Winter: 0.75}},
	{time.December, 31, map[ID]float64{NewYears: 0.90, Winter: 0.10}}, // New Year's Eve

	{time.January, 1, map[ID]float64{NewYears: 0.5, Winter: 0.5}}, // New Year's Day
	{time.January, 2, map[ID]float64{Winter: 0.8, NewYears: 0.2}},

	// Winter proper.
	{time.January, 5, map[ID]float64{Winter: 1.0}},
	{time.January, 15, map[ID]float64{Winter: 1.0}},
	{time.February, 1, map[ID]float64{Winter: 1.0}},
	{time.February, 10, map[ID]float64{Winter: 0.90, Valentines: 0.10}},
	{time.February, 12, map[ID]float64{Winter: 0.60, Valentines: 0.40}},
	{time.February, 13, map[ID]float64{Winter: 0.30, Valentines: 0.70}},
	{time.February, 14, map[ID]float64{Valentines: 1.0}}, // Valentine's Day
	{time.February, 15, map[ID]float64{Winter: 1.0}},
	{time.February, 20, map[ID]float64{Winter: 1.0}},
	{time.February, 28, map[ID]float64{Winter: 1.0}},

	// Winter thaws into spring.
	{time.March, 1, map[ID]float64{Winter: 0.90, Spring: 0.10}},
	{time.March, 5, map[ID]float64{Winter: 0.70, Spring: 0.30}},
	{time.March, 10, map[ID]float64{Winter: 0.50, Spring: 0.50}},
	{time.March, 15, map[ID]float64{Winter: 0.30, Spring: 0.70}},
	{time.March, 20, map[ID]float64{Winter: 0.10, Spring: 0.90}}, // spring equinox
	{time.March, 25, map[ID]float64{Spring: 1.0}},

	// Spring, with an Easter peak in April.
	{time.April, 1, map[ID]float64{Spring: 1.0}},
	{time.April, 10, map[ID]float64{Spring: 0.90, Easter: 0.10}},
	{time.April, 13, map[ID]float64{Spring: 0.70, Easter: 0.30}},
	{time.April, 17, map[ID]float64{Spring: 0.50, Easter: 0.50}},
	{time.April, 20, map[ID]float64{Easter: 1.0}}, // Easter Sunday, approximate
	{time.April, 21, map[ID]float64{Spring: 1.0}},
	{time.May, 1, map[ID]float64{Spring: 1.0}},
	{time.May, 15, map[ID]float64{Spring: 1.0}},

	// Summer transition.
	{time.May, 20, map[ID]float64{Spring: 0.80, Summer: 0.20}},
	{time.May, 25, map[ID]float64{Spring: 0.50, Summer: 0.50}},
	{time.May, 31, map[ID]float64{Spring: 0.20, Summer: 0.80}},
	{time.June, 3, map[ID]float64{Summer: 1.0}},

	// Summer, with the Fourth of July peak.
	{time.June, 15, map[ID]float64{Summer: 1.0}},
	{time.June, 28, map[ID]float64{Summer: 0.90, FourthJuly: 0.10}},
	{time.July, 1, map[ID]float64{Summer: 0.70, FourthJuly: 0.30}},
	{time.July, 3, map[ID]float64{Summer: 0.50, FourthJuly: 0.50}},
	{time.July, 4, map[ID]float64{FourthJuly: 1.0}}, // Independence Day
	{time.July, 5, map[ID]float64{Summer: 1.0}},
	{time.July, 15, map[ID]float64{Summer: 1.0}},
	{time.August, 1, map[ID]float64{Summer: 1.0}},
	{time.August, 20, map[ID]float64{Summer: 1.0}},

	// Fall transition.
	{time.August, 25, map[ID]float64{Summer: 0.85, Fall: 0.15}},
	{time.August, 30, map[ID]float64{Summer: 0.60, Fall: 0.40}},
	{time.September, 3, map[ID]float64{Summer: 0.40, Fall: 0.60}},
	{time.September, 7, map[ID]float64{Summer: 0.20, Fall: 0.80}},
	{time.September, 10, map[ID]float64{Fall: 1.0}},

	// Fall, with the Halloween peak.
	{time.September, 22, map[ID]float64{Fall: 1.0}}, // fall equinox
	{time.October, 1, map[ID]float64{Fall: 1.0}},
	{time.October, 15, map[ID]float64{Fall: 1.0}},
	{time.October, 25, map[ID]float64{Fall: 0.85, Halloween: 0.15}},
	{time.October, 28, map[ID]float64{Fall: 0.60, Halloween: 0.40}},
	{time.October, 30, map[ID]float64{Fall: 0.30, Halloween: 0.70}},
	{time.October, 31, map[ID]float64{Halloween: 1.0}}, // Halloween
	{time.November, 1, map[ID]float64{Fall: 1.0}},
	{time.November, 10, map[ID]float64{Fall: 1.0}},
	{time.November, 20, map[ID]float64{Fall: 1.0}},
}

func dayOfYear(m time.Month, d int) int {
	return time.Date(tableYear, m, d, 0, 0, 0, 0, time.UTC).YearDay()
}

// buildTable converts the curated calendar into an interpolation table
// sorted by day of year.
func buildTable() []anchor {
	table := make([]anchor, 0, len(seasonalWeights))
	for _, e := range seasonalWeights {
		table = append(table, anchor{Day: dayOfYear(e.Month, e.Day), Weights: e.Weights})
	}
	sort.Slice(table, func(i, j int) bool { return table[i].Day < table[j].Day })
	return table
}

// validateTable warns about anchors whose weights stray from 1.0.
// Curation should keep them exact; drift only skews blends, so it is
// never fatal.
func validateTable(table []anchor) {
	for _, a := range table {
		total := 0.0
		for _, w := range a.Weights {
			total += w
		}
		if math.Abs(total-1.0) > 0.01 {
			log.Printf("season: weights on day %d sum to %.2f, not 1.0", a.Day, total)
		}
	}
}
