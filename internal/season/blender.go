package season

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/samber/lo"
)

const (
	// DefaultTimezone anchors "today" so every deployment agrees on
	// the seasonal calendar regardless of host timezone.
	DefaultTimezone = "America/Los_Angeles"

	// pruneEpsilon drops interpolated seasons too faint to matter.
	pruneEpsilon = 0.001

	// yearDays shifts wrapped queries past the year boundary. The
	// table is keyed by non-leap days of year, so 365 keeps the
	// arithmetic consistent with table construction.
	yearDays = 365
)

// RNG is the randomness source for weighted draws and prompt
// composition. The default wraps math/rand/v2's top-level functions,
// which are safe for concurrent use.
type RNG interface {
	IntN(n int) int
	Float64() float64
}

type stdRNG struct{}

func (stdRNG) IntN(n int) int   { return rand.IntN(n) }
func (stdRNG) Float64() float64 { return rand.Float64() }

// Generator produces randomized, on-theme image prompts for one
// season.
type Generator interface {
	// Name is the human-facing season name, e.g. "Fourth of July".
	Name() string
	// Prompt assembles one randomized image-generation prompt.
	Prompt() string
}

// Config carries the blender's explicit inputs. The zero value works:
// real current time, no date override, Pacific calendar days, shared
// math/rand source.
type Config struct {
	// DateOverride forces the date used when the caller supplies none.
	// Accepts YYYY-MM-DD or MM-DD (current year). Malformed values are
	// logged and ignored.
	DateOverride string

	// Location is the timezone "today" is evaluated in. Defaults to
	// DefaultTimezone, falling back to UTC if tzdata is unavailable.
	Location *time.Location

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	// Rand overrides the randomness source, mainly for tests.
	Rand RNG
}

// Blender maps calendar dates onto a weighted mix of seasons and turns
// that mix into image prompts. Everything it holds is built once in
// New and never mutated, so a single Blender is safe for concurrent
// use without locking.
type Blender struct {
	table    []anchor
	registry map[ID]Generator
	override string
	loc      *time.Location
	now      func() time.Time
	rng      RNG
}

// New builds the weight table and the season registry and validates
// them against each other. A season referenced by the table but
// missing from the registry is a configuration bug, not a runtime
// condition, and fails construction.
func New(cfg Config) (*Blender, error) {
	if cfg.Location == nil {
		loc, err := time.LoadLocation(DefaultTimezone)
		if err != nil {
			log.Printf("season: load timezone %s: %v, falling back to UTC", DefaultTimezone, err)
			loc = time.UTC
		}
		cfg.Location = loc
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Rand == nil {
		cfg.Rand = stdRNG{}
	}

	b := &Blender{
		table:    buildTable(),
		registry: newRegistry(cfg.Rand, cfg.Now, cfg.Location),
		override: cfg.DateOverride,
		loc:      cfg.Location,
		now:      cfg.Now,
		rng:      cfg.Rand,
	}

	for _, a := range b.table {
		for id := range a.Weights {
			if _, ok := b.registry[id]; !ok {
				return nil, fmt.Errorf("weight table references unknown season %q on day %d", id, a.Day)
			}
		}
	}
	validateTable(b.table)
	return b, nil
}

// DayOfYear returns t's ordinal day within its year, 1..366.
func (b *Blender) DayOfYear(t time.Time) int { return t.YearDay() }

// DayOfYearNow resolves the effective current date, honoring the date
// override and configured timezone, and returns its day of year.
func (b *Blender) DayOfYearNow() int { return b.today().YearDay() }

// Today is the effective current date after override and timezone
// handling.
func (b *Blender) Today() time.Time { return b.today() }

func (b *Blender) today() time.Time {
	now := b.now().In(b.loc)
	if b.override == "" {
		return now
	}
	if t, ok := parseOverride(b.override, now); ok {
		return t
	}
	log.Printf("season: invalid DATE override %q, using current date", b.override)
	return now
}

func parseOverride(s string, now time.Time) (time.Time, bool) {
	if t, err := time.ParseInLocation("2006-01-02", s, now.Location()); err == nil {
		return t, true
	}
	if t, err := time.ParseInLocation("01-02", s, now.Location()); err == nil {
		return time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, now.Location()), true
	}
	return time.Time{}, false
}

// ActiveSeasonsDay computes the normalized season mix for a day of
// year by interpolating the weight table.
//
// An exact table hit returns that anchor's weights untouched, so days
// pinned at 100% stay exactly 100% regardless of float drift. Between
// anchors the two neighbors blend linearly, with the table treated as
// a cycle: queries past either end wrap across the year boundary.
func (b *Blender) ActiveSeasonsDay(day int) map[ID]float64 {
	var before, after *anchor
	for i := range b.table {
		a := &b.table[i]
		if a.Day == day {
			out := make(map[ID]float64, len(a.Weights))
			for id, w := range a.Weights {
				out[id] = w
			}
			return out
		}
		if a.Day < day {
			before = a
			continue
		}
		after = a
		break
	}

	effective := float64(day)
	switch {
	case before == nil:
		// Before every anchor: wrap to the end of the previous cycle.
		// The span guard below zeroes the ratio here, holding the
		// final anchor's mix across the boundary.
		before = &b.table[len(b.table)-1]
		after = &b.table[0]
		effective += yearDays
	case after == nil:
		// Past every anchor: the next anchor is the first one, a year
		// on.
		first := b.table[0]
		after = &anchor{Day: first.Day + yearDays, Weights: first.Weights}
	}

	ratio := 0.0
	if span := float64(after.Day - before.Day); span > 0 {
		ratio = (effective - float64(before.Day)) / span
	}

	out := make(map[ID]float64)
	total := 0.0
	for _, id := range lo.Uniq(append(lo.Keys(before.Weights), lo.Keys(after.Weights)...)) {
		w := before.Weights[id] + (after.Weights[id]-before.Weights[id])*ratio
		if w > pruneEpsilon {
			out[id] = w
			total += w
		}
	}
	if total > 0 {
		for id := range out {
			out[id] /= total
		}
	}
	return out
}

// ActiveSeasons computes the season mix for an explicit date.
func (b *Blender) ActiveSeasons(t time.Time) map[ID]float64 {
	return b.ActiveSeasonsDay(b.DayOfYear(t))
}

// ActiveSeasonsNow computes the season mix for the effective current
// date.
func (b *Blender) ActiveSeasonsNow() map[ID]float64 {
	return b.ActiveSeasonsDay(b.DayOfYearNow())
}

// RandomSeason draws one season for an explicit date, each season
// weighted by that day's mix.
func (b *Blender) RandomSeason(t time.Time) (ID, Generator, error) {
	return b.draw(b.ActiveSeasons(t))
}

// RandomSeasonNow draws one season for the effective current date.
func (b *Blender) RandomSeasonNow() (ID, Generator, error) {
	return b.draw(b.ActiveSeasonsNow())
}

// draw selects by walking a cumulative weight array with a single
// uniform variate. A single-entry mix always selects that entry.
func (b *Blender) draw(weights map[ID]float64) (ID, Generator, error) {
	if len(weights) == 0 {
		return "", nil, errors.New("no active seasons")
	}

	ids := lo.Keys(weights)
	slices.Sort(ids)

	cum := make([]float64, len(ids))
	total := 0.0
	for i, id := range ids {
		total += weights[id]
		cum[i] = total
	}

	r := b.rng.Float64() * total
	for i, boundary := range cum {
		if r < boundary {
			return ids[i], b.registry[ids[i]], nil
		}
	}
	// Only reachable through float rounding at the top boundary.
	last := ids[len(ids)-1]
	return last, b.registry[last], nil
}

// Prompt draws a weighted-random season for an explicit date and
// builds one of its prompts. This pair is what the serving layer
// consumes per generation cycle.
func (b *Blender) Prompt(t time.Time) (prompt string, id ID, err error) {
	id, gen, err := b.RandomSeason(t)
	if err != nil {
		return "", "", err
	}
	return gen.Prompt(), id, nil
}

// PromptNow draws for the effective current date.
func (b *Blender) PromptNow() (prompt string, id ID, err error) {
	id, gen, err := b.RandomSeasonNow()
	if err != nil {
		return "", "", err
	}
	return gen.Prompt(), id, nil
}

// Name returns the display name for a season id, or the id itself when
// unknown.
func (b *Blender) Name(id ID) string {
	if g, ok := b.registry[id]; ok {
		return g.Name()
	}
	return string(id)
}

// Seasons lists every registered season id, sorted.
func (b *Blender) Seasons() []ID {
	ids := lo.Keys(b.registry)
	slices.Sort(ids)
	return ids
}
