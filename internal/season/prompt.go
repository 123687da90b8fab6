package season

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
)

// styleDefault leads four of five prompts; the alternates below swap
// in the rest of the time for artistic variety.
const styleDefault = "Ultra-detailed, cinematic, photorealistic, 8k, dramatic lighting, " +
	"warm color grading, high dynamic range, shallow depth of field, " +
	"professional photography, natural lighting, crisp focus, " +
	"rich textures, authentic atmosphere, magazine quality"

var alternateStyles = []string{
	"Whimsical, storybook illustration, watercolor, soft palette, hand-painted, no signature, no text",
	"Vintage postcard, warm tones, slight film grain, nostalgic, no signature, no text",
	"Painterly, oil painting, soft brush strokes, cozy mood, no signature, no text",
	"Children's book illustration, flat colors, high charm, no signature, no text",
	"Impressionist style, visible brush strokes, play of light, vibrant colors, no signature, no text",
	"Digital art, concept art style, detailed matte painting, atmospheric, no signature, no text",
	"Anime background style, detailed, soft colors, studio quality, no signature, no text",
	"Fantasy art, ethereal, dreamlike, rich colors, magical atmosphere, no signature, no text",
	"Minimalist, clean composition, bold colors, graphic design aesthetic, no signature, no text",
	"Moody photography, film noir lighting, high contrast, dramatic shadows, no signature, no text",
}

var timesOfDay = []string{
	"at golden hour",
	"at blue hour",
	"at sunrise",
	"at sunset",
	"at dawn",
	"at dusk",
	"at midday",
	"in morning light",
	"in afternoon light",
	"in evening light",
	"at night",
	"under moonlight",
	"during magic hour",
}

var atmospheres = []string{
	"with dramatic clouds",
	"with soft mist",
	"with light fog",
	"with volumetric lighting",
	"with god rays",
	"with lens flare",
	"with atmospheric haze",
	"with clear skies",
	"with overcast lighting",
	"with diffused light through clouds",
}

var compositions = []string{
	"wide angle view",
	"aerial view",
	"birds eye view",
	"from ground level",
	"intimate close-up",
	"expansive vista",
	"rule of thirds composition",
	"centered composition",
	"off-center composition",
	"depth of field emphasis",
}

// theme is the standard season generator: curated scene, extra and
// object phrases assembled into one randomized prompt per call.
type theme struct {
	name    string
	scenes  []string
	extras  []string
	objects []string
	suffix  string
	rng     RNG
}

func (t *theme) Name() string { return t.name }

// Prompt assembles style + scene + a randomized modifier set. Style
// stays first and scene second; everything after shuffles. Odds: 20%
// alternate style, 1-3 extras weighted toward 2, 50% scene objects,
// 40% time of day, 30% atmosphere, 25% composition.
func (t *theme) Prompt() string {
	style := styleDefault
	if t.rng.Float64() < 0.2 {
		style = pick(t.rng, alternateStyles)
	}
	scene := pick(t.rng, t.scenes)

	mods := sample(t.rng, t.extras, extrasCount(t.rng))

	if len(t.objects) > 0 && t.rng.Float64() < 0.5 {
		objs := sample(t.rng, t.objects, objectCount(t.rng))
		if len(objs) == 1 {
			mods = append(mods, "with a "+objs[0])
		} else {
			mods = append(mods, "with a "+objs[0]+" and "+objs[1])
		}
	}
	if t.rng.Float64() < 0.4 {
		mods = append(mods, pick(t.rng, timesOfDay))
	}
	if t.rng.Float64() < 0.3 {
		mods = append(mods, pick(t.rng, atmospheres))
	}
	if t.rng.Float64() < 0.25 {
		mods = append(mods, pick(t.rng, compositions))
	}

	shuffle(t.rng, mods)

	parts := append([]string{style, scene}, mods...)
	return strings.Join(parts, ", ") + t.suffix
}

// extrasCount draws 1..3, weighted 30/50/20 toward 2.
func extrasCount(rng RNG) int {
	switch r := rng.Float64(); {
	case r < 0.3:
		return 1
	case r < 0.8:
		return 2
	default:
		return 3
	}
}

// objectCount draws 1 or 2, weighted 60/40 toward 1.
func objectCount(rng RNG) int {
	if rng.Float64() < 0.6 {
		return 1
	}
	return 2
}

func pick(rng RNG, list []string) string { return list[rng.IntN(len(list))] }

// sample returns up to k distinct entries in random order.
func sample(rng RNG, list []string, k int) []string {
	if k > len(list) {
		k = len(list)
	}
	out := make([]string, len(list))
	copy(out, list)
	shuffle(rng, out)
	return out[:k]
}

// shuffle is an in-place Fisher-Yates over the injected source.
func shuffle(rng RNG, list []string) {
	for i := len(list) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		list[i], list[j] = list[j], list[i]
	}
}

// newYearsYearScenes are used when the prompt names the year outright.
// Each takes the target year once.
var newYearsYearScenes = []string{
	"Happy New Year %d celebration, balloon numbers, confetti",
	"Welcome %d party scene, marquee sign lights, champagne toast",
	"%d New Year's Eve countdown on a giant digital screen, cheering crowd",
	"Celebrating the arrival of %d, fireworks over the skyline",
	"%d written with sparklers, long exposure light trails",
	"%d neon sign glowing at midnight, cinematic night lighting",
	"champagne toast to %d, close-up glasses, bubbles and bokeh",
}

// newYearsGen composes its own prompts: a simpler assembly than the
// themed default, with the target year worked in around the holiday
// itself. From December on, "the year" means the incoming one.
type newYearsGen struct {
	theme
	now func() time.Time
	loc *time.Location
}

func (n *newYearsGen) Prompt() string {
	now := n.now().In(n.loc)
	year := now.Year()
	if now.Month() == time.December {
		year++
	}

	var scene string
	if inNewYearsWindow(now) && n.rng.Float64() < 0.2 {
		scene = fmt.Sprintf(pick(n.rng, newYearsYearScenes), year)
	} else {
		scene = pick(n.rng, n.scenes)
		// Generic countdown scenes read better with the actual year.
		lower := strings.ToLower(scene)
		switch {
		case strings.Contains(lower, "balloon numbers"):
			scene = fmt.Sprintf("New Year %d balloon numbers floating, festive celebration", year)
		case strings.Contains(lower, "countdown"):
			scene = strings.Replace(scene, "countdown", fmt.Sprintf("%d countdown", year), 1)
		}
	}

	take := sample(n.rng, n.extras, 1+n.rng.IntN(3))
	if lo.Contains(take, "balloon numbers") && !strings.Contains(scene, strconv.Itoa(year)) {
		scene = fmt.Sprintf("New Year %d celebration with %s", year, scene)
	}

	style := styleDefault
	if n.rng.Float64() < 0.2 {
		style = pick(n.rng, alternateStyles)
	}

	parts := append([]string{style, scene}, take...)
	return strings.Join(parts, ", ")
}

// inNewYearsWindow reports whether the date falls in the Dec 20 to
// Jan 5 stretch where explicit year text makes sense.
func inNewYearsWindow(t time.Time) bool {
	switch t.Month() {
	case time.December:
		return t.Day() >= 20
	case time.January:
		return t.Day() <= 5
	default:
		return false
	}
}
