// Package progression implements the shared experience curve and the
// pilot rank table. All skills (mining, salvaging) run on the same
// curve, each with its own independent xp scalar.
package progression

import "math"

// MaxLevel caps every skill.
const MaxLevel = 99

// thresholds[i] is the total xp at which a skill passes from level i+1
// to level i+2. thresholds[0] = 83, growth 1.18 per level.
var thresholds = func() [MaxLevel]float64 {
	var t [MaxLevel]float64
	for i := range t {
		t[i] = math.Floor(83 * math.Pow(1.18, float64(i)))
	}
	return t
}()

// Level converts a skill's xp scalar to its level in [1, MaxLevel].
func Level(xp float64) int {
	lvl := 1
	for _, th := range thresholds {
		if xp < th {
			break
		}
		lvl++
	}
	if lvl > MaxLevel {
		lvl = MaxLevel
	}
	return lvl
}

// ProgressFraction returns how far through the current level the xp
// scalar sits, in [0, 1]. Returns 1 at max level.
func ProgressFraction(xp float64) float64 {
	lvl := Level(xp)
	if lvl >= MaxLevel {
		return 1
	}
	floor := 0.0
	if lvl > 1 {
		floor = thresholds[lvl-2]
	}
	next := thresholds[lvl-1]
	frac := (xp - floor) / (next - floor)
	return math.Max(0, math.Min(1, frac))
}

// XPToNext returns the xp still missing to the next level, 0 at max.
func XPToNext(xp float64) float64 {
	lvl := Level(xp)
	if lvl >= MaxLevel {
		return 0
	}
	return math.Ceil(thresholds[lvl-1] - xp)
}

// Rank is a pilot title earned by total skill level.
type Rank struct {
	MinLevel int
	Title    string
	Color    string
}

// ranks in ascending order of MinLevel.
var ranks = []Rank{
	{1, "Drifter", "#8899aa"},
	{10, "Scout Pilot", "#5ec26a"},
	{25, "Navigator", "#3fa7d6"},
	{50, "Commander", "#e8a838"},
	{80, "Void Admiral", "#c678dd"},
	{120, "Star Legend", "#ff6b6b"},
}

// RankFor returns the highest rank whose MinLevel the total level meets.
func RankFor(totalLevel int) Rank {
	r := ranks[0]
	for _, cand := range ranks {
		if totalLevel >= cand.MinLevel {
			r = cand
		}
	}
	return r
}
