package progression_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/talgya/stardrift/internal/progression"
)

func TestFreshSkill(t *testing.T) {
	assert.Equal(t, 1, progression.Level(0))
	assert.Equal(t, float64(83), progression.XPToNext(0))
	assert.Equal(t, float64(0), progression.ProgressFraction(0))
}

func TestLevelBoundaries(t *testing.T) {
	// threshold[0] = floor(83 × 1.18^0) = 83, threshold[1] = 97.
	assert.Equal(t, 1, progression.Level(82))
	assert.Equal(t, 2, progression.Level(83))
	assert.Equal(t, 2, progression.Level(96))
	assert.Equal(t, 3, progression.Level(97))
}

func TestMonotonicity(t *testing.T) {
	prev := 0
	for xp := 0.0; xp < 2_000_000; xp += 173 {
		lvl := progression.Level(xp)
		assert.GreaterOrEqual(t, lvl, prev, "level dropped at xp=%f", xp)
		prev = lvl

		frac := progression.ProgressFraction(xp)
		assert.GreaterOrEqual(t, frac, 0.0)
		assert.LessOrEqual(t, frac, 1.0)
		assert.GreaterOrEqual(t, progression.XPToNext(xp), 0.0)
	}
}

func TestMaxLevel(t *testing.T) {
	top := math.Floor(83 * math.Pow(1.18, 98))

	assert.Equal(t, 99, progression.Level(top))
	assert.Equal(t, float64(1), progression.ProgressFraction(top))
	assert.Equal(t, float64(0), progression.XPToNext(top))

	// Nothing past the cap either.
	assert.Equal(t, 99, progression.Level(top*10))
}

func TestRankFor(t *testing.T) {
	assert.Equal(t, "Drifter", progression.RankFor(1).Title)
	assert.Equal(t, "Drifter", progression.RankFor(9).Title)
	assert.Equal(t, "Scout Pilot", progression.RankFor(10).Title)
	assert.Equal(t, "Navigator", progression.RankFor(49).Title)
	assert.Equal(t, "Commander", progression.RankFor(50).Title)
	assert.Equal(t, "Star Legend", progression.RankFor(150).Title)
}
