package bisect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/strata/bisect"
)

func TestSearch_Empty(t *testing.T) {
	assert.Equal(t, bisect.NotFound, bisect.Search([]int{}, 1))
}

func TestSearch_SingleHit(t *testing.T) {
	assert.Equal(t, 0, bisect.Search([]int{1}, 1))
}

func TestSearch_SingleMiss(t *testing.T) {
	assert.Equal(t, bisect.NotFound, bisect.Search([]int{1}, 2))
}

func TestSearch_MiddleElement(t *testing.T) {
	// Probe path for target 3: 3 → 1 → 4 → 2 (hit).
	assert.Equal(t, 2, bisect.Search([]int{1, 2, 3, 4, 5, 6}, 3))
}

func TestSearch_LastElement(t *testing.T) {
	// Probe path for target 7: 3 → 5 → 6 (hit at the right end).
	assert.Equal(t, 6, bisect.Search([]int{1, 2, 3, 4, 5, 6, 7}, 7))
}

func TestSearch_FirstElement(t *testing.T) {
	// The too-large rule halves the probe down to index 0.
	assert.Equal(t, 0, bisect.Search([]int{1, 2, 3, 4, 5, 6}, 1))
}

// TestSearch_KnownBlindSpot pins a documented quirk: the probe rules skip
// over index 3 of a 5-element slice (path 2 → 4 → 2, then the repeat guard
// fires), so a present element is reported absent. This is preserved
// behavior, not a defect to fix.
func TestSearch_KnownBlindSpot(t *testing.T) {
	assert.Equal(t, bisect.NotFound, bisect.Search([]int{1, 2, 3, 4, 5}, 4))
}

func TestSearch_BelowRange(t *testing.T) {
	assert.Equal(t, bisect.NotFound, bisect.Search([]int{10, 20, 30}, 5))
}

func TestSearch_AboveRange(t *testing.T) {
	assert.Equal(t, bisect.NotFound, bisect.Search([]int{10, 20, 30}, 99))
}

func TestSearch_GapMiss(t *testing.T) {
	assert.Equal(t, bisect.NotFound, bisect.Search([]int{1, 3, 5, 7}, 4))
}

// TestSearch_CyclingProbeTerminates pins the repeat-probe guard: on this
// input the raw rules cycle 4 → 2 → 5 → 2, so the guard must stop the
// search instead of looping forever.
func TestSearch_CyclingProbeTerminates(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 9, 9, 9}
	assert.Equal(t, bisect.NotFound, bisect.Search(items, 3))
}

func TestSearch_Strings(t *testing.T) {
	items := []string{"ant", "bee", "cat", "dog", "eel"}
	assert.Equal(t, 2, bisect.Search(items, "cat"))
	assert.Equal(t, bisect.NotFound, bisect.Search(items, "fox"))
}
