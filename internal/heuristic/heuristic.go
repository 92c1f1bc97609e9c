// Package heuristic scores a task description locally from keyword and
// length signals. It never performs I/O and always returns a result, so it
// is the guaranteed fallback whenever remote classification is unavailable.
package heuristic

import (
	"fmt"
	"math"
	"strings"
)

const (
	baseDifficulty = 0.3
	minDifficulty  = 0.05
	maxDifficulty  = 0.95

	// MinPoints and MaxPoints bound every heuristic reward.
	MinPoints = 5
	MaxPoints = 180
)

// Result is the outcome of heuristic classification.
type Result struct {
	Difficulty float64
	Band       Band
	BasePoints int
	Points     int
	Rationale  string
}

// Modifiers are multiplicative point adjustments. They are wired into the
// point formula but nothing sets them yet, so every caller gets 1.0.
// TODO: feed UrgencyBonus from due-date proximity once tasks carry due dates.
type Modifiers struct {
	UrgencyBonus    float64
	StreakBonus     float64
	LatenessPenalty float64
}

// DefaultModifiers returns the neutral modifiers.
func DefaultModifiers() Modifiers {
	return Modifiers{UrgencyBonus: 1.0, StreakBonus: 1.0, LatenessPenalty: 1.0}
}

func (m Modifiers) factor() float64 {
	return neutral(m.UrgencyBonus) * neutral(m.StreakBonus) * neutral(m.LatenessPenalty)
}

// neutral treats unset (non-positive) multipliers as 1.0.
func neutral(v float64) float64 {
	if v <= 0 {
		return 1.0
	}
	return v
}

// Classify scores text with the default modifiers.
func Classify(text string) Result {
	return ClassifyWith(text, DefaultModifiers())
}

// ClassifyWith scores text and applies mods to the band's base points.
func ClassifyWith(text string, mods Modifiers) Result {
	difficulty := Difficulty(text)
	band := BandFor(difficulty)

	points := int(math.Round(float64(band.BasePoints) * mods.factor()))
	points = max(MinPoints, min(MaxPoints, points))

	return Result{
		Difficulty: difficulty,
		Band:       band.Band,
		BasePoints: band.BasePoints,
		Points:     points,
		Rationale:  fmt.Sprintf("Difficulty: %.0f%% - %s task", difficulty*100, band.Band),
	}
}

// Difficulty computes the clamped difficulty score for text.
func Difficulty(text string) float64 {
	lower := strings.ToLower(text)
	d := baseDifficulty

	for _, adj := range timeIndicators {
		if strings.Contains(lower, adj.Keyword) {
			d += adj.Delta
		}
	}

	for _, o := range actionKeywords {
		if strings.Contains(lower, o.Keyword) {
			d = o.Value
			break
		}
	}

	words := len(strings.Fields(lower))
	if words > 10 {
		d += 0.2
	}
	if words > 20 {
		d += 0.3
	}

	return max(minDifficulty, min(maxDifficulty, d))
}
