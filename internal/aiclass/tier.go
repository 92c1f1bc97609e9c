package aiclass

import "math"

// Tier is a difficulty level assigned by the remote classifier.
type Tier string

const (
	TierLow  Tier = "low"
	TierMid  Tier = "mid"
	TierHigh Tier = "high"
)

// TierInfo describes a tier: its inclusive point range and display data.
type TierInfo struct {
	Tier        Tier
	Name        string
	Min         int
	Max         int
	Color       string
	Icon        string
	Description string
}

var tierTable = []TierInfo{
	{TierLow, "Low Tier", 10, 89, "#4CAF50", "🟢", "Quick & simple tasks"},
	{TierMid, "Mid Tier", 100, 299, "#FF9800", "🟡", "Moderate effort required"},
	{TierHigh, "High Tier", 500, 799, "#f44336", "🔴", "Complex & time-intensive"},
}

// Tiers returns the tier table ordered from low to high.
func Tiers() []TierInfo {
	out := make([]TierInfo, len(tierTable))
	copy(out, tierTable)
	return out
}

// LookupTier returns the info for t.
func LookupTier(t Tier) (TierInfo, bool) {
	for _, info := range tierTable {
		if info.Tier == t {
			return info, true
		}
	}
	return TierInfo{}, false
}

// Clamp rounds points to the nearest integer and forces it into the tier range.
func (i TierInfo) Clamp(points float64) int {
	if math.IsNaN(points) {
		return i.Min
	}
	p := math.Round(points)
	if p < float64(i.Min) {
		return i.Min
	}
	if p > float64(i.Max) {
		return i.Max
	}
	return int(p)
}

// Contains reports whether points lies within the inclusive range.
func (i TierInfo) Contains(points int) bool {
	return points >= i.Min && points <= i.Max
}
