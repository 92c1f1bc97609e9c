package heuristic

// Band is a heuristic difficulty bucket over the normalized score [0,1].
type Band string

const (
	BandTiny   Band = "tiny"
	BandSmall  Band = "small"
	BandMedium Band = "medium"
	BandBig    Band = "big"
	BandEpic   Band = "epic"
)

// BandRange describes one band: the half-open score interval [Min, Max)
// and the base point value awarded for it. The last band is closed at 1.0.
type BandRange struct {
	Band       Band
	Min        float64
	Max        float64
	BasePoints int
}

// bandTable is contiguous and ordered by Min.
var bandTable = []BandRange{
	{Band: BandTiny, Min: 0.00, Max: 0.20, BasePoints: 5},
	{Band: BandSmall, Min: 0.20, Max: 0.40, BasePoints: 10},
	{Band: BandMedium, Min: 0.40, Max: 0.65, BasePoints: 25},
	{Band: BandBig, Min: 0.65, Max: 0.85, BasePoints: 60},
	{Band: BandEpic, Min: 0.85, Max: 1.00, BasePoints: 120},
}

// Bands returns the band table in ascending score order.
func Bands() []BandRange {
	out := make([]BandRange, len(bandTable))
	copy(out, bandTable)
	return out
}

// BandFor maps a difficulty score to its band. Scores outside [0,1]
// land in the nearest end band.
func BandFor(difficulty float64) BandRange {
	for _, b := range bandTable {
		if difficulty < b.Max {
			return b
		}
	}
	return bandTable[len(bandTable)-1]
}

// Valid reports whether b is one of the five known bands.
func (b Band) Valid() bool {
	for _, r := range bandTable {
		if r.Band == b {
			return true
		}
	}
	return false
}
