package heuristic

// adjustment is a keyword that nudges the running difficulty by Delta.
type adjustment struct {
	Keyword string
	Delta   float64
}

// override is a keyword that replaces the running difficulty with Value.
type override struct {
	Keyword string
	Value   float64
}

// timeIndicators are applied cumulatively, every match counts.
var timeIndicators = []adjustment{
	{"quick", -0.15},
	{"fast", -0.10},
	{"simple", -0.15},
	{"easy", -0.10},
	{"hard", 0.20},
	{"difficult", 0.25},
	{"complex", 0.25},
	{"long", 0.15},
	{"hours", 0.20},
	{"all day", 0.30},
}

// actionKeywords are scanned in order; the first match wins.
var actionKeywords = []override{
	{"turn", 0.05},
	{"send", 0.15},
	{"clean", 0.35},
	{"plan", 0.50},
	{"write", 0.50},
	{"study", 0.70},
	{"prepare", 0.65},
	{"learn", 0.75},
	{"develop", 0.75},
}
