package heuristic

import (
	"math"
	"strings"
	"testing"
)

func TestClassify_Examples(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		difficulty float64
		band       Band
		points     int
	}{
		{"turn overrides to tiny", "turn off the light", 0.05, BandTiny, 5},
		{"study overrides to big", "study for final exams", 0.70, BandBig, 60},
		{"neutral text", "do the thing", 0.30, BandSmall, 10},
		{"time words accumulate", "quick easy chore", 0.05, BandTiny, 5},
		{"override replaces time adjustments", "clean the garage, it will take hours", 0.35, BandSmall, 10},
		{"clamped at ceiling", "hard difficult complex problem", 0.95, BandEpic, 120},
		{"long description bonus", "write a very long detailed report about the quarterly numbers for the team", 0.70, BandBig, 60},
		{"case insensitive", "STUDY Chemistry", 0.70, BandBig, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.text)
			if math.Abs(got.Difficulty-tt.difficulty) > 1e-9 {
				t.Errorf("Difficulty = %v, want %v", got.Difficulty, tt.difficulty)
			}
			if got.Band != tt.band {
				t.Errorf("Band = %q, want %q", got.Band, tt.band)
			}
			if got.Points != tt.points {
				t.Errorf("Points = %d, want %d", got.Points, tt.points)
			}
		})
	}
}

func TestClassify_FirstActionKeywordWins(t *testing.T) {
	// "send" precedes "plan" in the table, regardless of position in text.
	got := Classify("plan then send invoices")
	if got.Band != BandTiny {
		t.Fatalf("expected tiny band from 'send' override, got %q (%.2f)", got.Band, got.Difficulty)
	}
}

func TestClassify_WordCountAdjustmentsStack(t *testing.T) {
	text := strings.TrimSpace(strings.Repeat("a ", 22))
	got := Classify(text)
	if math.Abs(got.Difficulty-0.8) > 1e-9 {
		t.Fatalf("expected 0.8 for 22 neutral words, got %v", got.Difficulty)
	}
	if got.Band != BandBig {
		t.Fatalf("expected big band, got %q", got.Band)
	}
}

func TestClassify_Rationale(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"turn off the light", "Difficulty: 5% - tiny task"},
		{"study for final exams", "Difficulty: 70% - big task"},
	}
	for _, tt := range tests {
		if got := Classify(tt.text).Rationale; got != tt.want {
			t.Errorf("Classify(%q).Rationale = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestClassify_PointsBoundedAndDeterministic(t *testing.T) {
	inputs := []string{
		"x",
		"call mom",
		"develop the new billing module with all day pairing sessions",
		"prepare slides",
		"learn go generics",
		strings.Repeat("hard ", 40),
		"  quick  ",
		"🙂 emoji only 🙂",
	}

	for _, in := range inputs {
		first := Classify(in)
		if first.Points < MinPoints || first.Points > MaxPoints {
			t.Errorf("Classify(%q).Points = %d, out of [%d,%d]", in, first.Points, MinPoints, MaxPoints)
		}
		if !first.Band.Valid() {
			t.Errorf("Classify(%q).Band = %q, not a known band", in, first.Band)
		}
		if first.Rationale == "" {
			t.Errorf("Classify(%q) has empty rationale", in)
		}
		for range 3 {
			if again := Classify(in); again != first {
				t.Fatalf("Classify(%q) not deterministic: %+v vs %+v", in, first, again)
			}
		}
	}
}

func TestClassifyWith_ModifiersCapped(t *testing.T) {
	mods := Modifiers{UrgencyBonus: 2, StreakBonus: 2, LatenessPenalty: 1}
	got := ClassifyWith("study for final exams", mods)
	if got.BasePoints != 60 {
		t.Fatalf("expected base 60, got %d", got.BasePoints)
	}
	if got.Points != MaxPoints {
		t.Fatalf("expected points capped at %d, got %d", MaxPoints, got.Points)
	}
}

func TestClassifyWith_ZeroModifiersAreNeutral(t *testing.T) {
	if got := ClassifyWith("study for final exams", Modifiers{}); got.Points != 60 {
		t.Fatalf("expected zero-value modifiers to be neutral, got %d points", got.Points)
	}
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		score float64
		want  Band
	}{
		{0.0, BandTiny},
		{0.199, BandTiny},
		{0.2, BandSmall},
		{0.399, BandSmall},
		{0.4, BandMedium},
		{0.649, BandMedium},
		{0.65, BandBig},
		{0.849, BandBig},
		{0.85, BandEpic},
		{1.0, BandEpic},
	}
	for _, tt := range tests {
		if got := BandFor(tt.score).Band; got != tt.want {
			t.Errorf("BandFor(%.3f) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestBands_Contiguous(t *testing.T) {
	bands := Bands()
	if len(bands) != 5 {
		t.Fatalf("expected 5 bands, got %d", len(bands))
	}
	for i := 1; i < len(bands); i++ {
		if bands[i].Min != bands[i-1].Max {
			t.Errorf("gap between %q and %q", bands[i-1].Band, bands[i].Band)
		}
	}
}
