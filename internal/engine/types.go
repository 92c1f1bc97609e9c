package engine

import "github.com/abhisek/taskscore/internal/aiclass"

// Source records which path produced a classification.
type Source string

const (
	SourceAI            Source = "ai"
	SourceLocal         Source = "local"
	SourceLocalFallback Source = "local_fallback"
)

// Kind names the vocabulary used by TaskClassification.Level. AI results
// use tiers (low/mid/high); heuristic results use bands (tiny..epic).
type Kind string

const (
	KindTier Kind = "tier"
	KindBand Kind = "band"
)

// MaxTaskLength is the longest task text, in runes, that gets scored.
const MaxTaskLength = 500

// TaskClassification is the uniform result of Engine.Classify.
type TaskClassification struct {
	Points       int      `json:"points"`
	Level        string   `json:"level"`
	Kind         Kind     `json:"kind"`
	Source       Source   `json:"source"`
	Rationale    string   `json:"rationale"`
	AIEnabled    bool     `json:"aiEnabled"`
	AIError      string   `json:"aiError,omitempty"`
	Confidence   *float64 `json:"confidence,omitempty"`
	TimeEstimate string   `json:"timeEstimate,omitempty"`
	Complexity   *float64 `json:"complexity,omitempty"`
	Difficulty   float64  `json:"difficulty,omitempty"`
	Model        string   `json:"model,omitempty"`
}

// Status reports whether remote classification is usable and how it has
// been doing.
type Status struct {
	IsAvailable  bool   `json:"isAvailable"`
	HasAPIKey    bool   `json:"hasApiKey"`
	RequestCount int64  `json:"requestCount"`
	LastError    string `json:"lastError,omitempty"`
	Model        string `json:"model,omitempty"`
}

func fromAnalysis(a *aiclass.Analysis) TaskClassification {
	return TaskClassification{
		Points:       a.Points,
		Level:        string(a.Tier),
		Kind:         KindTier,
		Source:       SourceAI,
		Rationale:    a.Rationale,
		AIEnabled:    true,
		Confidence:   a.Confidence,
		TimeEstimate: a.TimeEstimate,
		Complexity:   a.Complexity,
		Model:        a.Model,
	}
}
