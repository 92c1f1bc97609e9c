// Package engine is the single entry point for task classification. It
// prefers the remote classifier when a credential is stored and falls back
// to the local heuristic on any failure, so Classify always returns a result.
package engine

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/taskscore/internal/aiclass"
	"github.com/abhisek/taskscore/internal/credential"
	"github.com/abhisek/taskscore/internal/heuristic"
)

// DefaultConcurrency is the batch limit used when Config.Concurrency is unset.
const DefaultConcurrency = 4

// Classifier is the remote classification path. *aiclass.Client satisfies it.
type Classifier interface {
	Classify(ctx context.Context, text, credential string) (*aiclass.Analysis, error)
}

// resetter is implemented by classifiers that cache per-credential state.
type resetter interface {
	Reset()
}

// Config wires an Engine.
type Config struct {
	Credentials credential.Store

	// Client is optional. Without it every call uses the heuristic.
	Client Classifier

	// Diagnostics receives request counts and errors. When nil it is taken
	// from Client if that is an *aiclass.Client, else a fresh one is made.
	Diagnostics *aiclass.Diagnostics

	// Concurrency caps in-flight classifications in ClassifyBatch.
	Concurrency int

	// Model is reported by Status.
	Model string

	Modifiers heuristic.Modifiers
	Logger    zerolog.Logger
}

// Engine routes classification between the remote client and the heuristic.
type Engine struct {
	creds       credential.Store
	ai          Classifier
	diag        *aiclass.Diagnostics
	model       string
	mods        heuristic.Modifiers
	concurrency int
	logger      zerolog.Logger
}

// New creates an Engine. A nil Credentials store is replaced with an empty
// in-memory one.
func New(cfg Config) *Engine {
	e := &Engine{
		creds:       cfg.Credentials,
		ai:          cfg.Client,
		diag:        cfg.Diagnostics,
		model:       cfg.Model,
		mods:        cfg.Modifiers,
		concurrency: cfg.Concurrency,
		logger:      cfg.Logger,
	}
	if e.creds == nil {
		e.creds = credential.NewMemory("")
	}
	if e.diag == nil {
		if c, ok := cfg.Client.(*aiclass.Client); ok && c != nil {
			e.diag = c.Diagnostics()
		} else {
			e.diag = aiclass.NewDiagnostics()
		}
	}
	if e.concurrency <= 0 {
		e.concurrency = DefaultConcurrency
	}
	return e
}

// Classify scores text. It never fails: any remote error is reported in
// AIError and the heuristic result is returned instead.
func (e *Engine) Classify(ctx context.Context, text string) TaskClassification {
	text = truncate(strings.TrimSpace(text), MaxTaskLength)

	// The credential is read once; later changes do not affect this call.
	key, ok, err := e.creds.Get(ctx)
	if err != nil {
		e.logger.Warn().Err(err).Msg("read credential")
		return e.local(text, SourceLocalFallback, fmt.Sprintf("read credential: %v", err))
	}
	if !ok || e.ai == nil {
		return e.local(text, SourceLocal, "")
	}

	a, err := e.remote(ctx, text, key)
	if err != nil {
		e.logger.Warn().Err(err).Str("task", text).Msg("remote classification failed, using heuristic")
		return e.local(text, SourceLocalFallback, err.Error())
	}
	return fromAnalysis(a)
}

// ClassifyBatch classifies texts with at most the configured number in
// flight. Results keep input order.
func (e *Engine) ClassifyBatch(ctx context.Context, texts []string) []TaskClassification {
	out := make([]TaskClassification, len(texts))
	var g errgroup.Group
	g.SetLimit(e.concurrency)
	for i, text := range texts {
		g.Go(func() error {
			out[i] = e.Classify(ctx, text)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// remote calls the AI path, converting a panic into an error.
func (e *Engine) remote(ctx context.Context, text, key string) (a *aiclass.Analysis, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("classifier panic: %v", r)
			e.diag.RecordError(err)
		}
	}()
	return e.ai.Classify(ctx, text, key)
}

func (e *Engine) local(text string, source Source, aiErr string) TaskClassification {
	r := heuristic.ClassifyWith(text, e.mods)
	e.logger.Debug().
		Str("band", string(r.Band)).
		Float64("difficulty", r.Difficulty).
		Int("points", r.Points).
		Str("source", string(source)).
		Msg("heuristic classification")

	return TaskClassification{
		Points:     r.Points,
		Level:      string(r.Band),
		Kind:       KindBand,
		Source:     source,
		Rationale:  r.Rationale,
		AIEnabled:  false,
		AIError:    aiErr,
		Difficulty: r.Difficulty,
	}
}

// Status reports credential presence and the remote classifier counters.
func (e *Engine) Status(ctx context.Context) Status {
	_, hasKey, err := e.creds.Get(ctx)
	if err != nil {
		e.logger.Warn().Err(err).Msg("read credential")
	}
	snap := e.diag.Snapshot()
	return Status{
		IsAvailable:  hasKey && e.ai != nil,
		HasAPIKey:    hasKey,
		RequestCount: snap.RequestCount,
		LastError:    snap.LastError,
		Model:        e.model,
	}
}

// SetAPIKey stores a trimmed key. It returns false for a blank key or when
// the store rejects the write.
func (e *Engine) SetAPIKey(ctx context.Context, key string) bool {
	key = strings.TrimSpace(key)
	if key == "" {
		return false
	}
	if err := e.creds.Set(ctx, key); err != nil {
		e.logger.Error().Err(err).Msg("store API key")
		return false
	}
	e.diag.ClearError()
	e.resetClient()
	return true
}

// RemoveAPIKey deletes the stored key. Later calls use the heuristic.
func (e *Engine) RemoveAPIKey(ctx context.Context) error {
	if err := e.creds.Remove(ctx); err != nil {
		return fmt.Errorf("remove API key: %w", err)
	}
	e.resetClient()
	return nil
}

func (e *Engine) resetClient() {
	if r, ok := e.ai.(resetter); ok {
		r.Reset()
	}
}

// SeedAPIKey stores key only when no credential is present yet. It reports
// whether the key was written.
func (e *Engine) SeedAPIKey(ctx context.Context, key string) (bool, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return false, nil
	}
	_, ok, err := e.creds.Get(ctx)
	if err != nil {
		return false, fmt.Errorf("read credential: %w", err)
	}
	if ok {
		return false, nil
	}
	if err := e.creds.Set(ctx, key); err != nil {
		return false, fmt.Errorf("seed API key: %w", err)
	}
	return true, nil
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
