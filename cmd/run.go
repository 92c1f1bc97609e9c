package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/abhisek/taskscore/internal/aiclass"
	"github.com/abhisek/taskscore/internal/credential"
	"github.com/abhisek/taskscore/internal/engine"
	"github.com/abhisek/taskscore/internal/heuristic"
	"github.com/abhisek/taskscore/internal/llm"
	"github.com/abhisek/taskscore/internal/logging"
	"github.com/abhisek/taskscore/internal/store"
)

// openEngine opens the store and builds the classification engine on top of
// it. The caller must close the returned store.
func openEngine(cmd *cobra.Command) (*engine.Engine, *store.Store, error) {
	st, err := openStore(cmd)
	if err != nil {
		return nil, nil, err
	}

	llmCfg := appConfig.LLM
	eventRepo := st.EventRepo()
	llmLogger := logging.For("llm")

	factory := func(ctx context.Context, apiKey string) (llm.Provider, error) {
		return llm.NewProvider(ctx, llmCfg, apiKey, eventRepo, llmLogger)
	}
	client := aiclass.NewClient(factory, aiclass.NewDiagnostics(), logging.For("aiclass"))

	eng := engine.New(engine.Config{
		Credentials: credential.NewSettings(st.SettingsRepo()),
		Client:      client,
		Model:       llmCfg.Model(),
		Modifiers:   heuristic.DefaultModifiers(),
		Concurrency: llmCfg.Concurrency,
		Logger:      logging.For("engine"),
	})

	if key, ok := llmCfg.EnvAPIKey(); ok {
		seeded, err := eng.SeedAPIKey(cmd.Context(), key)
		if err != nil {
			llmLogger.Warn().Err(err).Msg("seed API key from environment")
		} else if seeded {
			llmLogger.Info().Msg("stored API key from environment")
		}
	}

	return eng, st, nil
}
