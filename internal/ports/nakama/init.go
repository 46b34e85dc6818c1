package nakama

import (
	"context"
	"database/sql"

	"buckshot/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
)

// InitModule wires RPCs for the Nakama runtime.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	vars, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	if vars == nil {
		vars = map[string]string{}
	}
	settings, err := config.ParseRuntimeEnv(vars)
	if err != nil {
		logger.Error("InitModule: %v", err)
		return err
	}

	if err := config.LoadGameConfig(settings.ConfigPath); err != nil {
		logger.Warn("InitModule: Could not load solver config, using defaults: %v", err)
	}

	handlers := NewHandlers(config.GetLimits(), settings.MetricsEnabled)
	if err := handlers.RegisterRPCs(initializer); err != nil {
		return err
	}

	logger.Info("Buckshot solver Go module loaded.")
	return nil
}
