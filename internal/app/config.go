package app

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/dballard10/Planner-Calendar-Goal-App/internal/config"
)

func MustReadEnv() {
	cfg, err := config.NewEnvReader().Read()
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to read env")
		panic(err)
	}
	globalLogger.Info().
		Str("env", cfg.Env).
		Str("store_driver", cfg.StoreDriver).
		Strs("cors_origins", cfg.CORSOrigins).
		Msg("read env")

	config.SetGlobal(cfg)
}
