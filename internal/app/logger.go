package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/dballard10/Planner-Calendar-Goal-App/internal/config"
)

const serviceName = "planner-api"

var globalLogger zerolog.Logger

func InitDefaultLogger() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	zerolog.TimestampFieldName = "timestamp"

	globalLogger = zerolog.New(os.Stdout).
		With().
		Timestamp().
		Caller().
		Str("service", serviceName).
		Int("pid", os.Getpid()).
		Logger()

	globalLogger.Info().Msg("initialized default logger")
}

func MustInitApplicationLogger() {
	cfg := config.Global()

	logger, level, err := newApplicationLogger(globalLogger, cfg, os.Stdout)
	if err != nil {
		globalLogger.Error().
			Str("env", cfg.Env).
			Msg("unknown env")
		panic(err)
	}

	zerolog.SetGlobalLevel(level)
	globalLogger = logger
	globalLogger.Info().Msg("initialized application logger")
}

// newApplicationLogger derives the logger for the configured env from
// base. Every entry carries the env and the task store driver.
func newApplicationLogger(base zerolog.Logger, cfg *config.Config, out io.Writer) (zerolog.Logger, zerolog.Level, error) {
	var level zerolog.Level
	switch cfg.Env {
	case config.EnvDev:
		level = zerolog.DebugLevel
	case config.EnvProd:
		level = zerolog.InfoLevel
	case config.EnvLocal:
		level = zerolog.TraceLevel

		consoleWriter := zerolog.NewConsoleWriter()
		consoleWriter.TimeFormat = time.DateTime
		consoleWriter.Out = out
		out = consoleWriter
	default:
		return base, zerolog.NoLevel, fmt.Errorf("unknown env: %s", cfg.Env)
	}

	logger := base.Output(out).
		With().
		Str("env", cfg.Env).
		Str("store_driver", cfg.StoreDriver).
		Logger()
	return logger, level, nil
}
