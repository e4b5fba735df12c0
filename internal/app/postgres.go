package app

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dballard10/Planner-Calendar-Goal-App/internal/config"
	"github.com/dballard10/Planner-Calendar-Goal-App/internal/store"
)

var (
	globalPostgresPool *pgxpool.Pool
	globalTaskTable    store.Table
)

// MustInitTaskStore builds the task table for the configured driver,
// connecting to Postgres when needed. It runs once, before serving.
func MustInitTaskStore() {
	cfg := config.Global()
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		globalTaskTable = store.NewMemoryTable()
		globalLogger.Warn().Msg("using in-memory task store, data is lost on exit")
	default:
		mustConnectPostgres()
		globalTaskTable = store.NewPostgresTable(
			globalLogger,
			globalPostgresPool,
			cfg.Postgres.TasksTable,
		)
	}
}

func mustConnectPostgres() {
	cfg := config.Global().Postgres

	poolCfg, err := pgxpool.ParseConfig(cfg.ConnString())
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to parse postgres config")
		panic(err)
	}
	poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout

	globalPostgresPool, err = pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to connect to postgres")
		panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.PingTimeout)
	defer cancel()

	err = globalPostgresPool.Ping(ctx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to ping postgres")
		panic(err)
	}
	globalLogger.Info().
		Str("host", poolCfg.ConnConfig.Host).
		Uint16("port", poolCfg.ConnConfig.Port).
		Msg("connected to postgres")
}

func CloseTaskStore() {
	if globalPostgresPool == nil {
		return
	}
	globalPostgresPool.Close()
	globalLogger.Info().Msg("disconnected from postgres")
}
