package common

import (
	"context"
	"database/sql"
	"log/slog"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "modernc.org/sqlite"

	"github.com/mealtrace/mealtrace/gen/ent"
	"github.com/mealtrace/mealtrace/internal/repository"
)

// DBResult bundles the opened ent client with its cleanup function.
type DBResult struct {
	Client  *ent.Client
	Cleanup func()
}

// InitDatabase opens either the configured Postgres database or an
// in-memory SQLite database (for batch/local runs). The SQLite path also
// creates the schema, since there is no migration step for a throwaway
// database.
func InitDatabase(ctx context.Context, cfg *Config, inmem bool, logger *slog.Logger) (*DBResult, error) {
	if inmem {
		db, err := sql.Open("sqlite", "file:mealtrace?mode=memory&cache=shared&_pragma=foreign_keys(1)")
		if err != nil {
			return nil, WrapError(err, "open sqlite")
		}
		// cache=shared needs a single connection to keep the memory DB alive
		db.SetMaxOpenConns(1)
		drv := entsql.OpenDB(dialect.SQLite, db)
		client := ent.NewClient(ent.Driver(drv))
		if err := client.Schema.Create(ctx); err != nil {
			_ = client.Close()
			return nil, WrapError(err, "create sqlite schema")
		}
		logger.Info("using in-memory sqlite database")
		return &DBResult{
			Client: client,
			Cleanup: func() {
				if err := client.Close(); err != nil {
					logger.Error("failed to close ent client", "error", err)
				}
			},
		}, nil
	}

	client, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, err
	}
	return &DBResult{
		Client:  client,
		Cleanup: func() { repository.Close(client, pool, logger) },
	}, nil
}
