package database

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Open picks a backend from the URL scheme. Postgres pools dial lazily,
// so an unreachable server surfaces on the first query rather than here.
func Open(ctx context.Context, databaseURL, databaseName string) (Store, error) {
	switch {
	case databaseURL == "":
		return nil, ErrNotConfigured
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		pool, err := Connect(databaseURL, databaseName)
		if err != nil {
			return nil, err
		}
		return NewPgStore(pool), nil
	case strings.HasPrefix(databaseURL, "sqlite://"):
		return OpenSQLite(ctx, strings.TrimPrefix(databaseURL, "sqlite://"))
	case strings.HasPrefix(databaseURL, "file:"):
		return OpenSQLite(ctx, databaseURL)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedURL, scheme(databaseURL))
	}
}

// Connect builds a pgx pool without dialing. databaseName, when set,
// overrides the database named in the URL.
func Connect(databaseURL, databaseName string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("db parse config: %w", err)
	}

	// Prefer simple protocol for broader compatibility (e.g., proxies).
	cfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	if databaseName != "" {
		cfg.ConnConfig.Database = databaseName
	}
	cfg.MinConns = 0

	pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("db pool: %w", err)
	}
	return pool, nil
}

// scheme returns only the scheme so credentials never reach logs.
func scheme(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return "unknown"
	}
	return u.Scheme
}
