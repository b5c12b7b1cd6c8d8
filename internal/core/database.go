// AngelaMos | 2026
// database.go

package core

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/carterperez-dev/travel-marketplace/internal/config"
)

type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

const dbPingTimeout = 5 * time.Second

func init() {
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// DialectFor picks Postgres for postgres:// URLs and SQLite for anything
// else (a file path, file: URI or :memory:).
func DialectFor(url string) Dialect {
	for _, scheme := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(url, scheme) {
			return DialectPostgres
		}
	}
	return DialectSQLite
}

func (d Dialect) driver() string {
	if d == DialectPostgres {
		return "pgx"
	}
	return "sqlite"
}

// configure applies pool limits and per-connection setup.
func (d Dialect) configure(
	ctx context.Context,
	db *sqlx.DB,
	cfg config.DatabaseConfig,
) error {
	if d == DialectPostgres {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxIdleConns)
		db.SetConnMaxLifetime(withJitter(cfg.ConnMaxLifetime))
		db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
		return nil
	}

	// A single never-recycled connection keeps :memory: databases alive
	// and serializes writers, which SQLite requires anyway.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("enable foreign keys: %w", err)
	}
	return nil
}

type Database struct {
	DB      *sqlx.DB
	Dialect Dialect
}

func NewDatabase(
	ctx context.Context,
	cfg config.DatabaseConfig,
) (*Database, error) {
	dialect := DialectFor(cfg.URL)

	db, err := sqlx.ConnectContext(ctx, dialect.driver(), cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", dialect, err)
	}

	d := &Database{DB: db, Dialect: dialect}
	if err := dialect.configure(ctx, db, cfg); err != nil {
		return nil, errors.Join(err, d.Close())
	}
	if err := d.Ping(ctx); err != nil {
		return nil, errors.Join(err, d.Close())
	}

	return d, nil
}

func (d *Database) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()

	if err := d.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping %s: %w", d.Dialect, err)
	}
	return nil
}

func (d *Database) Stats() sql.DBStats {
	return d.DB.Stats()
}

func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

// DBTX is satisfied by both *sqlx.DB and *sqlx.Tx. Queries are written
// with ? placeholders and passed through Rebind.
type DBTX interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
}

// InTx commits when fn returns nil and rolls back otherwise, including
// when fn panics.
func InTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback() //nolint:errcheck // re-panicking below
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
			}
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// withJitter spreads connection recycling so a pool opened at once does
// not expire at once.
func withJitter(base time.Duration) time.Duration {
	if base <= 0 {
		return base
	}
	//nolint:gosec // G404: jitter is not security sensitive
	return base + time.Duration(rand.Int64N(int64(base/7)+1))
}
