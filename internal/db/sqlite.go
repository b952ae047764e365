package db

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"stellar-fund/internal/config/configs"
)

// OpenSQLite opens the SQLite file at cfg.Path, applying migrations first
// when cfg.RunMigrations is set. The handle is limited to one open
// connection so writers never contend for the file lock.
func OpenSQLite(ctx context.Context, cfg configs.SQLite) (*sql.DB, error) {
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	path := filepath.Clean(cfg.Path)
	if cfg.RunMigrations {
		if err := Migrate("sqlite", path); err != nil {
			return nil, fmt.Errorf("run sqlite migrations: %w", err)
		}
	}

	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = sqlDB.PingContext(ctxPing); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	return sqlDB, nil
}
