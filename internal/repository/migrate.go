package repository

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

const auditMigrationsDir = "migrations"

//go:embed migrations/*.sql
var auditMigrations embed.FS

// RunMigrations applies a goose command (up, down, status, redo) to the
// audit database and logs the schema version it leaves behind.
func RunMigrations(ctx context.Context, dsn string, command string, log *zap.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open audit db: %w", err)
	}
	defer func() { _ = db.Close() }()

	goose.SetBaseFS(auditMigrations)
	goose.SetLogger(zap.NewStdLog(log.Named("goose")))
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.RunContext(ctx, command, db, auditMigrationsDir); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	log.Info("audit schema migrated", zap.String("command", command), zap.Int64("version", version))
	return nil
}
