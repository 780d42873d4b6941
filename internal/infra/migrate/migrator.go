// Package migrate применяет goose-миграции, вшитые в бинарь
package migrate

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

// Migrator обёртка над goose с embedded миграциями
type Migrator struct {
	db *sql.DB
	fs embed.FS
}

// NewMigrator создаёт новый мигратор
func NewMigrator(db *sql.DB, migrations embed.FS) (*Migrator, error) {
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, fmt.Errorf("migrate: set goose dialect: %w", err)
	}
	goose.SetBaseFS(migrations)

	return &Migrator{db: db, fs: migrations}, nil
}

// Run применяет все pending миграции
func (m *Migrator) Run(ctx context.Context) error {
	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return fmt.Errorf("migrate: apply migrations: %w", err)
	}
	return nil
}

// Version возвращает текущую версию схемы
func (m *Migrator) Version(ctx context.Context) (int64, error) {
	version, err := goose.GetDBVersionContext(ctx, m.db)
	if err != nil {
		return 0, fmt.Errorf("migrate: get version: %w", err)
	}
	return version, nil
}
