package db

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"tiffintime-api/internal/pkg/config"
	"tiffintime-api/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // pgx5:// driver
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Migrator applies the embedded schema migrations.
type Migrator struct {
	m *migrate.Migrate
}

func NewMigrator(cfg config.DBConfig) (*Migrator, error) {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, migrateURL(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to init migrator: %w", err)
	}
	return &Migrator{m: m}, nil
}

func (mg *Migrator) Up() error {
	err := mg.m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		slog.Info("schema is up to date")
		return nil
	}
	return err
}

// Down rolls back the most recent migration only.
func (mg *Migrator) Down() error {
	err := mg.m.Steps(-1)
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}

func (mg *Migrator) Version() (version uint, dirty bool, err error) {
	version, dirty, err = mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

func (mg *Migrator) Close() error {
	srcErr, dbErr := mg.m.Close()
	return errors.Join(srcErr, dbErr)
}

// MigrateUp is the one-shot form used at startup and in e2e setup.
func MigrateUp(cfg config.DBConfig) error {
	mg, err := NewMigrator(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := mg.Close(); err != nil {
			slog.Warn("failed to close migrator", "error", err.Error())
		}
	}()
	return mg.Up()
}

func migrateURL(cfg config.DBConfig) string {
	return "pgx5://" + strings.TrimPrefix(cfg.BuildDSN(), "postgres://")
}
