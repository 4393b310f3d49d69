package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"trial-match/db/migrations"
)

// MigrationResult reports the schema version before and after Migrate.
type MigrationResult struct {
	From uint
	To   uint
}

// Migrate brings the schema at addr to migrations.Version. A dirty schema, or
// one newer than this binary knows, is reported and left untouched.
func Migrate(addr string) (MigrationResult, error) {
	var res MigrationResult
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return res, fmt.Errorf("open migrations: %w", err)
	}
	defer src.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", src, addr)
	if err != nil {
		return res, fmt.Errorf("init migrate: %w", err)
	}
	defer mg.Close()

	current, dirty, err := mg.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		current = 0
	case err != nil:
		return res, err
	case dirty:
		return res, fmt.Errorf("schema version %d is dirty, fix it by hand", current)
	case current > migrations.Version:
		return res, fmt.Errorf("schema version %d is newer than supported version %d", current, migrations.Version)
	}
	res.From = current

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return res, err
	}
	res.To = migrations.Version
	return res, nil
}
