package db

import (
	"errors"
	"fmt"

	"stellar-fund/db/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Migrate applies all up migrations for the given driver ("postgres" or
// "sqlite") to the database at addr. For sqlite, addr is a file path.
func Migrate(driver, addr string) error {
	var dbURL string
	switch driver {
	case "postgres":
		dbURL = addr
	case "sqlite":
		dbURL = "sqlite://" + addr
	default:
		return fmt.Errorf("no migrations for driver %q", driver)
	}

	src, err := iofs.New(migrations.FS, driver)
	if err != nil {
		return err
	}
	defer src.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", src, dbURL)
	if err != nil {
		return err
	}
	defer mg.Close()

	_, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}

	if dirty {
		return errors.New("database is in dirty state")
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}
