package db

import (
	"embed"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// RunDBMigration migrationURL 為空時使用內嵌的 migrations
func RunDBMigration(migrationURL string, dbSource string) error {
	var (
		m   *migrate.Migrate
		err error
	)
	if migrationURL == "" {
		src, srcErr := iofs.New(migrationFS, "migrations")
		if srcErr != nil {
			return srcErr
		}
		m, err = migrate.NewWithSourceInstance("iofs", src, dbSource)
	} else {
		m, err = migrate.New(migrationURL, dbSource)
	}
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
