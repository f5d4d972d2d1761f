package migrate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"
)

func GetMigrateCmd(dbURL string) *cobra.Command {
	var down bool

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := migrate.New("file://migrations", dbURL)
			if err != nil {
				return fmt.Errorf("failed to initialize migrations: %w", err)
			}

			if down {
				return rollback(m)
			}
			return apply(m)
		},
	}

	migrateCmd.Flags().BoolVarP(&down, "down", "d", false, "Rollback migrations")

	return migrateCmd
}

func apply(m *migrate.Migrate) error {
	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			fmt.Println("⚠️ No new migrations to apply.")
			return nil
		}
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
	return nil
}

func rollback(m *migrate.Migrate) error {
	err := m.Down()
	if err == nil {
		fmt.Println("✅ Migrations rolled back successfully!")
		return nil
	}

	if errors.Is(err, migrate.ErrNoChange) {
		fmt.Println("⚠️ No migrations to rollback.")
		return nil
	}
	if strings.Contains(err.Error(), "dirty") {
		fmt.Println("⚠️ Database is in a dirty state. Forcing version fix...")
		m.Force(0)
		return m.Down()
	}

	return fmt.Errorf("failed to rollback migrations: %w", err)
}
