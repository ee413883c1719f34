package migration

import (
	"fmt"
	"path"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
)

const migrationsDir = "migrations"

func newMigrate(sourceURL string, dsn string) *migrate.Migrate {
	m, err := migrate.New(sourceURL, "mysql://"+dsn)
	if err != nil {
		panic(err)
	}
	return m
}

func closeMigrate(m *migrate.Migrate) {
	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		fmt.Println("[ERROR] close migration source:", sourceErr)
	}
	if dbErr != nil {
		fmt.Println("[ERROR] close migration database:", dbErr)
	}
}

func ignoreNoChange(err error) error {
	if err == migrate.ErrNoChange {
		return nil
	}
	return err
}

// MigrateCommand returns the root command with up, down and force sub commands
func MigrateCommand(dsn string) *cobra.Command {
	sourceURL := "file://" + migrationsDir

	rootCmd := &cobra.Command{
		Use:   "migrate",
		Short: "database schema migration",
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "apply all up migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				m := newMigrate(sourceURL, dsn)
				defer closeMigrate(m)
				return ignoreNoChange(m.Up())
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "roll back one migration",
			RunE: func(cmd *cobra.Command, args []string) error {
				m := newMigrate(sourceURL, dsn)
				defer closeMigrate(m)
				return ignoreNoChange(m.Steps(-1))
			},
		},
		&cobra.Command{
			Use:   "force [version]",
			Short: "set the version without running migrations",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				version, err := strconv.Atoi(args[0])
				if err != nil {
					return err
				}
				m := newMigrate(sourceURL, dsn)
				defer closeMigrate(m)
				return m.Force(version)
			},
		},
	)
	return rootCmd
}

// MigrateUpForTesting runs all up migrations found under rootDir
func MigrateUpForTesting(rootDir string, dsn string) {
	m := newMigrate("file://"+path.Join(rootDir, migrationsDir), dsn)
	defer closeMigrate(m)

	if err := ignoreNoChange(m.Up()); err != nil {
		panic(err)
	}
}
