package integration

import (
	"fmt"
	"os"
	"path"
	"sync"

	"github.com/QuangTung97/crowdfund-ledger/config"
	"github.com/QuangTung97/crowdfund-ledger/pkg/migration"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	// for integration test, must not be imported in any main.go
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// TestCase ...
type TestCase struct {
	DB   *sqlx.DB
	Conf config.Config
}

var initOnce sync.Once

var globalConf config.Config
var globalDB *sqlx.DB

// NewTestCase connects to the test database, migrating it on first use
func NewTestCase() *TestCase {
	initOnce.Do(func() {
		rootDir := findRootDir()

		conf := config.LoadTestConfig(rootDir)
		migration.MigrateUpForTesting(rootDir, conf.MySQL.DSN())

		db := conf.MySQL.MustConnect(zap.NewNop())

		globalConf = conf
		globalDB = db
	})

	return &TestCase{
		Conf: globalConf,
		DB:   globalDB,
	}
}

// Truncate ...
func (tc *TestCase) Truncate(table string) {
	tc.DB.MustExec(fmt.Sprintf("TRUNCATE %s", table))
}

// Reset clears all ledger tables and restarts campaign ids from zero
func (tc *TestCase) Reset() {
	tc.Truncate("campaign")
	tc.Truncate("pledge")
	tc.Truncate("campaign_event")
	tc.DB.MustExec("UPDATE campaign_counter SET next_id = 0 WHERE id = 1")
}

func findRootDir() string {
	workdir, err := os.Getwd()
	if err != nil {
		panic(err)
	}

	directory := workdir
	for {
		files, err := os.ReadDir(directory)
		if err != nil {
			panic(err)
		}
		for _, file := range files {
			if file.IsDir() {
				continue
			}
			if file.Name() == "go.mod" {
				return directory
			}
		}

		directory = path.Dir(directory)
	}
}
