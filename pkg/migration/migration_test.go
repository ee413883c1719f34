package migration

import (
	"errors"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/assert"
)

func TestMigrateCommand(t *testing.T) {
	cmd := MigrateCommand("root:1@tcp(localhost:3306)/crowdfund")

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Equal(t, []string{"down", "force", "up"}, names)
}

func TestIgnoreNoChange(t *testing.T) {
	assert.Equal(t, nil, ignoreNoChange(nil))
	assert.Equal(t, nil, ignoreNoChange(migrate.ErrNoChange))

	err := errors.New("dirty database")
	assert.Equal(t, err, ignoreNoChange(err))
}
