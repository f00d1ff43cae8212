package repository_test

import (
	"testing"

	"github.com/UnknownOlympus/ems/internal/config"
	"github.com/UnknownOlympus/ems/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnString(t *testing.T) {
	t.Parallel()

	cfg := config.PostgresConfig{Host: "db", Port: "5433", User: "ems", Password: "p@ss/word", Dbname: "ems"}

	dsn := repository.ConnString(cfg)
	assert.Equal(t, "postgres://ems:p%40ss%2Fword@db:5433/ems?sslmode=disable", dsn)

	parsed, err := pgxpool.ParseConfig(dsn)
	require.NoError(t, err)
	assert.Equal(t, "p@ss/word", parsed.ConnConfig.Password)
	assert.Equal(t, uint16(5433), parsed.ConnConfig.Port)
}
