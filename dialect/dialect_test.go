package dialect

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqltranspile/sqltranspile/sqlerr"
)

func TestGetOrRaise(t *testing.T) {
	t.Run("empty name resolves to the default dialect", func(t *testing.T) {
		d, err := GetOrRaise("")
		require.NoError(t, err)
		assert.Same(t, Default, d)
	})

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		d, err := GetOrRaise("PoStGrEs")
		require.NoError(t, err)
		assert.Same(t, Postgres, d)
	})

	t.Run("aliases resolve to the same record", func(t *testing.T) {
		for alias, want := range map[string]*Dialect{
			"pg":         Postgres,
			"postgresql": Postgres,
			"mariadb":    MySQL,
			"bq":         BigQuery,
			"mssql":      TSQL,
			"sqlserver":  TSQL,
		} {
			d, err := GetOrRaise(alias)
			require.NoError(t, err, "alias %s", alias)
			assert.Same(t, want, d, "alias %s", alias)
		}
	})

	t.Run("unknown name fails with UnsupportedError", func(t *testing.T) {
		_, err := GetOrRaise("not-a-dialect")
		require.Error(t, err)
		var unsup *sqlerr.UnsupportedError
		assert.True(t, errors.As(err, &unsup), "got %T", err)
	})
}

func TestNamesCoversEveryRegisteredDialect(t *testing.T) {
	names := Names()
	for _, want := range []string{
		"default", "postgres", "mysql", "sqlite", "bigquery",
		"duckdb", "clickhouse", "tsql", "hive", "oracle", "snowflake",
	} {
		assert.Contains(t, names, want)
	}
}

func TestMapTypeAndFunction(t *testing.T) {
	assert.Equal(t, "FLOAT64", BigQuery.MapType("FLOAT"))
	assert.Equal(t, "FLOAT64", BigQuery.MapType("float"))
	assert.Equal(t, "VARCHAR", BigQuery.MapType("VARCHAR"))

	assert.Equal(t, "LIST_FILTER", DuckDB.MapFunction("ARRAY_REMOVE"))
	assert.Equal(t, "isNaN", ClickHouse.MapFunction("ISNAN"))
	assert.Equal(t, "SUM", Postgres.MapFunction("SUM"))

	// A nil or map-free dialect passes names through unchanged.
	var none *Dialect
	assert.Equal(t, "INT", none.MapType("INT"))
	assert.Equal(t, "NOW", none.MapFunction("NOW"))
}

func TestIdentQuote(t *testing.T) {
	start, end := MySQL.IdentQuote()
	assert.Equal(t, byte('`'), start)
	assert.Equal(t, byte('`'), end)

	start, end = TSQL.IdentQuote()
	assert.Equal(t, byte('['), start)
	assert.Equal(t, byte(']'), end)

	// Unset delimiters default to double quotes.
	var none *Dialect
	start, end = none.IdentQuote()
	assert.Equal(t, byte('"'), start)
	assert.Equal(t, byte('"'), end)
}

func TestRegisterCustomDialect(t *testing.T) {
	custom := &Dialect{
		Name:            "exotic",
		Aliases:         []string{"exo"},
		IdentifierStart: '"',
		IdentifierEnd:   '"',
	}
	Register(custom)

	d, err := GetOrRaise("exo")
	require.NoError(t, err)
	assert.Same(t, custom, d)
}
