package dialect

// Default is the built-in dialect: behaves exactly like the base
// tokenizer/parser/generator with no rewrites, per the "dialect" option
// defaulting to the built-in dialect when unset.
var Default = &Dialect{
	Name:               "default",
	IdentifierStart:    '"',
	IdentifierEnd:      '"',
	QuoteStart:         '\'',
	QuoteEnd:           '\'',
	NormalizeFunctions: "upper",
	SupportsILike:      true,
}

var Postgres = &Dialect{
	Name:               "postgres",
	Aliases:            []string{"postgresql", "pg"},
	IdentifierStart:    '"',
	IdentifierEnd:      '"',
	QuoteStart:         '\'',
	QuoteEnd:           '\'',
	NormalizeFunctions: "lower",
	SupportsILike:      true,
}

var MySQL = &Dialect{
	Name:               "mysql",
	Aliases:            []string{"mariadb"},
	IdentifierStart:    '`',
	IdentifierEnd:      '`',
	QuoteStart:         '\'',
	QuoteEnd:           '\'',
	NormalizeFunctions: "upper",
	SupportsILike:      false,
}

var SQLite = &Dialect{
	Name:               "sqlite",
	IdentifierStart:    '"',
	IdentifierEnd:      '"',
	QuoteStart:         '\'',
	QuoteEnd:           '\'',
	NormalizeFunctions: "upper",
	SupportsILike:      false,
}

var BigQuery = &Dialect{
	Name:            "bigquery",
	Aliases:         []string{"bq"},
	IdentifierStart: '`',
	IdentifierEnd:   '`',
	QuoteStart:      '\'',
	QuoteEnd:        '\'',
	TypeMap: map[string]string{
		"FLOAT":   "FLOAT64",
		"INT":     "INT64",
		"INTEGER": "INT64",
		"BOOLEAN": "BOOL",
	},
	NormalizeFunctions: "",
	SupportsILike:      false,
}

var DuckDB = &Dialect{
	Name:            "duckdb",
	IdentifierStart: '"',
	IdentifierEnd:   '"',
	QuoteStart:      '\'',
	QuoteEnd:        '\'',
	StripTypeParams: map[string]bool{
		"TEXT": true,
	},
	DefaultTypeParams: map[string]string{
		"DECIMAL": "18,3",
	},
	FunctionNameMap: map[string]string{
		"ARRAY_REMOVE": "LIST_FILTER",
	},
	NormalizeFunctions: "",
	SupportsILike:      true,
}

var ClickHouse = &Dialect{
	Name:            "clickhouse",
	IdentifierStart: '`',
	IdentifierEnd:   '`',
	QuoteStart:      '\'',
	QuoteEnd:        '\'',
	FunctionNameMap: map[string]string{
		// ClickHouse keeps mixed-case builtin names; this table is
		// best-effort, not an exhaustive inference.
		"ISNAN": "isNaN",
	},
	NormalizeFunctions: "",
	SupportsILike:      false,
}

var TSQL = &Dialect{
	Name:               "tsql",
	Aliases:            []string{"mssql", "sqlserver"},
	IdentifierStart:    '[',
	IdentifierEnd:      ']',
	QuoteStart:         '\'',
	QuoteEnd:           '\'',
	NormalizeFunctions: "upper",
	SupportsILike:      false,
	BoolAsInt:          true,
}

var Hive = &Dialect{
	Name:               "hive",
	IdentifierStart:    '`',
	IdentifierEnd:      '`',
	QuoteStart:         '\'',
	QuoteEnd:           '\'',
	NormalizeFunctions: "upper",
	SupportsILike:      false,
	TryCastIsCast:      true,
	RewriteDateSub:     true,
}

var Oracle = &Dialect{
	Name:               "oracle",
	IdentifierStart:    '"',
	IdentifierEnd:      '"',
	QuoteStart:         '\'',
	QuoteEnd:           '\'',
	NormalizeFunctions: "upper",
	SupportsILike:      false,
}

var Snowflake = &Dialect{
	Name:               "snowflake",
	IdentifierStart:    '"',
	IdentifierEnd:      '"',
	QuoteStart:         '\'',
	QuoteEnd:           '\'',
	NormalizeFunctions: "upper",
	SupportsILike:      true,
}

func init() {
	Register(Default)
	Register(Postgres)
	Register(MySQL)
	Register(SQLite)
	Register(BigQuery)
	Register(DuckDB)
	Register(ClickHouse)
	Register(TSQL)
	Register(Hive)
	Register(Oracle)
	Register(Snowflake)
}
