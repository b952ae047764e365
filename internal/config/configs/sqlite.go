package configs

// SQLite configures the embedded single-node store.
type SQLite struct {
	// Path is the database file. It is created if missing.
	Path          string `env:"PATH" envDefault:"stellar-fund.db"`
	RunMigrations bool   `env:"RUN_MIGRATIONS" envDefault:"true"`
}
