package database

// Config holds configuration for the ledger database connection.
type Config struct {
	// Driver is the database driver (mysql, sqlite).
	Driver string `mapstructure:"driver" default:"mysql"`
	// Host is the database host.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port.
	Port int `mapstructure:"port" default:"3306"`
	// User is the database user.
	User string `mapstructure:"user" default:"root"`
	// Password is the database password.
	Password string `mapstructure:"password" default:""`
	// Name is the database name, or the file path for sqlite.
	Name string `mapstructure:"name" default:"nft_ledger"`
	// TimeoutSeconds bounds connection setup and socket I/O.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// QueryTimeoutSeconds bounds a single ledger query attempt.
	QueryTimeoutSeconds int `mapstructure:"query_timeout_seconds" default:"10"`
	// QueryRetries is how many times a query that got no response is retried.
	QueryRetries int `mapstructure:"query_retries" default:"1"`
	// LedgerTable is the table holding indexed ownership rows.
	LedgerTable string `mapstructure:"ledger_table" default:"eth_nftOwners"`
}
