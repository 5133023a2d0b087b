// Package config provides configuration management for the reconciler.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Alchemy: NFT API key, base URL, request timeout
//   - Database: ledger connection details, query timeout and retries
//   - Storage: S3/MinIO credentials, report bucket and prefix
//   - Log: Logging level and format
//   - Reconcile: page ceiling and batch policy
//   - Telemetry: OTLP endpoint
//
// Defaults come from the `default` struct tags of each section. Environment
// variables override them using the upper-cased key path (ALCHEMY_API_KEY,
// DATABASE_LEDGER_TABLE, RECONCILE_MAX_PAGES).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Alchemy.BaseURL)
package config
