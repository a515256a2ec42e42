// Package config provides configuration management for the topology manager.
//
// It uses Viper for environment variables and godotenv for an optional .env file.
// Every field declares its key with a `mapstructure` tag and its default with a
// `default` tag; nested keys map to upper-case environment variables joined by
// underscores (database.host -> DATABASE_HOST).
//
// # Configuration Structure
//
//   - Server: ingestion port, API key, body limit
//   - Database: driver (mysql, sqlite) and connection details
//   - Storage: MinIO credentials, bucket and snapshot/archive prefixes
//   - Log: level and format
//   - Reconcile: worker count, bulk insert batch size, local snapshot directory
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Database.Driver)
package config
