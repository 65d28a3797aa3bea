// Package config loads application configuration from environment
// variables and optional .env files.
//
// Structs are annotated with github.com/caarlos0/env/v11 tags; .env files
// are read with github.com/joho/godotenv. Nested structs take a prefix
// through the envPrefix tag, which is how the application config embeds
// the email and storage settings:
//
//	type Config struct {
//		AppEnv  string         `env:"APP_ENV" envDefault:"development"`
//		Email   email.Config   `envPrefix:"EMAIL_"`
//		Storage storage.Config `envPrefix:"STORAGE_"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Load caches one copy per type; ResetCache clears it in tests. Parse is
// the uncached variant with an explicit prefix.
package config
