package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/rpattn/seedloader/internal/db"
)

// Config carries the loader's process configuration.
type Config struct {
	Database db.Config
	// DataDir is the directory holding the per-entity source files.
	DataDir string
}

// DefaultConfig returns the configuration used when no config file or
// environment overrides are present.
func DefaultConfig() Config {
	return Config{
		Database: db.DefaultConfig(),
		DataDir:  "./data",
	}
}

// Load reads config.yaml from configPath and applies environment overrides.
func Load(configPath string) (Config, error) {
	// Start with defaults
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AutomaticEnv()         // allow environment overrides
	v.SetEnvPrefix("LOADER") // map env vars like LOADER_DATABASE_HOST

	// Map nested keys to flat env vars
	v.BindEnv("database.host")
	v.BindEnv("database.port")
	v.BindEnv("database.user")
	v.BindEnv("database.password")
	v.BindEnv("database.dbname")
	v.BindEnv("database.sslmode")
	v.BindEnv("loader.data_dir")

	if err := v.ReadInConfig(); err != nil {
		// Config file not found? Just log it, use defaults + env
		fmt.Println("No config.yaml found, using defaults and env vars")
	} else {
		fmt.Println("Loaded config.yaml")
	}

	// Override defaults if values exist
	if v.IsSet("database.host") {
		cfg.Database.Host = v.GetString("database.host")
	}
	if v.IsSet("database.port") {
		cfg.Database.Port = v.GetInt("database.port")
	}
	if v.IsSet("database.user") {
		cfg.Database.User = v.GetString("database.user")
	}
	if v.IsSet("database.password") {
		cfg.Database.Password = v.GetString("database.password")
	}
	if v.IsSet("database.dbname") {
		cfg.Database.DBName = v.GetString("database.dbname")
	}
	if v.IsSet("database.sslmode") {
		cfg.Database.SSLMode = v.GetString("database.sslmode")
	}
	if v.IsSet("loader.data_dir") {
		cfg.DataDir = v.GetString("loader.data_dir")
	}

	return cfg, nil
}
