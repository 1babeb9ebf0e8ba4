package config

import (
	"log"

	"github.com/spf13/viper"

	"github.com/formesean/tilltally/internal/models"
)

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Catalog CatalogConfig
	Site    models.SiteInfo
}

type ServerConfig struct {
	Port string
	Env  string
}

type StorageConfig struct {
	Driver string // "file" or "sqlite"
	Dir    string // state directory for the file driver
	DSN    string // database file for the sqlite driver
}

type CatalogConfig struct {
	ProductsPath string // empty selects the embedded seed feed
	CodesPath    string
}

var AppConfig *Config

func LoadConfig() {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, checking environment variables: %v", err)
	}

	// Environment variables override the .env file.
	viper.AutomaticEnv()
	viper.BindEnv("SERVER_PORT", "PORT") // Fallback to PORT if SERVER_PORT is missing

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("STORAGE_DRIVER", "file")
	viper.SetDefault("STORAGE_DIR", "./state")
	viper.SetDefault("STORAGE_DSN", "./state/tilltally.db")

	AppConfig = &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
			Env:  viper.GetString("SERVER_ENV"),
		},
		Storage: StorageConfig{
			Driver: viper.GetString("STORAGE_DRIVER"),
			Dir:    viper.GetString("STORAGE_DIR"),
			DSN:    viper.GetString("STORAGE_DSN"),
		},
		Catalog: CatalogConfig{
			ProductsPath: viper.GetString("CATALOG_PRODUCTS_PATH"),
			CodesPath:    viper.GetString("CATALOG_CODES_PATH"),
		},
	}

	// Site info lives in a TOML file so the storefront branding can be
	// edited without touching the environment.
	siteViper := viper.New()
	siteViper.SetConfigFile("config/config.toml")
	siteViper.SetConfigType("toml")
	if err := siteViper.ReadInConfig(); err != nil {
		log.Printf("Warning: config/config.toml not found, using empty site info: %v", err)
	} else {
		if err := siteViper.UnmarshalKey("site", &AppConfig.Site); err != nil {
			log.Printf("Error: Failed to unmarshal site info from TOML: %v", err)
		}
	}

	log.Printf("Configuration loaded successfully:")
	log.Printf("- Server Port: %s", AppConfig.Server.Port)
	log.Printf("- Server Env: %s", AppConfig.Server.Env)
	log.Printf("- Storage Driver: %s", AppConfig.Storage.Driver)
}
