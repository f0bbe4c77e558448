package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port         string `env:"PORT,          default=3000"`
	Env          string `env:"ENV,           default=development"`
	LogLevel     string `env:"LOG_LEVEL,     default=info"`
	ClientSecret string `env:"CLIENT_SECRET, default=storefront-dev-secret"`

	// BookstoreURL is the base address of the remote bookstore API.
	BookstoreURL string `env:"BOOKSTORE_API_URL, default=http://localhost:8080"`

	Store StoreConfig
	Redis RedisConfig
	Mongo MongoConfig
}

// StoreConfig selects the durable client store backend: memory, file,
// redis or mongo.
type StoreConfig struct {
	Backend string `env:"STORE_BACKEND, default=file"`
	File    string `env:"STORE_FILE,    default=storefront-state.json"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=storefront"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
