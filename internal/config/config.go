package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	AppEnv        string `mapstructure:"APP_ENV"`
	Port          string `mapstructure:"PORT"`
	PGHost        string `mapstructure:"PG_HOST"`
	PGPort        string `mapstructure:"PG_PORT"`
	PGUser        string `mapstructure:"PG_USER"`
	PGPassword    string `mapstructure:"PG_PASSWORD"`
	PGDatabase    string `mapstructure:"PG_DB"`
	RedisHost     string `mapstructure:"REDIS_HOST"`
	RedisPort     string `mapstructure:"REDIS_PORT"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	SessionSecret string `mapstructure:"SESSION_SECRET"`
	ImageBucket   string `mapstructure:"IMAGE_BUCKET"`
	CacheBackend  string `mapstructure:"CACHE_BACKEND"`
}

func LoadConfig() *Config {
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file not found; using environment variables and defaults")
		} else {
			log.Fatalf("Error reading config file: %s", err)
		}
	}

	// Set default values
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("PG_HOST", "localhost")
	viper.SetDefault("PG_PORT", "5432")
	viper.SetDefault("PG_USER", "vattours")
	viper.SetDefault("PG_PASSWORD", "vattours")
	viper.SetDefault("PG_DB", "vattours")
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("SESSION_SECRET", "change-me-in-production")
	viper.SetDefault("IMAGE_BUCKET", "vattours-images")
	viper.SetDefault("CACHE_BACKEND", "memory")

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode config into struct, %v", err)
	}

	return &config
}

// PostgresDSN assembles the connection string both sqlx and GORM use
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDatabase)
}

// RedisAddr returns the host:port pair for the Redis client
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}
