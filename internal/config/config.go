package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Addr string `mapstructure:"addr"`
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`

	Wikipedia struct {
		Enabled      bool   `mapstructure:"enabled"`
		APIURL       string `mapstructure:"api_url"`
		RestURL      string `mapstructure:"rest_url"`
		UserAgent    string `mapstructure:"user_agent"`
		TimeoutSecs  int    `mapstructure:"timeout_seconds"`
		MaxSentences int    `mapstructure:"max_sentences"`
		CachePath    string `mapstructure:"cache_path"`
	} `mapstructure:"wikipedia"`

	Redis struct {
		Address  string `mapstructure:"address"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`

	Worker struct {
		Concurrency int            `mapstructure:"concurrency"`
		Queues      map[string]int `mapstructure:"queues"`
	} `mapstructure:"worker"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	viper.BindEnv("redis.address", "REDIS_ADDR")
	viper.BindEnv("wikipedia.user_agent", "LEXIS_USER_AGENT")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults and env vars cover
		// everything. Any other read error is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.addr", "localhost")
	viper.SetDefault("server.port", "8080")

	viper.SetDefault("wikipedia.enabled", true)
	viper.SetDefault("wikipedia.api_url", "https://en.wikipedia.org/w/api.php")
	viper.SetDefault("wikipedia.rest_url", "https://en.wikipedia.org/api/rest_v1/page/summary")
	viper.SetDefault("wikipedia.timeout_seconds", 2)
	viper.SetDefault("wikipedia.max_sentences", 3)
	viper.SetDefault("wikipedia.cache_path", "lexis_cache.db")

	viper.SetDefault("redis.address", "localhost:6379")
	viper.SetDefault("worker.concurrency", 4)
	viper.SetDefault("worker.queues", map[string]int{"default": 1})
}
