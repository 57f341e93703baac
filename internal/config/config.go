package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ModeCLI  = "cli"
	ModeHTTP = "http"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Mode     string `yaml:"mode" env:"MODE" env-default:"cli"`
	HTTPPort string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Search   Search `yaml:"search"`
	Redis    Redis  `yaml:"redis"`
}

type Search struct {
	Algorithm string `yaml:"algorithm" env:"SEARCH_ALGORITHM" env-default:"minimax"`
	MaxDepth  int    `yaml:"max-depth" env:"SEARCH_MAX_DEPTH" env-default:"9"`
	Parallel  bool   `yaml:"parallel" env:"SEARCH_PARALLEL" env-default:"false"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	if that.Host == "" || that.Port == "" {
		return ""
	}
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
