package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort  string    `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Opponent  Opponent  `yaml:"opponent"`
	WebSocket WebSocket `yaml:"websocket"`
}

type Opponent struct {
	// Delay paces the bot's answer; it has no effect on the game itself.
	Delay time.Duration `yaml:"delay" env:"OPPONENT_DELAY" env-default:"1s"`
	Seed  int64         `yaml:"seed" env:"OPPONENT_SEED" env-default:"0"`
}

type WebSocket struct {
	ReadBufferSize  int           `yaml:"read-buffer-size" env-default:"1024"`
	WriteBufferSize int           `yaml:"write-buffer-size" env-default:"1024"`
	PingInterval    time.Duration `yaml:"ping-interval" env-default:"30s"`
	SendQueue       int           `yaml:"send-queue" env-default:"16"`
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

func (that *Config) HTTPAddr() string {
	return ":" + that.HTTPPort
}
