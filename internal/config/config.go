package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Redis    Redis  `yaml:"redis"`
	Game     Game   `yaml:"game"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// Game holds the match defaults.
// Minimax search is exhaustive, so every extra cell multiplies the work; a 4x4 board
// already has 16! move orderings. MaxComputerBoardSize keeps computer games tractable.
type Game struct {
	BoardSize            int `yaml:"board-size" env:"GAME_BOARD_SIZE" env-default:"3"`
	MaxComputerBoardSize int `yaml:"max-computer-board-size" env:"GAME_MAX_COMPUTER_BOARD_SIZE" env-default:"3"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
