package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"CONNECTFOUR_LOG_LEVEL" env-default:"info"`
	Game     Game    `yaml:"game"`
	Display  Display `yaml:"display"`
}

const (
	OpponentBot   = "bot"
	OpponentHuman = "human"
)

var ErrUnknownOpponent = errors.New("unknown opponent")

type Game struct {
	Opponent string `yaml:"opponent" env:"CONNECTFOUR_OPPONENT" env-default:"bot"`
}

// PlayAgainstBot reports whether the second seat starts out as the automated opponent.
func (that *Game) PlayAgainstBot() bool {
	return that.Opponent == OpponentBot
}

func (that *Game) validate() error {
	switch that.Opponent {
	case OpponentBot, OpponentHuman:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOpponent, that.Opponent)
	}
}

type Display struct {
	Glyphs Glyphs `yaml:"glyphs"`
	Names  Names  `yaml:"names"`
}

type Glyphs struct {
	Empty  string `yaml:"empty" env-default:"."`
	Red    string `yaml:"red" env-default:"R"`
	Yellow string `yaml:"yellow" env-default:"Y"`
	Bot    string `yaml:"bot" env-default:"A"`
}

type Names struct {
	Red    string `yaml:"red" env-default:"Red"`
	Yellow string `yaml:"yellow" env-default:"Yellow"`
	Bot    string `yaml:"bot" env-default:"AI"`
}

// Load reads the config file at path, or only the environment when the file does not exist.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from env: %w", err)
		}
	} else if err = cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Game.validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}
