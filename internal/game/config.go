package game

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds battle configuration options, read from the environment.
type Config struct {
	// Seed for random number generation. Used for reproducible battles.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `env:"CREATUREBATTLE_SEED" envDefault:"0"`

	// AISkill is the battle AI's skill level for both sides.
	AISkill int `env:"CREATUREBATTLE_AI_SKILL" envDefault:"32"`

	Starter      string `env:"CREATUREBATTLE_STARTER" envDefault:"charmander"`
	StarterLevel int    `env:"CREATUREBATTLE_STARTER_LEVEL" envDefault:"5"`

	// WildLevelMargin bounds how far the wild opponent's level strays
	// from the starter's.
	WildLevelMargin int `env:"CREATUREBATTLE_WILD_LEVEL_MARGIN" envDefault:"1"`

	// Ball is thrown once the wild opponent drops below CaptureBelow of
	// its max HP. An empty ball never throws.
	Ball         string  `env:"CREATUREBATTLE_BALL" envDefault:"poke-ball"`
	CaptureBelow float64 `env:"CREATUREBATTLE_CAPTURE_BELOW" envDefault:"0.25"`

	// MaxTurns after which the party flees.
	MaxTurns int `env:"CREATUREBATTLE_MAX_TURNS" envDefault:"100"`

	// Locale for move names in the battle header (BCP 47).
	Locale string `env:"CREATUREBATTLE_LOCALE" envDefault:"en"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
