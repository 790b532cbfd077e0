// Package main runs a headless wild battle between a starter and a
// balanced wild opponent and prints the battle log.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"github.com/samdwyer/creaturebattle/internal/combat"
	"github.com/samdwyer/creaturebattle/internal/entity"
	"github.com/samdwyer/creaturebattle/internal/game"
	"github.com/samdwyer/creaturebattle/internal/gamedata"
	"github.com/samdwyer/creaturebattle/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	ctx := context.Background()

	telemetryCfg, err := telemetry.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to read telemetry config: %v", err)
	}
	shutdown, err := telemetry.Setup(ctx, telemetryCfg)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Battle will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to read config: %v", err)
	}

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("Battle error: %v", err)
	}
}

func run(ctx context.Context, cfg game.Config) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	locale, err := language.Parse(cfg.Locale)
	if err != nil {
		log.Printf("Unknown locale %q, using English", cfg.Locale)
		locale = language.English
	}

	rules, err := game.LoadRules(cfg.AISkill)
	if err != nil {
		return err
	}
	if !hasLocale(rules.Moves, locale) {
		log.Printf("No move names for %s, falling back to English", locale)
	}
	starter, err := rules.NewStarter(cfg.Starter, cfg.StarterLevel)
	if err != nil {
		return err
	}

	opts := entity.DefaultWildOptions()
	opts.LevelMargin = cfg.WildLevelMargin
	wild := entity.SelectWildOpponent(rules.Species, rules.Moves, starter, opts, rng)

	battle, err := game.NewBattle(ctx, rules, entity.NewParty(starter), wild, rng)
	if err != nil {
		return err
	}

	fmt.Printf("Seed %d\n", seed)
	printMoves(rules.Chart, starter, locale)
	printMoves(rules.Chart, wild, locale)

	phase, err := game.NewAutopilot(rules, cfg).Run(ctx, battle)
	for _, line := range battle.Log {
		fmt.Println(line)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Result: %s after %d turns\n", phase, battle.TurnCount)
	return nil
}

// hasLocale reports whether any move has a display name in locale's language.
func hasLocale(moves *gamedata.MoveRegistry, locale language.Tag) bool {
	base, _ := locale.Base()
	for _, tag := range moves.Locales() {
		if b, _ := tag.Base(); b == base {
			return true
		}
	}
	return false
}

// printMoves lists a combatant's moves with their type in the type colour.
func printMoves(chart *gamedata.TypeChart, c *combat.Combatant, locale language.Tag) {
	names := make([]string, 0, len(c.Moves))
	for _, m := range c.Moves {
		names = append(names, fmt.Sprintf("%s [%s]", m.DisplayName(locale), colorize(chart, m.Type)))
	}
	fmt.Printf("%s Lv. %d (%d HP): %s\n", c.Name, c.Level, c.HP, strings.Join(names, ", "))
}

// colorize wraps a type name in a 24-bit ANSI colour escape.
func colorize(chart *gamedata.TypeChart, typeName string) string {
	t := chart.GetByName(typeName)
	if t == nil {
		return typeName
	}
	r, g, b := t.TCellColor().RGB()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r, g, b, typeName)
}
