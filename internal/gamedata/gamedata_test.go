package gamedata

import (
	"encoding/json"
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/language"
)

func TestLoadTypes(t *testing.T) {
	types, err := LoadTypes()
	if err != nil {
		t.Fatalf("Failed to load types: %v", err)
	}

	if len(types) != 18 {
		t.Errorf("Expected 18 types, got %d", len(types))
	}
	for _, def := range types {
		if _, err := ParseHexColor(def.Color); err != nil {
			t.Errorf("Type %s has an invalid colour: %v", def.Name, err)
		}
	}
}

func TestTypeChart(t *testing.T) {
	chart := MustLoadTypeChart()

	tests := []struct {
		attack, defender string
		want             float64
	}{
		{"fire", "grass", 2},
		{"water", "water", 0.5},
		{"normal", "ghost", 0},
		{"Ground", "FLYING", 0},
		{"normal", "normal", 1},
		{"unknown", "grass", 1},
		{"grass", "unknown", 1},
	}
	for _, tt := range tests {
		if got := chart.Multiplier(tt.attack, tt.defender); got != tt.want {
			t.Errorf("Multiplier(%s, %s) = %v, want %v", tt.attack, tt.defender, got, tt.want)
		}
	}

	rel, ok := chart.Relations("electric")
	if !ok {
		t.Fatal("electric relations not found")
	}
	if len(rel.NoDamageTo) != 1 || rel.NoDamageTo[0] != "ground" {
		t.Errorf("Expected electric to do nothing to ground, got %v", rel.NoDamageTo)
	}
	if _, ok := chart.Relations("cosmic"); ok {
		t.Error("Expected unknown type to report false")
	}
}

func TestTypeColors(t *testing.T) {
	fire := MustLoadTypeChart().GetByName("fire")
	if fire == nil {
		t.Fatal("fire type not found")
	}
	if got := fire.TCellColor(); got != tcell.NewRGBColor(0xF0, 0x80, 0x30) {
		t.Errorf("Expected fire colour #F08030, got %v", got)
	}

	broken := TypeDef{Name: "broken", Color: "not-a-colour"}
	if got := broken.TCellColor(); got != tcell.ColorWhite {
		t.Errorf("Expected fallback to white, got %v", got)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    tcell.Color
		wantErr bool
	}{
		{"#FF0000", tcell.NewRGBColor(255, 0, 0), false},
		{"00ff00", tcell.NewRGBColor(0, 255, 0), false},
		{"#F83", tcell.NewRGBColor(0xFF, 0x88, 0x33), false},
		{"#12345", tcell.ColorDefault, true},
		{"#GGGGGG", tcell.ColorDefault, true},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHexColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMoveRegistry(t *testing.T) {
	registry, err := LoadMoveRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 41 {
		t.Errorf("Expected 41 moves, got %d", registry.Count())
	}

	tackle := registry.GetByID(33)
	if tackle == nil {
		t.Fatal("Tackle not found by ID")
	}
	if tackle.BasePower() != 40 || tackle.AccuracyPercent() != 100 {
		t.Errorf("Unexpected tackle stats: power %d, accuracy %d", tackle.BasePower(), tackle.AccuracyPercent())
	}

	protect := registry.ByName("protect", language.English)
	if protect == nil || protect.Accuracy != nil || !protect.Effects.Protect {
		t.Errorf("Expected protect to never miss and set protection, got %+v", protect)
	}

	fury := registry.ByName("fury-attack", language.English)
	if fury == nil || !fury.Effects.MultiHit {
		t.Error("Expected fury-attack to be multi-hit")
	}

	// Missing names are skipped.
	moves := registry.GetMultiple([]string{"tackle", "nonexistent", "ember"})
	if len(moves) != 2 {
		t.Errorf("Expected 2 moves, got %d", len(moves))
	}
}

func TestMoveLookupByLocale(t *testing.T) {
	registry := MustLoadMoveRegistry()

	tests := []struct {
		name   string
		locale language.Tag
		want   string
	}{
		{"Charge", language.French, "tackle"},
		{"charge", language.French, "tackle"},
		{"Tackle", language.English, "tackle"},
		{"Lance-Flammes", language.French, "flamethrower"},
		{"lance-flammes", language.English, "flamethrower"},
		{"FLAMETHROWER", language.French, "flamethrower"},
		{"Flammèche", language.MustParse("fr-CA"), "ember"},
		{"thunder-wave", language.Japanese, "thunder-wave"},
	}

	for _, tt := range tests {
		move := registry.ByName(tt.name, tt.locale)
		if move == nil {
			t.Errorf("ByName(%q, %s) found nothing", tt.name, tt.locale)
			continue
		}
		if move.Name != tt.want {
			t.Errorf("ByName(%q, %s) = %s, want %s", tt.name, tt.locale, move.Name, tt.want)
		}
	}

	if move := registry.ByName("not-a-move", language.English); move != nil {
		t.Errorf("Expected nil for an unknown name, got %s", move.Name)
	}

	tackle := registry.ByName("tackle", language.English)
	if got := tackle.DisplayName(language.French); got != "Charge" {
		t.Errorf("Expected French display name Charge, got %s", got)
	}
	if got := tackle.DisplayName(language.German); got != "Tackle" {
		t.Errorf("Expected English fallback Tackle, got %s", got)
	}
}

func TestMoveLocales(t *testing.T) {
	locales := MustLoadMoveRegistry().Locales()

	if len(locales) != 2 {
		t.Fatalf("Expected 2 locales, got %v", locales)
	}
	if locales[0] != language.English {
		t.Errorf("Expected English first, got %s", locales[0])
	}
	if locales[1] != language.French {
		t.Errorf("Expected French, got %s", locales[1])
	}

	// The returned slice is a copy.
	locales[0] = language.German
	if got := MustLoadMoveRegistry().Locales()[0]; got != language.English {
		t.Errorf("Expected registry locales unchanged, got %s", got)
	}
}

func TestStatAliasesNormalised(t *testing.T) {
	tests := []struct {
		in   string
		want Stat
	}{
		{"atk", StatAttack},
		{"Attack", StatAttack},
		{"def", StatDefense},
		{"spa", StatSpAttack},
		{"sp_def", StatSpDefense},
		{"spe", StatSpeed},
		{"HP", StatHP},
	}
	for _, tt := range tests {
		got, ok := ParseStat(tt.in)
		if !ok || got != tt.want {
			t.Errorf("ParseStat(%q) = %q, %v; want %q", tt.in, got, ok, tt.want)
		}
	}

	var change StatChange
	if err := json.Unmarshal([]byte(`{"target":"user","stat":"atk","change":2}`), &change); err != nil {
		t.Fatalf("Failed to decode stat change: %v", err)
	}
	if change.Stat != StatAttack || !change.TargetsSelf() || change.Delta != 2 {
		t.Errorf("Unexpected decoded stat change: %+v", change)
	}
}

func TestStatusCaptureModifier(t *testing.T) {
	tests := []struct {
		status StatusCondition
		want   float64
	}{
		{StatusSleep, 2},
		{StatusFreeze, 2},
		{StatusParalysis, 1.5},
		{StatusPoison, 1.5},
		{StatusBurn, 1.5},
		{StatusNone, 1},
		{"confused", 1},
	}
	for _, tt := range tests {
		if got := StatusCaptureModifier(tt.status); got != tt.want {
			t.Errorf("StatusCaptureModifier(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestSpeciesRegistry(t *testing.T) {
	registry, err := LoadSpeciesRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 23 {
		t.Errorf("Expected 23 species, got %d", registry.Count())
	}

	bulbasaur := registry.GetByID(1)
	if bulbasaur == nil {
		t.Fatal("Bulbasaur not found by ID")
	}
	if bulbasaur.StatTotal() != 318 {
		t.Errorf("Expected stat total 318, got %d", bulbasaur.StatTotal())
	}
	if registry.GetByName("PIKACHU") == nil {
		t.Error("Expected case-insensitive lookup by name")
	}
	if registry.GetByID(999) != nil {
		t.Error("Expected nil for an unknown id")
	}
}

func TestNextEvolution(t *testing.T) {
	registry := MustLoadSpeciesRegistry()

	tests := []struct {
		id, level int
		want      int // 0 means no evolution
	}{
		{1, 15, 0},
		{1, 16, 2},
		{1, 40, 2},
		{2, 32, 3},
		{3, 100, 0},
		{25, 100, 0},
		{129, 20, 130},
		{999, 50, 0},
	}
	for _, tt := range tests {
		got := registry.NextEvolution(tt.id, tt.level)
		switch {
		case tt.want == 0 && got != nil:
			t.Errorf("NextEvolution(%d, %d) = %d, want none", tt.id, tt.level, got.ID)
		case tt.want != 0 && (got == nil || got.ID != tt.want):
			t.Errorf("NextEvolution(%d, %d) = %v, want %d", tt.id, tt.level, got, tt.want)
		}
	}
}

func TestNextEvolutionIgnoresMissingTarget(t *testing.T) {
	registry := NewSpeciesRegistry([]SpeciesDef{
		{ID: 1, Name: "orphan", Evolutions: []Evolution{{Into: 2, MinLevel: 5}}},
	})
	if got := registry.NextEvolution(1, 10); got != nil {
		t.Errorf("Expected no evolution into a missing species, got %s", got.Name)
	}
}

func TestLearnableMoves(t *testing.T) {
	species := MustLoadSpeciesRegistry()
	moves := MustLoadMoveRegistry()

	tests := []struct {
		id, level int
		want      []string
	}{
		{4, 1, []string{"scratch", "growl"}},
		{4, 9, []string{"scratch", "growl", "ember"}},
		{4, 50, []string{"scratch", "growl", "ember", "dragon-rage"}},
		{129, 5, []string{"splash"}},
		{999, 5, nil},
	}
	for _, tt := range tests {
		got := species.LearnableMoves(tt.id, tt.level, moves)
		if len(got) != len(tt.want) {
			t.Errorf("LearnableMoves(%d, %d) returned %d moves, want %d", tt.id, tt.level, len(got), len(tt.want))
			continue
		}
		for i, name := range tt.want {
			if got[i].Name != name {
				t.Errorf("LearnableMoves(%d, %d)[%d] = %s, want %s", tt.id, tt.level, i, got[i].Name, name)
			}
		}
	}
}

func TestLearnableMovesDeduplicates(t *testing.T) {
	species := NewSpeciesRegistry([]SpeciesDef{{
		ID:   1,
		Name: "echo",
		Learnset: []LearnsetEntry{
			{Move: "tackle", Level: 5},
			{Move: "tackle", Level: 1},
			{Move: "growl", Level: 3},
			{Move: "made-up", Level: 1},
		},
	}})

	got := species.LearnableMoves(1, 10, MustLoadMoveRegistry())

	if len(got) != 2 || got[0].Name != "tackle" || got[1].Name != "growl" {
		t.Errorf("Expected [tackle growl], got %v", got)
	}
}

func TestItemRegistry(t *testing.T) {
	registry := MustLoadItemRegistry()

	if registry.Count() != 19 {
		t.Errorf("Expected 19 items, got %d", registry.Count())
	}
	if len(registry.Balls()) != 4 {
		t.Errorf("Expected 4 balls, got %d", len(registry.Balls()))
	}

	tests := []struct {
		name string
		want float64
	}{
		{"poke-ball", 1.0},
		{"Super Ball", 1.5},
		{"ultra-ball", 2.0},
		{"master-ball", 255},
		{"potion", 1.0},
	}
	for _, tt := range tests {
		item := registry.ByName(tt.name)
		if item == nil {
			t.Errorf("item %q not found", tt.name)
			continue
		}
		if got := item.BallModifier(); got != tt.want {
			t.Errorf("%s ball modifier = %v, want %v", tt.name, got, tt.want)
		}
	}

	var missing *ItemDef
	if missing.BallModifier() != 1.0 {
		t.Error("Expected a nil item to have a neutral ball modifier")
	}

	fullHeal := registry.ByName("full-heal")
	if !fullHeal.Cure(StatusBurn) || !fullHeal.Cure(StatusSleep) {
		t.Error("Expected full-heal to cure every status")
	}
	if registry.ByName("antidote").Cure(StatusBurn) {
		t.Error("Expected antidote not to cure burns")
	}
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"types.json":  {Data: []byte(`{"types":[{"name":"void","color":"#000"}]}`)},
		"broken.json": {Data: []byte(`{"types":`)},
	}

	file, err := LoadFS[TypesFile](fsys, "types.json")
	if err != nil {
		t.Fatalf("Failed to load from map FS: %v", err)
	}
	if len(file.Types) != 1 || file.Types[0].Name != "void" {
		t.Errorf("Unexpected types: %+v", file.Types)
	}

	if _, err := LoadFS[TypesFile](fsys, "broken.json"); err == nil {
		t.Error("Expected a parse error")
	}
	if _, err := LoadFS[TypesFile](fsys, "missing.json"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected a wrapped fs.ErrNotExist, got %v", err)
	}
}
