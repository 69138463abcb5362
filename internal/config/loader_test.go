package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "effects.yaml", `
effects:
  - id: poison
    name: Poison
    kind: poison
    duration: 3
    value: 2
`)
	writeFile(t, dir, "abilities.yaml", `
abilities:
  - id: fireball
    name: Fireball
    power: 5
    cooldown: 3
    effect: poison
`)
	writeFile(t, dir, "items.yaml", `
items:
  - id: potion
    name: Health Potion
    effect: heal
    value: 10
    quantity: 2
`)
	writeFile(t, dir, "squads.yaml", `
squads:
  - id: Team_A
    rearrange: [1, 0]
    members:
      - name: A
        hp: 40
        attack: 12
        defense: 4
        speed: 14
        position: 0
        abilities: [fireball]
        items: [potion]
      - name: B
        hp: 35
        attack: 10
        defense: 5
        speed: 12
        position: 1
`)

	cfg, err := LoadAll(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Effects.Effects) != 1 || cfg.Effects.Effects[0].Kind != "poison" {
		t.Errorf("effects not parsed: %+v", cfg.Effects)
	}
	ab := cfg.Abilities.Abilities[0]
	if ab.Power != 5 || ab.Effect != "poison" {
		t.Errorf("ability not parsed: %+v", ab)
	}
	sq := cfg.Squads.Squads[0]
	if sq.ID != "Team_A" || len(sq.Members) != 2 || sq.Members[0].Speed != 14 {
		t.Errorf("squad not parsed: %+v", sq)
	}
	if len(sq.Rearrange) != 2 || sq.Rearrange[0] != 1 {
		t.Errorf("rearrange not parsed: %v", sq.Rearrange)
	}
}

func TestLoadAllMissingFile(t *testing.T) {
	if _, err := LoadAll(t.TempDir()); err == nil {
		t.Error("expected error for missing config files")
	}
}

func TestLoadShippedAssets(t *testing.T) {
	cfg, err := LoadAll(filepath.Join("..", "..", "assets"))
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Abilities.Abilities) != 12 {
		t.Errorf("expected the 12-ability pool, got %d", len(cfg.Abilities.Abilities))
	}
	if len(cfg.Squads.Squads) != 2 {
		t.Fatalf("expected 2 squads, got %d", len(cfg.Squads.Squads))
	}
	for _, sq := range cfg.Squads.Squads {
		if len(sq.Members) != 4 {
			t.Errorf("squad %s: expected 4 members, got %d", sq.ID, len(sq.Members))
		}
	}
}
