package combat

import (
	"strings"
	"testing"

	"arenasim/internal/config"
)

func rosterConfig() *config.Config {
	return &config.Config{
		Effects: config.EffectsConfig{Effects: []config.EffectDef{
			{ID: "poison", Name: "Poison", Kind: "poison", Duration: 3, Value: 2},
		}},
		Abilities: config.AbilitiesConfig{Abilities: []config.AbilityDef{
			{ID: "quick_strike", Name: "Quick Strike", Power: 3, Cooldown: 1},
			{ID: "poison_dart", Name: "Poison Dart", Power: 3, Cooldown: 2, Effect: "poison"},
		}},
		Items: config.ItemsConfig{Items: []config.ItemDef{
			{ID: "potion", Name: "Health Potion", Effect: "heal", Value: 10, Quantity: 2},
		}},
		Squads: config.SquadsConfig{Squads: []config.SquadDef{
			{ID: "Team_A", Members: []config.MemberDef{
				{Name: "A", MaxHP: 40, Attack: 12, Defense: 4, Speed: 14, Position: 0,
					Abilities: []string{"quick_strike", "poison_dart"}, Items: []string{"potion"}},
				{Name: "B", MaxHP: 35, Attack: 10, Defense: 5, Speed: 12, Position: 1,
					Abilities: []string{"quick_strike"}},
			}},
			{ID: "Team_B", Rearrange: []int{1, 0}, Members: []config.MemberDef{
				{Name: "X", MaxHP: 42, Attack: 13, Defense: 30, Speed: 11, Position: 0},
				{Name: "Y", MaxHP: 38, Attack: 40, Defense: 5, Speed: 15, Position: 1},
			}},
		}},
	}
}

func TestBuildSquads(t *testing.T) {
	a, b, err := BuildSquads(rosterConfig())
	if err != nil {
		t.Fatal(err)
	}
	if len(a.Members) != 2 || len(b.Members) != 2 {
		t.Fatalf("unexpected roster sizes %d, %d", len(a.Members), len(b.Members))
	}
	m := a.Members[0]
	if m.Name != "A" || m.HP != 40 || m.TeamID != "Team_A" {
		t.Errorf("member not built from config: %+v", m)
	}
	if len(m.Abilities) != 2 || m.Abilities[1].Effect == nil {
		t.Fatalf("abilities not wired: %+v", m.Abilities)
	}
	if m.Abilities[1].Effect.Kind != EffectPoison {
		t.Errorf("effect template not resolved: %+v", m.Abilities[1].Effect)
	}
	if len(m.Inventory) != 1 || m.Inventory[0].Quantity != 2 {
		t.Errorf("inventory not wired: %+v", m.Inventory)
	}
}

func TestBuildSquadsInstancesDoNotAlias(t *testing.T) {
	cfg := rosterConfig()
	a, _, err := BuildSquads(cfg)
	if err != nil {
		t.Fatal(err)
	}
	// A and B both know quick_strike; using A's copy must not start B's
	a.Members[0].Abilities[0].Use()
	if !a.Members[1].Abilities[0].Available() {
		t.Error("cooldown state aliases between members")
	}
}

func TestBuildSquadsRearrange(t *testing.T) {
	_, b, err := BuildSquads(rosterConfig())
	if err != nil {
		t.Fatal(err)
	}
	if b.Members[0].Position != 1 || b.Members[1].Position != 0 {
		t.Errorf("rearrange not applied: %d, %d", b.Members[0].Position, b.Members[1].Position)
	}
	if b.Formation[0] != 1 || b.Formation[1] != 0 {
		t.Errorf("formation not updated: %v", b.Formation)
	}
}

func TestBuildSquadsUnknownReferences(t *testing.T) {
	cfg := rosterConfig()
	cfg.Squads.Squads[0].Members[0].Abilities = []string{"nope"}
	if _, _, err := BuildSquads(cfg); err == nil || !strings.Contains(err.Error(), "unknown ability") {
		t.Errorf("expected unknown ability error, got %v", err)
	}

	cfg = rosterConfig()
	cfg.Abilities.Abilities[1].Effect = "missing"
	if _, _, err := BuildSquads(cfg); err == nil || !strings.Contains(err.Error(), "unknown effect") {
		t.Errorf("expected unknown effect error, got %v", err)
	}

	cfg = rosterConfig()
	cfg.Squads.Squads = cfg.Squads.Squads[:1]
	if _, _, err := BuildSquads(cfg); err == nil || !strings.Contains(err.Error(), "exactly 2 squads") {
		t.Errorf("expected squad count error, got %v", err)
	}
}
