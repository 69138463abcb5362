package combat

import (
	"fmt"

	"arenasim/internal/config"
)

// BuildSquads constructs both squads from the loaded definitions. Every
// member gets its own ability and item instances, so cooldown and quantity
// state never aliases across the roster.
func BuildSquads(cfg *config.Config) (*Squad, *Squad, error) {
	if len(cfg.Squads.Squads) != 2 {
		return nil, nil, fmt.Errorf("expected exactly 2 squads, got %d", len(cfg.Squads.Squads))
	}

	effects := map[string]StatusEffect{}
	for _, def := range cfg.Effects.Effects {
		effects[def.ID] = StatusEffect{
			Name:     def.Name,
			Duration: def.Duration,
			Value:    def.Value,
			Kind:     EffectKind(def.Kind),
		}
	}
	abilities := map[string]config.AbilityDef{}
	for _, def := range cfg.Abilities.Abilities {
		abilities[def.ID] = def
	}
	items := map[string]config.ItemDef{}
	for _, def := range cfg.Items.Items {
		items[def.ID] = def
	}

	build := func(def config.SquadDef) (*Squad, error) {
		s := NewSquad(def.ID)
		for _, m := range def.Members {
			c := NewCombatant(m.Name, m.MaxHP, m.Attack, m.Defense, m.Speed, def.ID, m.Position)
			for _, aid := range m.Abilities {
				ad, ok := abilities[aid]
				if !ok {
					return nil, fmt.Errorf("squad %s: member %s: unknown ability %q", def.ID, m.Name, aid)
				}
				ab := &Ability{Name: ad.Name, Power: ad.Power, Cooldown: ad.Cooldown}
				if ad.Effect != "" {
					ef, ok := effects[ad.Effect]
					if !ok {
						return nil, fmt.Errorf("ability %s: unknown effect %q", ad.ID, ad.Effect)
					}
					ab.Effect = &ef
				}
				c.Abilities = append(c.Abilities, ab)
			}
			for _, iid := range m.Items {
				id, ok := items[iid]
				if !ok {
					return nil, fmt.Errorf("squad %s: member %s: unknown item %q", def.ID, m.Name, iid)
				}
				c.Inventory = append(c.Inventory, &Item{
					Name:     id.Name,
					Effect:   id.Effect,
					Value:    id.Value,
					Quantity: id.Quantity,
				})
			}
			s.AddMember(c)
		}
		if len(def.Rearrange) > 0 {
			s.RearrangeFormation(def.Rearrange)
		}
		return s, nil
	}

	a, err := build(cfg.Squads.Squads[0])
	if err != nil {
		return nil, nil, err
	}
	b, err := build(cfg.Squads.Squads[1])
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}
