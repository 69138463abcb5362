package combat

type EffectKind string

const (
	EffectPoison EffectKind = "poison"
	EffectHeal   EffectKind = "heal"
	EffectBuff   EffectKind = "buff"
	EffectDebuff EffectKind = "debuff"
)

// StatusEffect is a timed modifier applied to its holder once per turn.
// Effects are attached by value, so two combatants never share duration state.
type StatusEffect struct {
	Name     string
	Duration int
	Value    int
	Kind     EffectKind
}

func (s *StatusEffect) Apply(target *Combatant) {
	switch s.Kind {
	case EffectPoison:
		target.TakeDamage(s.Value)
	case EffectHeal:
		target.Heal(s.Value)
	case EffectBuff:
		target.Attack += s.Value
	case EffectDebuff:
		target.Defense -= s.Value
		if target.Defense < 0 {
			target.Defense = 0
		}
	}
}

func (s *StatusEffect) Tick() { s.Duration-- }

func (s *StatusEffect) Expired() bool { return s.Duration <= 0 }
