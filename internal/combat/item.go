package combat

// Item is a consumable carried in a combatant's inventory. The action loop
// never uses items; they exist as capability and for the scorer's item rule.
type Item struct {
	Name     string
	Effect   string
	Value    int
	Quantity int
}

func (it *Item) Use(target *Combatant) {
	switch it.Effect {
	case "heal":
		target.Heal(it.Value)
	case "damage":
		target.TakeDamage(it.Value)
	case "buff":
		target.Attack += it.Value
	}
	it.Quantity--
}
