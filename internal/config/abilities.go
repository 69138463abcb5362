package config

type AbilitiesConfig struct {
	Abilities []AbilityDef `yaml:"abilities"`
}

type AbilityDef struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Power    int    `yaml:"power"`
	Cooldown int    `yaml:"cooldown"`
	Effect   string `yaml:"effect"` // effect id, optional
	Note     string `yaml:"note"`
}
