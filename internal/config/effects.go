package config

type EffectsConfig struct {
	Effects []EffectDef `yaml:"effects"`
}

type EffectDef struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Kind     string `yaml:"kind"`
	Duration int    `yaml:"duration"`
	Value    int    `yaml:"value"`
	Note     string `yaml:"note"`
}
