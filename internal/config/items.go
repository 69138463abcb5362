package config

type ItemsConfig struct {
	Items []ItemDef `yaml:"items"`
}

type ItemDef struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Effect   string `yaml:"effect"`
	Value    int    `yaml:"value"`
	Quantity int    `yaml:"quantity"`
	Note     string `yaml:"note"`
}
