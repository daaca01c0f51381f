package config

type ApiConfig struct {
	Enabled bool   `yaml:"enabled"`
	Address string `yaml:"address"`
}
