package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	LedgerConfig   LedgerConfig   `yaml:"ledger"`
	DatabaseConfig DatabaseConfig `yaml:"database"`
	NotaryConfig   NotaryConfig   `yaml:"notary"`
	ApiConfig      ApiConfig      `yaml:"api"`
}

func LoadConfigFile(path string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)

	if err := d.Decode(&config); err != nil {
		return nil, err
	}

	return config, nil
}
