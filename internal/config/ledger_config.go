package config

type LedgerConfig struct {
	DataDir string `yaml:"data-dir"`
}
