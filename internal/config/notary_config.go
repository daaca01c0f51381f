package config

import (
	"time"
)

type NotaryConfig struct {
	Enabled       bool          `yaml:"enabled"`
	Timeout       time.Duration `yaml:"timeout-seconds"`
	FailureRate   float64       `yaml:"failure-rate"`
	LatencyMillis uint32        `yaml:"latency-millis"`
}

func (n *NotaryConfig) Latency() time.Duration {
	return time.Duration(n.LatencyMillis) * time.Millisecond
}

func (n *NotaryConfig) UnmarshalYAML(unmarshal func(any) error) error {
	var raw struct {
		Enabled        bool    `yaml:"enabled"`
		TimeoutSeconds uint32  `yaml:"timeout-seconds"`
		FailureRate    float64 `yaml:"failure-rate"`
		LatencyMillis  uint32  `yaml:"latency-millis"`
	}

	if err := unmarshal(&raw); err != nil {
		return err
	}

	n.Enabled = raw.Enabled
	n.Timeout = time.Duration(raw.TimeoutSeconds) * time.Second
	n.FailureRate = raw.FailureRate
	n.LatencyMillis = raw.LatencyMillis

	return nil
}
