package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int64
}

// Load reads config.yaml from the working directory. The file is optional;
// defaults cover every key.
func Load() (*SchedulerConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./")
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 3)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		RoundRobinTimeQuantum: v.GetInt64("scheduler.round_robin.time_quantum"),
	}
	if cfg.Port <= 0 {
		return nil, fmt.Errorf("port must be > 0, got %d", cfg.Port)
	}
	if cfg.RoundRobinTimeQuantum <= 0 {
		return nil, fmt.Errorf("round robin time quantum must be > 0, got %d", cfg.RoundRobinTimeQuantum)
	}
	return cfg, nil
}
