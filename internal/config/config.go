package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Env  string     `yaml:"env"`
	Log  LogConfig  `yaml:"log"`
	Demo DemoConfig `yaml:"demo"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Console bool   `yaml:"console"`
}

type DemoConfig struct {
	UsersFile string `yaml:"users_file"`
	AutoSeed  bool   `yaml:"auto_seed"`
	Prompt    string `yaml:"prompt"`
}

func Default() Config {
	return Config{
		Env: "dev",
		Log: LogConfig{
			Level:   "info",
			Console: true,
		},
		Demo: DemoConfig{
			UsersFile: "",
			AutoSeed:  true,
			Prompt:    "> ",
		},
	}
}

func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFromYAML(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func loadFromYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("unmarshal config yaml: %w", err)
	}

	return nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("APP_ENV"); v != "" {
		cfg.Env = v
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if err := overrideBool("LOG_CONSOLE", &cfg.Log.Console); err != nil {
		return err
	}

	if v := os.Getenv("DEMO_USERS_FILE"); v != "" {
		cfg.Demo.UsersFile = v
	}
	if err := overrideBool("DEMO_AUTO_SEED", &cfg.Demo.AutoSeed); err != nil {
		return err
	}
	if v := os.Getenv("DEMO_PROMPT"); v != "" {
		cfg.Demo.Prompt = v
	}

	return nil
}

func overrideBool(key string, target *bool) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("parse %s bool: %w", key, err)
	}
	*target = b
	return nil
}
