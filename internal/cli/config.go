package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/spherelab/constellation/pkg/layout"
)

// configFileName is the project-level configuration file.
const configFileName = "constellation.toml"

// fileConfig is the TOML configuration file layout.
//
// Example constellation.toml:
//
//	[layout]
//	sphere_radius = 5000.0
//	coverage_factor = 0.7
//	seed = 42
//
//	[cache]
//	disabled = false
//
//	[server]
//	addr = ":8080"
//	redis_url = "redis://localhost:6379/0"
type fileConfig struct {
	Layout layout.Config `toml:"layout"`
	Cache  cacheConfig   `toml:"cache"`
	Server serverConfig  `toml:"server"`
}

type cacheConfig struct {
	Disabled bool   `toml:"disabled"`
	Dir      string `toml:"dir"`
}

type serverConfig struct {
	Addr       string `toml:"addr"`
	RedisURL   string `toml:"redis_url"`
	MongoURI   string `toml:"mongo_uri"`
	MongoDB    string `toml:"mongo_db"`
	Collection string `toml:"mongo_collection"`
}

// loadConfigFile reads a TOML config file. When path is empty, the default
// locations are probed: ./constellation.toml, then
// $XDG_CONFIG_HOME/constellation/constellation.toml. A missing file yields
// the zero config without error; only a named path must exist.
func loadConfigFile(path string) (fileConfig, error) {
	var cfg fileConfig

	explicit := path != ""
	if !explicit {
		path = findConfigFile()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// findConfigFile probes the default config locations.
func findConfigFile() string {
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName
	}
	if dir := configDir(); dir != "" {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// configDir returns the config directory using XDG standard
// (~/.config/constellation/).
func configDir() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}
