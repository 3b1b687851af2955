/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	zfs "github.com/annieversary/zephyr/fs"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "zephyr"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json", ".toml"}

// Find returns the path of the config file under rootDir, or "" if none
// exists.
func Find(filesystem zfs.FileSystem, rootDir string) string {
	for _, ext := range configExtensions {
		p := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if filesystem.Exists(p) {
			return p
		}
	}
	return ""
}

// Load reads .config/zephyr.{yaml,yml,json,toml} from rootDir. Fields
// the file leaves out keep their defaults. Returns nil if no config is
// found; that is not an error.
func Load(filesystem zfs.FileSystem, rootDir string) (*Config, error) {
	path := Find(filesystem, rootDir)
	if path == "" {
		return nil, nil
	}

	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".json":
		err = json.Unmarshal(jsonc.ToJSON(data), cfg)
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Open is Load, falling back to Default when no config file exists.
// Unlike LoadOrDefault it reports invalid files.
func Open(filesystem zfs.FileSystem, rootDir string) (*Config, error) {
	cfg, err := Load(filesystem, rootDir)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return Default(), nil
	}
	return cfg, nil
}

// LoadOrDefault returns config or defaults if not found or invalid.
func LoadOrDefault(filesystem zfs.FileSystem, rootDir string) *Config {
	cfg, err := Load(filesystem, rootDir)
	if err != nil || cfg == nil {
		return Default()
	}
	return cfg
}
