package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// Config represents the gitdiff configuration.
type Config struct {
	Format         string   `json:"format"`
	Color          bool     `json:"color"`
	Extensions     []string `json:"extensions,omitempty"`
	IgnoreBinaries bool     `json:"ignoreBinaries"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Format: "text",
	}
}

// ConfigDir returns the platform-appropriate config directory for gitdiff.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gitdiff"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "gitdiff"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "gitdiff"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "gitdiff"), nil
	default:
		return filepath.Join(home, ".config", "gitdiff"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil
// error if the file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <-
// overrides. The overrides map comes from CLI flags (only set values should
// be present).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	cfg.Extensions = NormalizeExtensions(cfg.Extensions)
	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.Format != "" {
		dst.Format = src.Format
	}
	if len(src.Extensions) > 0 {
		dst.Extensions = src.Extensions
	}
	dst.Color = src.Color || dst.Color
	dst.IgnoreBinaries = src.IgnoreBinaries || dst.IgnoreBinaries
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("GITDIFF_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("GITDIFF_COLOR"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Color = b
		}
	}
	if v := os.Getenv("GITDIFF_EXTENSIONS"); v != "" {
		cfg.Extensions = splitComma(v)
	}
	if v := os.Getenv("GITDIFF_IGNORE_BINARIES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.IgnoreBinaries = b
		}
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["format"]; ok && v != "" {
		cfg.Format = v
	}
	if v, ok := overrides["color"]; ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Color = b
		}
	}
	if v, ok := overrides["extensions"]; ok && v != "" {
		cfg.Extensions = splitComma(v)
	}
	if v, ok := overrides["ignoreBinaries"]; ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.IgnoreBinaries = b
		}
	}
}

// SetField sets a single config field by key name. Returns an error if key
// is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "format":
		if value != "text" && value != "json" {
			return fmt.Errorf("format must be text or json")
		}
		cfg.Format = value
	case "color":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("color must be a boolean: %w", err)
		}
		cfg.Color = b
	case "extensions":
		cfg.Extensions = NormalizeExtensions(splitComma(value))
	case "ignoreBinaries":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("ignoreBinaries must be a boolean: %w", err)
		}
		cfg.IgnoreBinaries = b
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

// NormalizeExtensions lower-cases extensions and prepends the dot when it is
// missing, so ".PY", "py", and ".py" all filter the same files.
func NormalizeExtensions(exts []string) []string {
	var result []string
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		result = append(result, strings.ToLower(ext))
	}
	return result
}

func splitComma(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
