package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// appName names the XDG subdirectories and the database file.
const appName = "habit"

// Config holds the top-level habit configuration.
type Config struct {
	User   UserConfig   `toml:"user"`
	Habits HabitsConfig `toml:"habits"`
	Log    LogConfig    `toml:"log"`
}

type UserConfig struct {
	Name string `toml:"name"`
}

// HabitsConfig holds defaults applied when creating habits.
type HabitsConfig struct {
	// DefaultPeriodicity is used by `habit add` when --periodicity is not given.
	DefaultPeriodicity string `toml:"default_periodicity"`
}

// LogConfig controls the rotating log file.
type LogConfig struct {
	Debug bool   `toml:"debug"`
	Level string `toml:"level"` // debug, info, warn, error
}

// Paths returns standard XDG-compliant paths.
type Paths struct {
	ConfigDir  string
	DataDir    string
	CacheDir   string
	StateDir   string
	LogDir     string
	ConfigFile string
	DBFile     string
}

// GetPaths returns the resolved paths, respecting XDG env vars.
func GetPaths() Paths {
	home, _ := os.UserHomeDir()

	configDir := envOr("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	dataDir := envOr("XDG_DATA_HOME", filepath.Join(home, ".local", "share"))
	cacheDir := envOr("XDG_CACHE_HOME", filepath.Join(home, ".cache"))
	stateDir := envOr("XDG_STATE_HOME", filepath.Join(home, ".local", "state"))

	appConfig := filepath.Join(configDir, appName)
	appData := filepath.Join(dataDir, appName)
	appState := filepath.Join(stateDir, appName)

	return Paths{
		ConfigDir:  appConfig,
		DataDir:    appData,
		CacheDir:   filepath.Join(cacheDir, appName),
		StateDir:   appState,
		LogDir:     filepath.Join(appState, "logs"),
		ConfigFile: filepath.Join(appConfig, "config.toml"),
		DBFile:     filepath.Join(appData, appName+".db"),
	}
}

// EnsureDirs creates all required directories.
func (p Paths) EnsureDirs() error {
	dirs := []string{p.ConfigDir, p.DataDir, p.CacheDir, p.StateDir, p.LogDir}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return err
		}
	}
	return nil
}

// Load reads config from disk, returning defaults if not found.
// Keys missing from the file keep their default values.
func Load() (*Config, error) {
	paths := GetPaths()
	cfg := defaultConfig()

	data, err := os.ReadFile(paths.ConfigFile)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes config to disk.
func Save(cfg *Config) error {
	paths := GetPaths()
	if err := paths.EnsureDirs(); err != nil {
		return err
	}

	f, err := os.Create(paths.ConfigFile)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Initialized returns true if a config file has been written.
func Initialized() bool {
	paths := GetPaths()
	_, err := os.Stat(paths.ConfigFile)
	return err == nil
}

const (
	DefaultPeriodicity = "daily"
	DefaultLogLevel    = "warn"
)

func defaultConfig() *Config {
	return &Config{
		Habits: HabitsConfig{
			DefaultPeriodicity: DefaultPeriodicity,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
