package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ortenszky/Habit-Tracker-Application/internal/streak"
)

// KeyType represents the data type of a config key.
type KeyType string

const (
	KeyTypeString KeyType = "string"
	KeyTypeBool   KeyType = "bool"
)

// KeyEntry describes a known, settable config key.
type KeyEntry struct {
	Type       KeyType
	Desc       string
	DefaultStr string

	get   func(*Config) string
	set   func(cfg *Config, value string) error
	unset func(cfg *Config)
}

// Get returns the current value of the key as a string.
func (e *KeyEntry) Get(cfg *Config) string { return e.get(cfg) }

// Set validates and sets the value.
func (e *KeyEntry) Set(cfg *Config, value string) error { return e.set(cfg, value) }

// Unset resets the key to its default.
func (e *KeyEntry) Unset(cfg *Config) { e.unset(cfg) }

// SchemaKeys is the registry of all settable config keys, in TOML dot-notation.
var SchemaKeys = map[string]*KeyEntry{
	"user.name": {
		Type:       KeyTypeString,
		Desc:       "Display name used in the greeting",
		DefaultStr: "",
		get:        func(cfg *Config) string { return cfg.User.Name },
		set:        func(cfg *Config, v string) error { cfg.User.Name = v; return nil },
		unset:      func(cfg *Config) { cfg.User.Name = "" },
	},
	"habits.default_periodicity": {
		Type:       KeyTypeString,
		Desc:       "Periodicity for new habits (daily, weekly)",
		DefaultStr: DefaultPeriodicity,
		get:        func(cfg *Config) string { return cfg.Habits.DefaultPeriodicity },
		set: func(cfg *Config, v string) error {
			p, err := streak.ParsePeriodicity(v)
			if err != nil {
				return err
			}
			cfg.Habits.DefaultPeriodicity = p.String()
			return nil
		},
		unset: func(cfg *Config) { cfg.Habits.DefaultPeriodicity = DefaultPeriodicity },
	},
	"log.debug": {
		Type:       KeyTypeBool,
		Desc:       "Mirror the log file to stderr at debug level",
		DefaultStr: "false",
		get:        func(cfg *Config) string { return strconv.FormatBool(cfg.Log.Debug) },
		set: func(cfg *Config, v string) error {
			b, err := ParseBoolValue(v)
			if err != nil {
				return fmt.Errorf("invalid value %q for log.debug: %w", v, err)
			}
			cfg.Log.Debug = b
			return nil
		},
		unset: func(cfg *Config) { cfg.Log.Debug = false },
	},
	"log.level": {
		Type:       KeyTypeString,
		Desc:       "Minimum level written to the log file (debug, info, warn, error)",
		DefaultStr: DefaultLogLevel,
		get:        func(cfg *Config) string { return cfg.Log.Level },
		set: func(cfg *Config, v string) error {
			switch lv := strings.ToLower(strings.TrimSpace(v)); lv {
			case "debug", "info", "warn", "error":
				cfg.Log.Level = lv
				return nil
			}
			return fmt.Errorf("invalid log level %q (use debug, info, warn, error)", v)
		},
		unset: func(cfg *Config) { cfg.Log.Level = DefaultLogLevel },
	},
}

// ValidKeyNames returns the sorted list of all known config key names.
func ValidKeyNames() []string {
	names := make([]string, 0, len(SchemaKeys))
	for k := range SchemaKeys {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// LookupKey returns the KeyEntry for a known config key.
func LookupKey(key string) (*KeyEntry, bool) {
	entry, ok := SchemaKeys[key]
	return entry, ok
}

// ParseBoolValue accepts true/false, 1/0, yes/no and on/off.
func ParseBoolValue(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("not a boolean: %q (use one of: true/false, 1/0, yes/no, on/off)", s)
	}
}
