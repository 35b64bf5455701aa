package symbolicdfa

import "github.com/mitchellh/mapstructure"

// Config tunes the sealed bdd.Manager collaborator a DFA is built against
// and bounds how large a state space Build will accept.
type Config struct {
	Reorder      bool `mapstructure:"reorder"`
	CacheSlots   int  `mapstructure:"cache_slots"`
	UniqueSlots  int  `mapstructure:"unique_slots"`
	MaxStateBits int  `mapstructure:"max_state_bits"`
}

// DefaultConfig matches bdd.NewManager's own defaults, with a conservative
// state-bit ceiling that rejects runaway automaton.Explore results before
// Build tries to materialize 2^bits worth of transition cubes.
func DefaultConfig() Config {
	return Config{
		Reorder:      false,
		CacheSlots:   8192,
		UniqueSlots:  8192,
		MaxStateBits: 10,
	}
}

// FromConfig decodes raw (typically parsed from JSON/YAML/HCL by a caller)
// into a Config via mapstructure, starting from DefaultConfig so omitted
// fields keep their defaults.
func FromConfig(raw map[string]interface{}) (Config, error) {
	cfg := DefaultConfig()
	if err := mapstructure.Decode(raw, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
