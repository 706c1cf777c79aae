package cmd

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/gordian-engine/lightmerkle"
	"github.com/gordian-engine/lightmerkle/lmsha256"
	"github.com/gordian-engine/lightmerkle/lmsha3"
)

// Config is the lmtool configuration file format.
type Config struct {
	// Hash selects the hasher: "sha256" (the default) or "sha3".
	Hash string `toml:"hash"`
}

// LoadConfig reads a TOML configuration file.
func LoadConfig(path string) (Config, error) {
	var c Config
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if u := md.Undecoded(); len(u) > 0 {
		return Config{}, fmt.Errorf("unknown keys in config %s: %v", path, u)
	}
	return c, nil
}

// NewHasher returns a fresh hasher by name.
func NewHasher(name string) (lightmerkle.Hasher[lightmerkle.Hash32], error) {
	switch name {
	case "", "sha256":
		return lmsha256.New(), nil
	case "sha3":
		return lmsha3.New(), nil
	default:
		return nil, fmt.Errorf("unknown hash %q (want sha256 or sha3)", name)
	}
}
