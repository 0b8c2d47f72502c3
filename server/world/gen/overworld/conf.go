package overworld

import (
	"errors"
	"fmt"
	"os"

	"github.com/cubeworks/genesis/server/block"
	"github.com/cubeworks/genesis/server/world/gen/populate"
	"github.com/pelletier/go-toml"
)

// Settings holds the tunable parts of the overworld generator. The zero
// value is usable: withDefaults fills in the stock water height and ore
// table.
type Settings struct {
	// WaterHeight is the level up to which air below the terrain surface is
	// replaced with water.
	WaterHeight int `toml:"water_height"`
	// Ores is the ore table placed by the population pass. Blocks are
	// referenced by their registered state string.
	Ores []OreSetting `toml:"ores"`
}

// OreSetting describes one ore type of the generator's ore table.
type OreSetting struct {
	Block        string `toml:"block"`
	Replaces     string `toml:"replaces"`
	ClusterCount int    `toml:"cluster_count"`
	ClusterSize  int    `toml:"cluster_size"`
	MinHeight    int    `toml:"min_height"`
	MaxHeight    int    `toml:"max_height"`
}

// DefaultSettings returns the stock overworld settings.
func DefaultSettings() Settings {
	return Settings{}.withDefaults()
}

func (s Settings) withDefaults() Settings {
	if s.WaterHeight == 0 {
		s.WaterHeight = 62
	}
	if len(s.Ores) == 0 {
		s.Ores = []OreSetting{
			{Block: "genesis:coal_ore", ClusterCount: 20, ClusterSize: 16, MinHeight: 1, MaxHeight: 127},
			{Block: "genesis:iron_ore", ClusterCount: 20, ClusterSize: 8, MinHeight: 1, MaxHeight: 64},
			{Block: "genesis:gold_ore", ClusterCount: 2, ClusterSize: 8, MinHeight: 1, MaxHeight: 32},
			{Block: "genesis:lapis_ore", ClusterCount: 1, ClusterSize: 6, MinHeight: 1, MaxHeight: 32},
			{Block: "genesis:diamond_ore", ClusterCount: 1, ClusterSize: 7, MinHeight: 1, MaxHeight: 16},
			{Block: "genesis:dirt", ClusterCount: 20, ClusterSize: 32, MinHeight: 1, MaxHeight: 127},
			{Block: "genesis:gravel", ClusterCount: 10, ClusterSize: 16, MinHeight: 1, MaxHeight: 127},
		}
	}
	for i := range s.Ores {
		if s.Ores[i].Replaces == "" {
			s.Ores[i].Replaces = "genesis:stone"
		}
	}
	return s
}

// oreConfig resolves the ore table's block names against the block registry.
func (s Settings) oreConfig() (populate.OreConfig, error) {
	conf := populate.OreConfig{Types: make([]populate.OreType, 0, len(s.Ores))}
	for _, ore := range s.Ores {
		material, ok := block.Registry.RuntimeID(ore.Block)
		if !ok {
			return populate.OreConfig{}, fmt.Errorf("load ore table: unknown block %q", ore.Block)
		}
		replaces, ok := block.Registry.RuntimeID(ore.Replaces)
		if !ok {
			return populate.OreConfig{}, fmt.Errorf("load ore table: unknown block %q", ore.Replaces)
		}
		conf.Types = append(conf.Types, populate.OreType{
			Material:     material,
			Replaces:     replaces,
			ClusterCount: ore.ClusterCount,
			ClusterSize:  ore.ClusterSize,
			MinHeight:    ore.MinHeight,
			MaxHeight:    ore.MaxHeight,
		})
	}
	return conf, conf.Validate()
}

// LoadSettings reads generator settings from a TOML file. If the file does
// not exist it is created with the default settings.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		s := DefaultSettings()
		out, err := toml.Marshal(s)
		if err != nil {
			return Settings{}, fmt.Errorf("encode default settings: %w", err)
		}
		if err := os.WriteFile(path, out, 0644); err != nil {
			return Settings{}, fmt.Errorf("create settings file: %w", err)
		}
		return s, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("read settings file: %w", err)
	}
	var s Settings
	if err := toml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("decode settings file: %w", err)
	}
	return s.withDefaults(), nil
}
