// Package config loads named move-set presets and server defaults from a
// YAML file, overridable by CLI flags.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mbrt/algfinder/internal/cube"
)

// ServerConfig holds the HTTP/WebSocket server defaults.
type ServerConfig struct {
	Address          string `yaml:"address"`
	ResultBufferSize int    `yaml:"result_buffer_size"`
}

// Config is the top-level shape of a config file: named move presets plus
// server defaults.
type Config struct {
	Presets map[string][]string `yaml:"presets"`
	Server  ServerConfig        `yaml:"server"`
}

// Default returns the built-in configuration used when no file is loaded:
// the full 21-move set, a "no-slice" preset excluding M moves (useful when
// a solver wants to stay to outer-layer turns), an "outer-turns" preset with
// the same moves as "no-slice", and a "last-layer" preset restricted to the
// U, R and F turns.
func Default() Config {
	return Config{
		Presets: map[string][]string{
			"full":        moveNames(cube.AllMoves),
			"no-slice":    moveNames(withoutClass(cube.AllMoves, cube.ClassM)),
			"last-layer":  {"U", "U'", "U2", "R", "R'", "R2", "F", "F'", "F2"},
			"outer-turns": moveNames(withoutClass(cube.AllMoves, cube.ClassM)),
		},
		Server: ServerConfig{
			Address:          ":8080",
			ResultBufferSize: 256,
		},
	}
}

func withoutClass(moves []cube.Move, excluded cube.MoveClass) []cube.Move {
	var out []cube.Move
	for _, m := range moves {
		if m.Class() != excluded {
			out = append(out, m)
		}
	}
	return out
}

func moveNames(moves []cube.Move) []string {
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.String()
	}
	return names
}

// Load reads a YAML config file from path and merges it over Default():
// presets and server fields present in the file override the defaults,
// everything else keeps its default value.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	for name, moves := range file.Presets {
		cfg.Presets[name] = moves
	}
	if file.Server.Address != "" {
		cfg.Server.Address = file.Server.Address
	}
	if file.Server.ResultBufferSize != 0 {
		cfg.Server.ResultBufferSize = file.Server.ResultBufferSize
	}

	return cfg, nil
}

// ResolvePreset parses a named preset into the move slice the search
// engine expects.
func (c Config) ResolvePreset(name string) ([]cube.Move, error) {
	names, ok := c.Presets[name]
	if !ok {
		return nil, fmt.Errorf("config: unknown preset %q", name)
	}
	moves := make([]cube.Move, 0, len(names))
	for _, n := range names {
		m, err := cube.ParseMove(n)
		if err != nil {
			return nil, fmt.Errorf("config: preset %q: %w", name, err)
		}
		moves = append(moves, m)
	}
	return moves, nil
}
