// Package config loads renderer defaults from a TOML file:
//
//	size = 50
//	scale = 2
//	output = "palette.png"
//	display = false
//	font = "/usr/share/fonts/truetype/RobotoMono.ttf"
//
// All keys are optional.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/BeatGlow/swatch"
)

// Errors
var (
	ErrUnknownKey = errors.New("config: unknown key")
	ErrInvalid    = errors.New("config: invalid value")
)

// File holds the keys set in a config file, unset keys are nil.
type File struct {
	Size    *int    `toml:"size"`
	Scale   *int    `toml:"scale"`
	Output  *string `toml:"output"`
	Display *bool   `toml:"display"`
	Font    *string `toml:"font"`
}

// Load reads the named config file.
func Load(name string) (*File, error) {
	var f File
	md, err := toml.DecodeFile(name, &f)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", name, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, fmt.Errorf("%w in %s: %s", ErrUnknownKey, name, strings.Join(keys, ", "))
	}
	if err = f.validate(); err != nil {
		return nil, fmt.Errorf("%w in %s: %v", ErrInvalid, name, err)
	}
	return &f, nil
}

// Decode parses a config from TOML text.
func Decode(data string) (*File, error) {
	var f File
	md, err := toml.Decode(data, &f)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, undecoded[0])
	}
	if err = f.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return &f, nil
}

func (f *File) validate() error {
	if f.Size != nil && *f.Size <= 0 {
		return fmt.Errorf("size must be positive, got %d", *f.Size)
	}
	if f.Scale != nil && *f.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", *f.Scale)
	}
	return nil
}

// Apply copies the keys set in f into config.
func (f *File) Apply(config *swatch.Config) {
	if f.Size != nil {
		config.SwatchSize = *f.Size
	}
	if f.Scale != nil {
		config.Scale = *f.Scale
	}
	if f.Output != nil {
		config.Output = *f.Output
	}
	if f.Display != nil {
		config.Display = *f.Display
	}
	if f.Font != nil {
		config.Font = *f.Font
	}
}
