// Package sprites provisions the visual assets of the runner.
// Game logic refers to sprites only through opaque IDs; this package maps
// those IDs to terminal glyphs and colours.
package sprites

import (
	_ "embed"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/dino-runner/internal/core"
)

// ID is an opaque visual handle.
type ID string

// Known sprite IDs.
const (
	DinoRun      ID = "dino-run"
	DinoJump     ID = "dino-jump"
	DinoDead     ID = "dino-dead"
	CactusSmall  ID = "cactus-small"
	CactusMedium ID = "cactus-medium"
	CactusLarge  ID = "cactus-large"
)

// PlaceholderFill is painted for sprites that could not be provisioned.
const PlaceholderFill = '?'

//go:embed sheet.yaml
var defaultSheetYAML []byte

// Sprite is the terminal rendition of one visual handle.
type Sprite struct {
	Fill  rune
	Color core.Color
	Art   []string
}

// Sheet resolves IDs to sprites.
type Sheet struct {
	sprites map[ID]Sprite
}

type sheetFile struct {
	Sprites map[string]spriteFile `yaml:"sprites"`
}

type spriteFile struct {
	Fill  string   `yaml:"fill"`
	Color string   `yaml:"color"`
	Art   []string `yaml:"art"`
}

// Placeholder returns a sheet with no sprites; every ID resolves to the placeholder.
func Placeholder() Sheet {
	return Sheet{sprites: map[ID]Sprite{}}
}

// PlaceholderSprite is drawn for unknown IDs.
func PlaceholderSprite() Sprite {
	return Sprite{Fill: PlaceholderFill, Color: core.ColorMagenta}
}

// Default returns the embedded sheet.
func Default() Sheet {
	sheet, err := Parse(defaultSheetYAML)
	if err != nil {
		return Placeholder()
	}
	return sheet
}

// Load reads a sheet from a YAML file.
func Load(path string) (Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Sheet{}, fmt.Errorf("sprites: failed to read %s: %w", path, err)
	}
	sheet, err := Parse(data)
	if err != nil {
		return Sheet{}, fmt.Errorf("sprites: failed to load %s: %w", path, err)
	}
	return sheet, nil
}

// LoadOrPlaceholder returns the embedded sheet when path is empty and the
// file's sheet otherwise. On failure it returns the placeholder sheet together
// with the error so the caller can report it and keep running.
func LoadOrPlaceholder(path string) (Sheet, error) {
	if path == "" {
		return Default(), nil
	}
	sheet, err := Load(path)
	if err != nil {
		return Placeholder(), err
	}
	return sheet, nil
}

// Parse decodes a sheet from YAML.
func Parse(data []byte) (Sheet, error) {
	var f sheetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Sheet{}, fmt.Errorf("sprites: parse: %w", err)
	}

	sheet := Sheet{sprites: make(map[ID]Sprite, len(f.Sprites))}
	for name, sf := range f.Sprites {
		if utf8.RuneCountInString(sf.Fill) != 1 {
			return Sheet{}, fmt.Errorf("sprites: %s: fill must be a single character, got %q", name, sf.Fill)
		}
		fill, _ := utf8.DecodeRuneInString(sf.Fill)
		color, err := core.ParseColor(sf.Color)
		if err != nil {
			return Sheet{}, fmt.Errorf("sprites: %s: %w", name, err)
		}
		sheet.sprites[ID(name)] = Sprite{Fill: fill, Color: color, Art: sf.Art}
	}
	return sheet, nil
}

// Sprite returns the sprite for id, or the placeholder if the sheet lacks it.
func (s Sheet) Sprite(id ID) Sprite {
	if sp, ok := s.sprites[id]; ok {
		return sp
	}
	return PlaceholderSprite()
}

// Has reports whether the sheet defines id.
func (s Sheet) Has(id ID) bool {
	_, ok := s.sprites[id]
	return ok
}

// Len returns the number of defined sprites.
func (s Sheet) Len() int {
	return len(s.sprites)
}
