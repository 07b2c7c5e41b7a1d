// Package pocketconf loads pocket type definitions from YAML.
//
// A document is checked against an embedded JSON Schema before it is decoded,
// then each type is resolved to a pocket.Config with its style built from the
// style registry.
package pocketconf

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/OCharnyshevich/undergroundbiome/pkg/pocket"
	"github.com/OCharnyshevich/undergroundbiome/pkg/pocket/style"
	"github.com/OCharnyshevich/undergroundbiome/pkg/world/gen"
)

//go:embed pockets.schema.json
var schemaJSON string

var (
	// ErrSchema wraps schema validation failures.
	ErrSchema = errors.New("pocket file does not match schema")
	// ErrUnknownBiome is returned for a biome name the generator does not know.
	ErrUnknownBiome = errors.New("unknown biome")
	// ErrDuplicateName is returned when two pocket types share a name.
	ErrDuplicateName = errors.New("duplicate pocket name")

	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// File is a decoded pocket definitions document.
type File struct {
	Pockets []Type `yaml:"pockets"`
}

// Type is one pocket type as written in YAML.
type Type struct {
	Name    string `yaml:"name"`
	Enabled *bool  `yaml:"enabled"`

	HorizontalSize      int `yaml:"horizontal_size"`
	HorizontalVariation int `yaml:"horizontal_variation"`
	VerticalSize        int `yaml:"vertical_size"`
	VerticalVariation   int `yaml:"vertical_variation"`
	MinY                int `yaml:"min_y"`
	MaxY                int `yaml:"max_y"`
	Rarity              int `yaml:"rarity"`

	Biomes        []string `yaml:"biomes"`
	ExcludeBiomes bool     `yaml:"exclude_biomes"`
	Dimensions    []string `yaml:"dimensions"`

	Style StyleRef `yaml:"style"`
}

// StyleRef names a registered style; every other key is passed to it.
type StyleRef struct {
	Name   string         `yaml:"name"`
	Params map[string]any `yaml:",inline"`
}

// LoadFile reads and parses a pocket definitions file.
func LoadFile(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pockets: %w", err)
	}
	f, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse validates raw against the schema and decodes it.
func Parse(raw []byte) (*File, error) {
	if err := validate(raw); err != nil {
		return nil, err
	}
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode pockets: %w", err)
	}
	return &f, nil
}

// Generators builds one generator per pocket type. global is the module
// switch; it is consulted on every placement together with the type's own
// enabled flag.
func (f *File) Generators(global func() bool) ([]*pocket.Generator, error) {
	if global == nil {
		global = func() bool { return true }
	}
	seen := make(map[string]bool, len(f.Pockets))
	out := make([]*pocket.Generator, 0, len(f.Pockets))
	for _, t := range f.Pockets {
		if seen[t.Name] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, t.Name)
		}
		seen[t.Name] = true

		cfg, err := t.Config()
		if err != nil {
			return nil, err
		}
		on := t.Enabled == nil || *t.Enabled
		out = append(out, pocket.NewGenerator(cfg, func() bool { return on && global() }))
	}
	return out, nil
}

// Config resolves biomes and style and validates the result.
func (t Type) Config() (*pocket.Config, error) {
	biomes := make([]gen.Biome, 0, len(t.Biomes))
	for _, name := range t.Biomes {
		b, ok := gen.BiomeByName(name)
		if !ok {
			return nil, fmt.Errorf("pocket %s: %w: %s", t.Name, ErrUnknownBiome, name)
		}
		biomes = append(biomes, b)
	}
	set := pocket.NewBiomeSet(biomes...)
	if t.ExcludeBiomes {
		set = pocket.ExcludeBiomes(biomes...)
	}

	s, err := style.New(t.Style.Name, style.Params(t.Style.Params))
	if err != nil {
		return nil, fmt.Errorf("pocket %s: %w", t.Name, err)
	}

	cfg := &pocket.Config{
		Name:                t.Name,
		HorizontalSize:      t.HorizontalSize,
		HorizontalVariation: t.HorizontalVariation,
		VerticalSize:        t.VerticalSize,
		VerticalVariation:   t.VerticalVariation,
		MinY:                t.MinY,
		MaxY:                t.MaxY,
		Rarity:              t.Rarity,
		Biomes:              set,
		Style:               s,
		Dimensions:          t.Dimensions,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(raw []byte) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse pockets: %w", err)
	}
	// The validator wants JSON values; round-trip keeps integers as json.Number.
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("parse pockets: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("parse pockets: %w", err)
	}

	s, err := compiledSchema()
	if err != nil {
		return err
	}
	if err := s.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", ErrSchema, err)
	}
	return nil
}

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString("pockets.schema.json", schemaJSON)
	})
	return schema, schemaErr
}
