// Package style holds the built-in pocket styles and the registry that
// resolves them by name when pocket types are loaded.
package style

import (
	"errors"
	"fmt"
	"sort"

	"github.com/OCharnyshevich/undergroundbiome/pkg/pocket"
	"github.com/OCharnyshevich/undergroundbiome/pkg/world/gen"
)

// ErrUnknownStyle is returned by New for an unregistered style name.
var ErrUnknownStyle = errors.New("unknown style")

// Factory builds a style from its configuration parameters.
type Factory func(p Params) (pocket.Style, error)

var factories = map[string]Factory{}

func init() {
	Register("basic", newBasic)
	Register("crystal", newCrystal)
	Register("lava", newLava)
}

// Register makes a style available under name. A later registration replaces
// an earlier one.
func Register(name string, f Factory) {
	factories[name] = f
}

// New builds the named style.
func New(name string, p Params) (pocket.Style, error) {
	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStyle, name)
	}
	s, err := f(p)
	if err != nil {
		return nil, fmt.Errorf("style %s: %w", name, err)
	}
	return s, nil
}

// Names returns the registered style names in sorted order.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Params are the free-form style settings of a pocket type.
type Params map[string]any

// Block resolves the block named by key, or def when unset.
func (p Params) Block(key string, def uint16) (uint16, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	name, ok := v.(string)
	if !ok {
		return 0, fmt.Errorf("%s: want block name, got %T", key, v)
	}
	return gen.BlockByName(name)
}

// Float returns the number under key, or def when unset.
func (p Params) Float(key string, def float64) (float64, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	}
	return 0, fmt.Errorf("%s: want number, got %T", key, v)
}

// Int returns the integer under key, or def when unset.
func (p Params) Int(key string, def int) (int, error) {
	f, err := p.Float(key, float64(def))
	if err != nil {
		return 0, err
	}
	if f != float64(int(f)) {
		return 0, fmt.Errorf("%s: want integer, got %v", key, f)
	}
	return int(f), nil
}

// carvable reports whether a style may replace the block at pos.
// Unbreakable blocks and blocks open to the sky are kept.
func carvable(ctx *pocket.Context, pos gen.BlockPos) bool {
	return !gen.IsUnbreakable(ctx.World.Block(pos)) && !ctx.World.CanSeeSky(pos)
}
