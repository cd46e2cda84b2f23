package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml timelines/*.yaml
var LevelsFS embed.FS

// Dir is the disk directory whose files shadow the embedded copies.
var Dir = "levels"

var ErrInvalidLevel = errors.New("levels: invalid level")

// Vec2 is a point on the vertical X/Z slice.
type Vec2 struct {
	X float64 `yaml:"x"`
	Z float64 `yaml:"z"`
}

// Level is the collision layout a character runs in. Coordinates are world
// units on the X/Z plane, Z up.
type Level struct {
	Name     string    `yaml:"name"`
	Spawn    Vec2      `yaml:"spawn"`
	KillZ    float64   `yaml:"kill_z"`
	Boxes    []Box     `yaml:"boxes"`
	Segments []Segment `yaml:"segments"`
	Triggers []Trigger `yaml:"triggers"`
	Enemies  []Enemy   `yaml:"enemies"`
}

// Box is a static solid centered on its position.
type Box struct {
	Center Vec2    `yaml:"center"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Segment is a static line, used for slopes and thin ledges.
type Segment struct {
	A      Vec2    `yaml:"a"`
	B      Vec2    `yaml:"b"`
	Radius float64 `yaml:"radius"`
}

// Trigger is a query-only volume. Updrafts boost a gliding character.
type Trigger struct {
	Name   string  `yaml:"name"`
	Kind   string  `yaml:"kind"`
	Center Vec2    `yaml:"center"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Boost  Vec2    `yaml:"boost"`
}

const (
	TriggerUpdraft = "updraft"
	TriggerCheer   = "cheer"
	TriggerDamage  = "damage"
)

// Enemy is a defeatable target.
type Enemy struct {
	Name     string  `yaml:"name"`
	Position Vec2    `yaml:"position"`
	Radius   float64 `yaml:"radius"`
	Damage   float64 `yaml:"damage"`
}

// Load reads a level or timeline file, preferring the disk copy under Dir.
func Load(name string) ([]byte, error) {
	clean := cleanLevelPath(name)
	if data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return fs.ReadFile(LevelsFS, clean)
}

func LoadLevel(name string) (*Level, error) {
	data, err := Load(name)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", name, err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("levels: %s: %w", name, err)
	}
	return &lvl, nil
}

// Validate rejects degenerate geometry.
func (l *Level) Validate() error {
	var errs []error
	for i, b := range l.Boxes {
		if b.Width <= 0 || b.Height <= 0 {
			errs = append(errs, fmt.Errorf("box %d has no area", i))
		}
	}
	for i, s := range l.Segments {
		if s.A == s.B {
			errs = append(errs, fmt.Errorf("segment %d has no length", i))
		}
	}
	for i, t := range l.Triggers {
		if t.Width <= 0 || t.Height <= 0 {
			errs = append(errs, fmt.Errorf("trigger %q (%d) has no area", t.Name, i))
		}
	}
	for i, e := range l.Enemies {
		if e.Radius <= 0 {
			errs = append(errs, fmt.Errorf("enemy %q (%d) needs a radius", e.Name, i))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidLevel, errors.Join(errs...))
}

func cleanLevelPath(path string) string {
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "levels/"); ok {
		return after
	}
	return s
}
