package levels

import (
	"errors"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// Timeline is a scripted input run used by the simulator.
type Timeline struct {
	Name      string  `yaml:"name"`
	Character string  `yaml:"character"`
	Level     string  `yaml:"level"`
	Step      float64 `yaml:"step"`
	Duration  float64 `yaml:"duration"`
	Glide     bool    `yaml:"glide_unlocked"`
	Steps     []Cue   `yaml:"steps"`
}

// Cue is one scripted action at time At. Only the set fields apply.
type Cue struct {
	At       float64     `yaml:"at"`
	Press    string      `yaml:"press"`
	Release  string      `yaml:"release"`
	Move     *[2]float64 `yaml:"move"`
	Look     *[2]float64 `yaml:"look"`
	Damage   float64     `yaml:"damage"`
	Teleport *[3]float64 `yaml:"teleport"`
	Host     string      `yaml:"host"`
}

const defaultStep = 1.0 / 60

var ErrInvalidTimeline = errors.New("levels: invalid timeline")

func LoadTimeline(name string) (*Timeline, error) {
	data, err := Load(name)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	var tl Timeline
	if err := yaml.Unmarshal(data, &tl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", name, err)
	}
	if tl.Step <= 0 {
		tl.Step = defaultStep
	}
	if tl.Duration <= 0 {
		return nil, fmt.Errorf("%w: %s needs a positive duration", ErrInvalidTimeline, name)
	}
	slices.SortStableFunc(tl.Steps, func(a, b Cue) int {
		switch {
		case a.At < b.At:
			return -1
		case a.At > b.At:
			return 1
		}
		return 0
	})
	return &tl, nil
}

// Due returns the cues with At in [from, to).
func (t *Timeline) Due(from, to float64) []Cue {
	if t == nil {
		return nil
	}
	var out []Cue
	for _, c := range t.Steps {
		if c.At >= from && c.At < to {
			out = append(out, c)
		}
	}
	return out
}
