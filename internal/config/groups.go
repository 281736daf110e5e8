package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/cursor-light/internal/proximity"
	"github.com/iburimskiy/cursor-light/internal/scene"
)

// GroupsFile is the YAML form of the group table.
type GroupsFile struct {
	Groups []GroupSpec `yaml:"groups"`
}

// GroupSpec describes one group.
type GroupSpec struct {
	Name       string  `yaml:"name"`
	Selector   string  `yaml:"selector"`
	Radius     float64 `yaml:"radius"`
	MaxOffset  float64 `yaml:"maxOffset"`
	Multiplier float64 `yaml:"multiplier"` // optional, defaults to 1
	Effect     string  `yaml:"effect"`     // box-shadow, magnetic or text-shadow
	Blur       float64 `yaml:"blur"`
	Color      string  `yaml:"color"` // #rrggbb, defaults to black
	Alpha      float64 `yaml:"alpha"`
	ScaleAlpha bool    `yaml:"scaleAlpha"`
	Ring       float64 `yaml:"ring"`
	Pull       float64 `yaml:"pull"`
}

// LoadGroupsFile reads a group table from a YAML file.
func LoadGroupsFile(path string) ([]proximity.Group, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read groups file %s: %w", path, err)
	}
	groups, err := LoadGroups(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return groups, nil
}

// LoadGroups parses and validates a group table.
func LoadGroups(data []byte) ([]proximity.Group, error) {
	var f GroupsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse groups YAML: %w", err)
	}
	if len(f.Groups) == 0 {
		return nil, errors.New("no groups defined")
	}

	seen := make(map[string]bool)
	groups := make([]proximity.Group, 0, len(f.Groups))
	for i, spec := range f.Groups {
		applyDefaults(&spec)
		g, err := spec.build()
		if err != nil {
			return nil, fmt.Errorf("invalid group %d (%q): %w", i, spec.Name, err)
		}
		if seen[g.Name] {
			return nil, fmt.Errorf("duplicate group name %q", g.Name)
		}
		seen[g.Name] = true
		groups = append(groups, g)
	}
	return groups, nil
}

func applyDefaults(spec *GroupSpec) {
	if spec.Multiplier == 0 {
		spec.Multiplier = 1
	}
	if spec.Color == "" {
		spec.Color = "#000000"
	}
}

func (s GroupSpec) build() (proximity.Group, error) {
	if s.Name == "" {
		return proximity.Group{}, errors.New("name is required")
	}
	if _, err := scene.ParseSelector(s.Selector); err != nil {
		return proximity.Group{}, err
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"radius", s.Radius},
		{"maxOffset", s.MaxOffset},
		{"multiplier", s.Multiplier},
		{"blur", s.Blur},
		{"alpha", s.Alpha},
		{"ring", s.Ring},
		{"pull", s.Pull},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return proximity.Group{}, fmt.Errorf("%s %v must be finite", f.name, f.v)
		}
	}
	if s.Radius <= 0 {
		return proximity.Group{}, fmt.Errorf("radius %v must be positive", s.Radius)
	}
	if s.MaxOffset < 0 {
		return proximity.Group{}, fmt.Errorf("maxOffset %v must not be negative", s.MaxOffset)
	}
	if s.Multiplier < 0 {
		return proximity.Group{}, fmt.Errorf("multiplier %v must not be negative", s.Multiplier)
	}
	if s.Blur < 0 {
		return proximity.Group{}, fmt.Errorf("blur %v must not be negative", s.Blur)
	}
	for name, v := range map[string]float64{"alpha": s.Alpha, "ring": s.Ring} {
		if v < 0 || v > 1 {
			return proximity.Group{}, fmt.Errorf("%s %v outside [0, 1]", name, v)
		}
	}
	kind, err := proximity.ParseEffectKind(s.Effect)
	if err != nil {
		return proximity.Group{}, err
	}
	tint, err := ParseHexColor(s.Color)
	if err != nil {
		return proximity.Group{}, err
	}

	return proximity.Group{
		Name:       s.Name,
		Selector:   s.Selector,
		Radius:     s.Radius,
		MaxOffset:  s.MaxOffset,
		Multiplier: s.Multiplier,
		Effect: proximity.Effect{
			Kind:       kind,
			Blur:       s.Blur,
			Tint:       tint,
			Alpha:      s.Alpha,
			ScaleAlpha: s.ScaleAlpha,
			Ring:       s.Ring,
			Pull:       s.Pull,
		},
	}, nil
}

// ParseHexColor parses "#rrggbb" (the leading # is optional) into an opaque
// colour.
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("colour %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("colour %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
