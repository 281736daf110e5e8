package scene

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/cursor-light/internal/proximity"
)

// File is the YAML description of a scene.
type File struct {
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Nodes  []NodeSpec `yaml:"nodes"`
}

// NodeSpec describes one node. Class is a space-separated list, as in HTML.
type NodeSpec struct {
	Tag      string     `yaml:"tag"`
	ID       string     `yaml:"id"`
	Class    string     `yaml:"class"`
	Text     string     `yaml:"text"`
	Rect     RectSpec   `yaml:"rect"`
	Children []NodeSpec `yaml:"children"`
}

// RectSpec is a layout box in viewport pixels.
type RectSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// LoadFile reads and builds a scene from a YAML file.
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file %s: %w", path, err)
	}
	s, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Load builds a scene from YAML data.
func Load(data []byte) (*Scene, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse scene YAML: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}

	s := New(f.Width, f.Height)
	for _, spec := range f.Nodes {
		s.build(nil, spec)
	}
	return s, nil
}

func (s *Scene) build(parent *Node, spec NodeSpec) {
	n := &Node{
		Tag:     spec.Tag,
		ID:      spec.ID,
		Classes: strings.Fields(spec.Class),
		Text:    spec.Text,
		Rect:    proximity.Rect{X: spec.Rect.X, Y: spec.Rect.Y, W: spec.Rect.W, H: spec.Rect.H},
	}
	s.Add(parent, n)
	for _, c := range spec.Children {
		s.build(n, c)
	}
}

func (f *File) validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("viewport %vx%v must be positive", f.Width, f.Height)
	}
	if len(f.Nodes) == 0 {
		return errors.New("no nodes")
	}
	ids := make(map[string]bool)
	var check func(path string, specs []NodeSpec) error
	check = func(path string, specs []NodeSpec) error {
		for i, n := range specs {
			where := fmt.Sprintf("%s[%d]", path, i)
			if n.Tag == "" {
				return fmt.Errorf("%s: tag is required", where)
			}
			if n.Rect.W < 0 || n.Rect.H < 0 {
				return fmt.Errorf("%s: negative size %vx%v", where, n.Rect.W, n.Rect.H)
			}
			if n.ID != "" {
				if ids[n.ID] {
					return fmt.Errorf("%s: duplicate id %q", where, n.ID)
				}
				ids[n.ID] = true
			}
			if err := check(where+".children", n.Children); err != nil {
				return err
			}
		}
		return nil
	}
	return check("nodes", f.Nodes)
}
