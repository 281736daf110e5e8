package scene

import (
	"errors"
	"fmt"
	"strings"
)

var errEmptySelector = errors.New("empty selector")

// compound matches a single node: an optional tag (or *), an optional id and
// any number of classes, e.g. "button.btn-neon#cta".
type compound struct {
	tag     string
	id      string
	classes []string
}

func (c compound) matches(n *Node) bool {
	if c.tag != "" && c.tag != "*" && !strings.EqualFold(c.tag, n.Tag) {
		return false
	}
	if c.id != "" && c.id != n.ID {
		return false
	}
	for _, cls := range c.classes {
		if !n.HasClass(cls) {
			return false
		}
	}
	return true
}

// Selector is a parsed, comma-separated selector list. A node matches when
// any of its compounds matches. Combinators are not supported.
type Selector struct {
	src   string
	parts []compound
}

func (s Selector) String() string { return s.src }

// Matches reports whether n matches any compound of the list.
func (s Selector) Matches(n *Node) bool {
	for _, c := range s.parts {
		if c.matches(n) {
			return true
		}
	}
	return false
}

// ParseSelector parses a list such as "h1, h2, .gradient-text".
func ParseSelector(src string) (Selector, error) {
	if strings.TrimSpace(src) == "" {
		return Selector{}, errEmptySelector
	}
	sel := Selector{src: src}
	for _, raw := range strings.Split(src, ",") {
		c, err := parseCompound(strings.TrimSpace(raw))
		if err != nil {
			return Selector{}, fmt.Errorf("selector %q: %w", src, err)
		}
		sel.parts = append(sel.parts, c)
	}
	return sel, nil
}

func parseCompound(s string) (compound, error) {
	if s == "" {
		return compound{}, errEmptySelector
	}
	var c compound
	i := 0
	// leading tag or universal selector
	for i < len(s) && s[i] != '.' && s[i] != '#' {
		i++
	}
	c.tag = s[:i]
	if c.tag != "" && c.tag != "*" && !validIdent(c.tag) {
		return compound{}, fmt.Errorf("invalid tag %q", c.tag)
	}

	for i < len(s) {
		marker := s[i]
		j := i + 1
		for j < len(s) && s[j] != '.' && s[j] != '#' {
			j++
		}
		name := s[i+1 : j]
		if !validIdent(name) {
			return compound{}, fmt.Errorf("invalid name %q after %q", name, marker)
		}
		switch marker {
		case '.':
			c.classes = append(c.classes, name)
		case '#':
			if c.id != "" {
				return compound{}, fmt.Errorf("more than one id in %q", s)
			}
			c.id = name
		}
		i = j
	}
	return c, nil
}

func validIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r == '-' || (r >= '0' && r <= '9'):
			if i == 0 && r != '-' {
				return false
			}
		default:
			return false
		}
	}
	return true
}
