// SPDX-License-Identifier: Unlicense OR MIT

/*
Package doc decodes layout documents.

A document describes a tree of flex containers and their children in
TOML or YAML. Lengths are numbers with an optional unit, "12dp",
"4sp" or "10px"; numbers without a unit are in dp. Spacing takes one to
four lengths in the order top, end, bottom, start, with missing edges
copied from the opposite edge.

	direction = "row"
	wrap = "wrap"
	padding = "8dp"

	[[children]]
	name = "title"
	text = "Hello"
	text_size = "16sp"

	[[children]]
	content = "40dp 40dp"
	grow = 1
*/
package doc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Node is a document node: a flex container, a text label or a box.
type Node struct {
	Name string `toml:"name,omitempty" yaml:"name,omitempty"`
	// Kind is "flex", "label" or "box". An empty Kind is derived
	// from the other fields.
	Kind string `toml:"kind,omitempty" yaml:"kind,omitempty"`

	Direction      string `toml:"direction,omitempty" yaml:"direction,omitempty"`
	Wrap           string `toml:"wrap,omitempty" yaml:"wrap,omitempty"`
	JustifyContent string `toml:"justify_content,omitempty" yaml:"justify_content,omitempty"`
	AlignItems     string `toml:"align_items,omitempty" yaml:"align_items,omitempty"`
	AlignContent   string `toml:"align_content,omitempty" yaml:"align_content,omitempty"`
	Padding        string `toml:"padding,omitempty" yaml:"padding,omitempty"`
	MaxLines       int    `toml:"max_lines,omitempty" yaml:"max_lines,omitempty"`
	Children       []Node `toml:"children,omitempty" yaml:"children,omitempty"`

	Text     string `toml:"text,omitempty" yaml:"text,omitempty"`
	Font     string `toml:"font,omitempty" yaml:"font,omitempty"`
	TextSize string `toml:"text_size,omitempty" yaml:"text_size,omitempty"`
	// Content is the width and height of a box sized by content.
	Content string `toml:"content,omitempty" yaml:"content,omitempty"`

	// Width and Height are "wrap", "match" or a length.
	Width      string   `toml:"width,omitempty" yaml:"width,omitempty"`
	Height     string   `toml:"height,omitempty" yaml:"height,omitempty"`
	MinWidth   string   `toml:"min_width,omitempty" yaml:"min_width,omitempty"`
	MinHeight  string   `toml:"min_height,omitempty" yaml:"min_height,omitempty"`
	MaxWidth   string   `toml:"max_width,omitempty" yaml:"max_width,omitempty"`
	MaxHeight  string   `toml:"max_height,omitempty" yaml:"max_height,omitempty"`
	Grow       *float32 `toml:"grow,omitempty" yaml:"grow,omitempty"`
	Shrink     *float32 `toml:"shrink,omitempty" yaml:"shrink,omitempty"`
	Basis      *float32 `toml:"basis,omitempty" yaml:"basis,omitempty"`
	Order      *int     `toml:"order,omitempty" yaml:"order,omitempty"`
	AlignSelf  string   `toml:"align_self,omitempty" yaml:"align_self,omitempty"`
	WrapBefore bool     `toml:"wrap_before,omitempty" yaml:"wrap_before,omitempty"`
	Hidden     bool     `toml:"hidden,omitempty" yaml:"hidden,omitempty"`
	Margin     string   `toml:"margin,omitempty" yaml:"margin,omitempty"`
}

// Format is the encoding of a document.
type Format uint8

const (
	TOML Format = iota
	YAML
)

var (
	// ErrUnknownFormat is returned for documents of an unknown
	// encoding.
	ErrUnknownFormat = errors.New("doc: unknown document format")
	// ErrInvalid is wrapped by errors describing invalid node
	// properties.
	ErrInvalid = errors.New("invalid property")
)

// FormatFor returns the Format of a file from its extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
}

// ParseFormat returns the Format named s.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "toml":
		return TOML, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// Load reads and decodes the document at path.
func Load(path string) (*Node, error) {
	f, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	n, err := Decode(bytes.NewReader(data), f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}

// Decode decodes a document. Unknown fields are errors.
func Decode(r io.Reader, f Format) (*Node, error) {
	n := new(Node)
	switch f {
	case TOML:
		d := toml.NewDecoder(r)
		d.DisallowUnknownFields()
		if err := d.Decode(n); err != nil {
			return nil, fmt.Errorf("toml: %w", err)
		}
	case YAML:
		d := yaml.NewDecoder(r)
		d.KnownFields(true)
		if err := d.Decode(n); err != nil {
			return nil, fmt.Errorf("yaml: %w", err)
		}
	default:
		return nil, ErrUnknownFormat
	}
	return n, nil
}

// Encode writes n in format f.
func Encode(w io.Writer, n *Node, f Format) error {
	switch f {
	case TOML:
		return toml.NewEncoder(w).Encode(n)
	case YAML:
		e := yaml.NewEncoder(w)
		e.SetIndent(2)
		if err := e.Encode(n); err != nil {
			return err
		}
		return e.Close()
	default:
		return ErrUnknownFormat
	}
}

func (f Format) String() string {
	switch f {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	default:
		panic("unreachable")
	}
}
