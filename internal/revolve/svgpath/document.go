package svgpath

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

var ErrDanglingFill = errors.New("fill references undeclared gradient")

// ============================================================
// XML Structures
// ============================================================

type Document struct {
	XMLName   xml.Name   `xml:"svg"`
	Width     float64    `xml:"width,attr"`
	Height    float64    `xml:"height,attr"`
	Gradients []Gradient `xml:"defs>linearGradient"`
	Groups    []Group    `xml:"g"`
	Texts     []Text     `xml:"text"`
}

type Gradient struct {
	ID    string `xml:"id,attr"`
	Stops []Stop `xml:"stop"`
}

type Stop struct {
	Offset string `xml:"offset,attr"`
	Style  string `xml:"style,attr"`
}

type Group struct {
	Transform string    `xml:"transform,attr"`
	Paths     []Path    `xml:"path"`
	Ellipses  []Ellipse `xml:"ellipse"`
}

type Path struct {
	D         string `xml:"d,attr"`
	Transform string `xml:"transform,attr"`
	Style     string `xml:"style,attr"`
}

type Ellipse struct {
	RX        float64 `xml:"rx,attr"`
	RY        float64 `xml:"ry,attr"`
	Transform string  `xml:"transform,attr"`
	Style     string  `xml:"style,attr"`
}

type Text struct {
	Value string `xml:",chardata"`
}

// ============================================================
// Parser
// ============================================================

// ParseDocument читает svg-документ рендера.
func ParseDocument(r io.Reader) (*Document, error) {
	var doc Document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode svg: %w", err)
	}
	return &doc, nil
}

// Fills собирает ссылки url(#id) из стилей всех фигур.
func (d *Document) Fills() []string {
	var out []string
	for _, g := range d.Groups {
		for _, p := range g.Paths {
			out = append(out, fillRef(p.Style))
		}
		for _, e := range g.Ellipses {
			out = append(out, fillRef(e.Style))
		}
	}
	return out
}

// Verify проверяет, что каждая заливка ссылается на объявленный градиент.
func (d *Document) Verify() error {
	declared := make(map[string]bool, len(d.Gradients))
	for _, g := range d.Gradients {
		declared[g.ID] = true
	}
	for _, id := range d.Fills() {
		if !declared[id] {
			return fmt.Errorf("%q: %w", id, ErrDanglingFill)
		}
	}
	return nil
}

func fillRef(style string) string {
	var id string
	if _, err := fmt.Sscanf(style, "fill:url(#%s", &id); err != nil {
		return ""
	}
	if n := len(id); n > 0 && id[n-1] == ')' {
		id = id[:n-1]
	}
	return id
}
