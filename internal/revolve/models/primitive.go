package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ============================================================
// Geometry primitives
// ============================================================

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Op string

const (
	MoveTo Op = "M"
	LineTo Op = "L"
	ArcTo  Op = "A"
	Close  Op = "Z"
)

// PathCommand одна команда контура. RX/RY/флаги заполняются только для ArcTo.
type PathCommand struct {
	Op       Op      `json:"op"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	RX       float64 `json:"rx,omitempty"`
	RY       float64 `json:"ry,omitempty"`
	LargeArc bool    `json:"large_arc,omitempty"`
	Sweep    bool    `json:"sweep,omitempty"`
}

// Primitive результат проектора: Outline или Ellipse.
type Primitive interface {
	FillID() string
	Translation() Point
	primitive()
}

// Outline замкнутый контур с заливкой градиентом.
type Outline struct {
	Fill   string        `json:"fill"`
	Offset Point         `json:"offset"`
	Path   []PathCommand `json:"path"`
}

// Ellipse крышка со сплошной заливкой.
type Ellipse struct {
	Fill   string  `json:"fill"`
	Offset Point   `json:"offset"`
	Center Point   `json:"center"`
	RX     float64 `json:"rx"`
	RY     float64 `json:"ry"`
}

func (o Outline) FillID() string     { return o.Fill }
func (o Outline) Translation() Point { return o.Offset }
func (Outline) primitive()           {}
func (e Ellipse) FillID() string     { return e.Fill }
func (e Ellipse) Translation() Point { return e.Offset }
func (Ellipse) primitive()           {}

// D собирает SVG path data.
func (o Outline) D() string {
	var b strings.Builder
	for i, cmd := range o.Path {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(string(cmd.Op))
		switch cmd.Op {
		case MoveTo, LineTo:
			b.WriteString(FormatFloat(cmd.X))
			b.WriteByte(',')
			b.WriteString(FormatFloat(cmd.Y))
		case ArcTo:
			b.WriteString(FormatFloat(cmd.RX))
			b.WriteByte(',')
			b.WriteString(FormatFloat(cmd.RY))
			b.WriteString(",0,")
			b.WriteString(flag(cmd.LargeArc))
			b.WriteByte(',')
			b.WriteString(flag(cmd.Sweep))
			b.WriteByte(',')
			b.WriteString(FormatFloat(cmd.X))
			b.WriteByte(',')
			b.WriteString(FormatFloat(cmd.Y))
		}
	}
	return b.String()
}

func (o Outline) MarshalJSON() ([]byte, error) {
	type plain Outline
	return json.Marshal(struct {
		Kind string `json:"kind"`
		plain
		D string `json:"d"`
	}{"outline", plain(o), o.D()})
}

func (e Ellipse) MarshalJSON() ([]byte, error) {
	type plain Ellipse
	return json.Marshal(struct {
		Kind string `json:"kind"`
		plain
	}{"ellipse", plain(e)})
}

// ============================================================
// Formatting helpers
// ============================================================

// FormatFloat печатает число с точностью до 1e-4 без хвостовых нулей.
func FormatFloat(val float64) string {
	s := strconv.FormatFloat(val, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
