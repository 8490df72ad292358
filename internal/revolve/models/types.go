package models

import (
	"errors"
	"fmt"
	"math"
	"regexp"
)

// ============================================================
// Errors
// ============================================================

var (
	ErrNoSegments      = errors.New("object has no segments")
	ErrInvalidSegment  = errors.New("invalid segment")
	ErrInvalidMaterial = errors.New("invalid material")
	ErrUnknownMaterial = errors.New("unknown material")
	ErrInvalidAngle    = errors.New("angle must be in [0, pi/2)")
)

// materialIDPattern идентификатор материала попадает в id="..." и url(#...).
var materialIDPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.-]*$`)

// ============================================================
// Materials & geometry
// ============================================================

// Color базовый цвет материала, каналы в [0,1].
type Color struct {
	R float64 `json:"r" yaml:"r"`
	G float64 `json:"g" yaml:"g"`
	B float64 `json:"b" yaml:"b"`
}

type Material struct {
	ID    string  `json:"id"`
	Color Color   `json:"color"`
	Gloss float64 `json:"gloss"` // 0 - матовый, 1 - максимально глянцевый
}

// Segment кольцо профиля: радиус верхней кромки, радиус нижней кромки и высота, в мм.
type Segment struct {
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
	Height   float64 `json:"height"`
	Material string  `json:"material"`
}

// Object тело вращения: материалы и упорядоченный профиль.
// Первый сегмент рисуется верхним.
type Object struct {
	Name      string              `json:"name"`
	Materials map[string]Material `json:"materials"`
	Segments  []Segment           `json:"segments"`
	Weight    float64             `json:"weight,omitempty"` // граммы, только для подписи
}

// MaxRadius возвращает наибольший радиус профиля (половина ширины рамки).
func (o Object) MaxRadius() float64 {
	var r float64
	for _, s := range o.Segments {
		r = math.Max(r, math.Max(s.Start, s.End))
	}
	return r
}

// Validate проверяет инварианты объекта.
func (o Object) Validate() error {
	if len(o.Segments) == 0 {
		return fmt.Errorf("%q: %w", o.Name, ErrNoSegments)
	}

	for id, m := range o.Materials {
		if !materialIDPattern.MatchString(id) {
			return fmt.Errorf("%q: material id %q: %w", o.Name, id, ErrInvalidMaterial)
		}
		if err := m.validate(); err != nil {
			return fmt.Errorf("%q: material %q: %w", o.Name, id, err)
		}
	}

	for i, s := range o.Segments {
		if !(s.Height > 0) || math.IsInf(s.Height, 1) {
			return fmt.Errorf("%q: segment %d: height %v: %w", o.Name, i, s.Height, ErrInvalidSegment)
		}
		if !finite(s.Start) || !finite(s.End) || s.Start < 0 || s.End < 0 {
			return fmt.Errorf("%q: segment %d: radius %v..%v: %w", o.Name, i, s.Start, s.End, ErrInvalidSegment)
		}
		if _, ok := o.Materials[s.Material]; !ok {
			return fmt.Errorf("%q: segment %d: %q: %w", o.Name, i, s.Material, ErrUnknownMaterial)
		}
	}
	return nil
}

func (m Material) validate() error {
	for _, v := range []float64{m.Color.R, m.Color.G, m.Color.B, m.Gloss} {
		if v < 0 || v > 1 || math.IsNaN(v) {
			return ErrInvalidMaterial
		}
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// ValidateAngle проверяет, что угол наклона лежит в [0, π/2).
func ValidateAngle(angle float64) error {
	if angle < 0 || angle >= math.Pi/2 || math.IsNaN(angle) {
		return fmt.Errorf("%v: %w", angle, ErrInvalidAngle)
	}
	return nil
}
