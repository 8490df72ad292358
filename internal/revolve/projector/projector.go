package projector

import (
	"math"

	"cylinders/internal/revolve/models"
	"cylinders/internal/revolve/shading"
)

// ============================================================
// Result
// ============================================================

// Result примитивы одного объекта и размеры их рамки.
type Result struct {
	Key        string             `json:"key"`
	Primitives []models.Primitive `json:"primitives"`
	Gradients  []models.Gradient  `json:"gradients"`
	Height     float64            `json:"height"`
	Width      float64            `json:"width"`
}

// ============================================================
// Revolve Projector
// ============================================================

// Project строит силуэт тела вращения, наклонённого на angle радиан.
// При angle == 0 результат целиком отдаётся плоскому рендеру.
func Project(o models.Object, angle float64, opts ...Option) Result {
	cfg := newOptions(opts)
	key := cfg.key
	if key == "" {
		key = shading.NamespaceKey(o, angle)
	}

	if angle == 0 {
		return Flat(o, key)
	}

	e := math.Pi/2 - angle
	p := projection{
		cosE:    math.Cos(e),
		sinE:    math.Sin(e),
		hOffset: o.MaxRadius(),
		key:     key,
		opts:    cfg,
	}

	total := p.hOffset * p.cosE
	for _, s := range o.Segments {
		total += s.Height * p.sinE
	}

	st := state{v: total}
	var prims []models.Primitive
	for i := len(o.Segments) - 1; i >= 0; i-- {
		var out []models.Primitive
		st, out = p.step(st, o.Segments[i])
		prims = append(prims, out...)
	}
	if st.pending != nil {
		prims = append(prims, *st.pending)
	}

	return Result{
		Key:        key,
		Primitives: prims,
		Gradients:  shading.Generate(o.Materials, key, shading.TiltCenter(angle)),
		Height:     total + p.hOffset*p.cosE,
		Width:      2 * p.hOffset,
	}
}

// state переносится между сегментами: текущее смещение и отложенная крышка.
type state struct {
	v             float64
	pending       *models.Ellipse
	pendingRadius float64
}

type projection struct {
	cosE, sinE float64
	hOffset    float64
	key        string
	opts       options
}

// step обрабатывает один сегмент снизу вверх по изображению.
func (p projection) step(st state, s models.Segment) (state, []models.Primitive) {
	r1, r2, h := s.Start, s.End, s.Height
	st.v -= h * p.sinE

	// проверка стыка идёт до проверки вырожденности: вырожденный сегмент
	// тоже закрывает отложенную крышку, если его дальняя кромка не совпадает
	var out []models.Primitive
	if st.pending != nil && p.opts.needsSeal(st.pendingRadius, r2) {
		out = append(out, *st.pending)
	}

	hypot := h * p.sinE / p.cosE
	if !p.opts.degenerate(hypot, r2-r1) {
		out = append(out, p.outline(s, st.v, hypot))
	}

	near := p.rim(s.Material, r1, st.v)
	st.pending = &near
	st.pendingRadius = r1
	return st, out
}

// outline видимый контур стенки усечённого конуса: две образующие,
// передняя дуга дальней кромки и задняя дуга ближней.
func (p projection) outline(s models.Segment, v, hypot float64) models.Outline {
	r1, r2 := s.Start, s.End
	ry1, ry2 := p.cosE*r1, p.cosE*r2

	sinT := (r2 - r1) / hypot
	cosT := math.Sqrt(1 - sinT*sinT)

	x1 := r1 * cosT
	y1 := -r1 * sinT * p.cosE
	x2 := r2 * cosT
	y2 := s.Height*p.sinE - r2*sinT*p.cosE

	large1 := r1 > r2
	large2 := !large1

	return models.Outline{
		Fill:   shading.RampID(s.Material, p.key),
		Offset: models.Point{X: p.hOffset, Y: v},
		Path: []models.PathCommand{
			{Op: models.MoveTo, X: x1, Y: y1},
			{Op: models.LineTo, X: x2, Y: y2},
			{Op: models.ArcTo, X: -x2, Y: y2, RX: r2, RY: ry2, LargeArc: large2, Sweep: true},
			{Op: models.LineTo, X: -x1, Y: y1},
			{Op: models.ArcTo, X: x1, Y: y1, RX: r1, RY: ry1, LargeArc: large1, Sweep: true},
			{Op: models.Close},
		},
	}
}

func (p projection) rim(material string, r, v float64) models.Ellipse {
	return models.Ellipse{
		Fill:   shading.SwatchID(material, p.key),
		Offset: models.Point{X: p.hOffset, Y: v},
		RX:     r,
		RY:     p.cosE * r,
	}
}
