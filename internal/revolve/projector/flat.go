package projector

import (
	"cylinders/internal/revolve/models"
	"cylinders/internal/revolve/shading"
)

// ============================================================
// Flat Renderer
// ============================================================

// seamOverlap верхняя кромка трапеции заходит на предыдущую, чтобы не было щели.
const seamOverlap = 0.5

// Flat рисует вид сбоку: каждый сегмент - трапеция, сверху вниз в порядке хранения.
func Flat(o models.Object, key string) Result {
	hOffset := o.MaxRadius()

	var v float64
	prims := make([]models.Primitive, 0, len(o.Segments))
	for _, s := range o.Segments {
		y1 := v - seamOverlap
		y2 := v + s.Height
		prims = append(prims, models.Outline{
			Fill:   shading.RampID(s.Material, key),
			Offset: models.Point{X: hOffset},
			Path: []models.PathCommand{
				{Op: models.MoveTo, X: s.Start, Y: y1},
				{Op: models.LineTo, X: -s.Start, Y: y1},
				{Op: models.LineTo, X: -s.End, Y: y2},
				{Op: models.LineTo, X: s.End, Y: y2},
				{Op: models.Close},
			},
		})
		v += s.Height
	}

	return Result{
		Key:        key,
		Primitives: prims,
		Gradients:  shading.Generate(o.Materials, key, shading.DefaultCenter),
		Height:     v,
		Width:      2 * hOffset,
	}
}
