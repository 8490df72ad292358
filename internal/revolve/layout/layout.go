package layout

import (
	"math"

	"cylinders/internal/revolve/models"
	"cylinders/internal/revolve/projector"
)

// ============================================================
// Layout
// ============================================================

type Options struct {
	Padding  float64
	TextSize float64
}

func DefaultOptions() Options {
	return Options{Padding: 20, TextSize: 10}
}

// Item отрендеренный объект с подписью.
type Item struct {
	Label  string
	Result projector.Result
}

// Placed объект на листе: сдвиг группы и позиция подписи.
type Placed struct {
	Item
	X      float64
	Y      float64
	LabelX float64
	LabelY float64
}

type Document struct {
	Width    float64
	Height   float64
	TextSize float64
	Items    []Placed
}

// Compose выстраивает объекты в ряд по нижнему краю с подписями под ними.
func Compose(items []Item, opts Options) Document {
	var maxHeight float64
	for _, it := range items {
		maxHeight = math.Max(maxHeight, it.Result.Height)
	}
	totalHeight := 2*opts.Padding + maxHeight

	doc := Document{TextSize: opts.TextSize}
	x := opts.Padding
	for _, it := range items {
		doc.Items = append(doc.Items, Placed{
			Item:   it,
			X:      x,
			Y:      totalHeight - it.Result.Height - opts.Padding,
			LabelX: x,
			LabelY: totalHeight,
		})
		x += it.Result.Width + opts.Padding
	}

	doc.Width = x
	doc.Height = totalHeight + opts.Padding + opts.TextSize
	return doc
}

// Label подпись объекта: имя и вес, если он известен.
func Label(o models.Object) string {
	if o.Weight > 0 {
		return o.Name + " (" + models.FormatFloat(o.Weight) + " g)"
	}
	return o.Name
}

// Render проецирует объекты под одним углом и раскладывает их на листе.
func Render(objects []models.Object, angle float64, opts Options, popts ...projector.Option) Document {
	items := make([]Item, 0, len(objects))
	for _, o := range objects {
		items = append(items, Item{
			Label:  Label(o),
			Result: projector.Project(o, angle, popts...),
		})
	}
	return Compose(items, opts)
}
