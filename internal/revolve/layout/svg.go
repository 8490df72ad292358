package layout

import (
	"fmt"
	"io"

	"cylinders/internal/revolve/models"
	"cylinders/internal/revolve/shading"

	svg "github.com/ajstarks/svgo/float"
)

// ============================================================
// SVG serializer
// ============================================================

// coordDecimals совпадает с точностью models.FormatFloat.
const coordDecimals = 4

// errWriter запоминает первую ошибку записи: svgo ошибки не возвращает.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// WriteSVG сериализует документ: градиенты в <defs>, затем группы объектов и подписи.
func WriteSVG(w io.Writer, doc Document) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Decimals = coordDecimals

	canvas.Start(doc.Width, doc.Height)

	canvas.Def()
	seen := make(map[string]bool)
	for _, it := range doc.Items {
		for _, g := range it.Result.Gradients {
			if seen[g.Ramp.ID] {
				continue
			}
			seen[g.Ramp.ID] = true
			writeRamp(canvas.Writer, g.Ramp)
			writeSwatch(canvas.Writer, g.Swatch)
		}
	}
	canvas.DefEnd()

	for _, it := range doc.Items {
		canvas.Translate(it.X, it.Y)
		for _, p := range it.Result.Primitives {
			writePrimitive(canvas, p)
		}
		canvas.Gend()

		canvas.Text(it.LabelX, it.LabelY, it.Label,
			fmt.Sprintf("font: %spx sans-serif", models.FormatFloat(doc.TextSize)))
	}

	canvas.End()
	return ew.err
}

func writePrimitive(canvas *svg.SVG, p models.Primitive) {
	transform := fmt.Sprintf(`transform="%s"`, translate(p.Translation()))
	fill := fmt.Sprintf("fill:url(#%s)", p.FillID())

	switch prim := p.(type) {
	case models.Outline:
		canvas.Path(prim.D(), transform, fill)
	case models.Ellipse:
		canvas.Ellipse(prim.Center.X, prim.Center.Y, prim.RX, prim.RY, transform, fill)
	}
}

// Градиенты пишутся вручную: svg.Offcolor хранит смещение как uint8,
// а смещения стопов дробные.
func writeRamp(w io.Writer, r models.ShadingRamp) {
	fmt.Fprintf(w, `<linearGradient id="%s" x1="0%%" y1="0%%" x2="100%%" y2="0%%">`+"\n", r.ID)
	for _, s := range r.Stops {
		writeStop(w, s.Offset, s.Color)
	}
	fmt.Fprintln(w, `</linearGradient>`)
}

func writeSwatch(w io.Writer, s models.Swatch) {
	fmt.Fprintf(w, `<linearGradient id="%s">`+"\n", s.ID)
	writeStop(w, 0, s.Color)
	fmt.Fprintln(w, `</linearGradient>`)
}

func writeStop(w io.Writer, offset float64, c models.RGB) {
	fmt.Fprintf(w, `  <stop offset="%s%%" style="stop-color:%s;stop-opacity:1"/>`+"\n",
		models.FormatFloat(offset), shading.Hex(c))
}

func translate(p models.Point) string {
	return fmt.Sprintf("translate(%s,%s)", models.FormatFloat(p.X), models.FormatFloat(p.Y))
}
