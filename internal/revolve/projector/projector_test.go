package projector

import (
	"math"
	"testing"

	"cylinders/internal/revolve/models"
	"cylinders/internal/revolve/shading"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ousterOS1() models.Object {
	return models.Object{
		Name: "Ouster OS1",
		Materials: map[string]models.Material{
			"body":   {ID: "body", Color: models.Color{R: 0.88, G: 0.88, B: 0.88}, Gloss: 0.3},
			"window": {ID: "window", Color: models.Color{R: 0.1, G: 0.1, B: 0.1}, Gloss: 0.9},
		},
		Segments: []models.Segment{
			{Start: 38, End: 38, Height: 18, Material: "body"},
			{Start: 38, End: 35, Height: 3, Material: "body"},
			{Start: 35, End: 35, Height: 31, Material: "window"},
			{Start: 35, End: 40, Height: 14, Material: "body"},
			{Start: 40, End: 40, Height: 6, Material: "body"},
		},
	}
}

func twoRings(upper, lower float64) models.Object {
	return models.Object{
		Name:      "rings",
		Materials: map[string]models.Material{"m": {ID: "m", Color: models.Color{R: 0.5, G: 0.5, B: 0.5}}},
		Segments: []models.Segment{
			{Start: upper, End: upper, Height: 20, Material: "m"},
			{Start: lower, End: lower, Height: 20, Material: "m"},
		},
	}
}

func kinds(prims []models.Primitive) []string {
	out := make([]string, len(prims))
	for i, p := range prims {
		switch p.(type) {
		case models.Outline:
			out[i] = "outline"
		case models.Ellipse:
			out[i] = "ellipse"
		}
	}
	return out
}

func TestProjectZeroAngleDelegatesToFlat(t *testing.T) {
	o := ousterOS1()

	got := Project(o, 0)
	want := Flat(o, shading.NamespaceKey(o, 0))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Project(angle=0) mismatch (-want +got):\n%s", diff)
	}
}

func TestProjectWidthIndependentOfAngle(t *testing.T) {
	o := ousterOS1()
	for _, angle := range []float64{0, 0.1, 0.5, 1.0, 1.5} {
		assert.Equal(t, 80.0, Project(o, angle).Width, "angle %v", angle)
	}
}

func TestProjectHeight(t *testing.T) {
	o := ousterOS1()
	angle := 0.3
	cosE, sinE := math.Sin(angle), math.Cos(angle)

	got := Project(o, angle)
	want := 2*40*cosE + 72*sinE
	assert.InDelta(t, want, got.Height, 1e-9)
}

func TestProjectHeightDecreasesTowardTopDown(t *testing.T) {
	o := ousterOS1()
	prev := Project(o, 1.0).Height
	for _, angle := range []float64{1.2, 1.4, 1.55} {
		h := Project(o, angle).Height
		assert.Less(t, h, prev, "angle %v", angle)
		prev = h
	}
}

func TestProjectCylinderRimsEqual(t *testing.T) {
	o := models.Object{
		Name:      "puck",
		Materials: map[string]models.Material{"rubber": {ID: "rubber"}},
		Segments:  []models.Segment{{Start: 38.1, End: 38.1, Height: 25.4, Material: "rubber"}},
	}
	angle := 0.4
	cosE := math.Sin(angle)

	res := Project(o, angle)
	require.Equal(t, []string{"outline", "ellipse"}, kinds(res.Primitives))

	outline := res.Primitives[0].(models.Outline)
	var arcs []models.PathCommand
	for _, cmd := range outline.Path {
		if cmd.Op == models.ArcTo {
			arcs = append(arcs, cmd)
		}
	}
	require.Len(t, arcs, 2)
	for _, a := range arcs {
		assert.Equal(t, 38.1, a.RX)
		assert.InDelta(t, cosE*38.1, a.RY, 1e-9)
	}

	// образующие вертикальны
	assert.InDelta(t, 38.1, outline.Path[0].X, 1e-9)
	assert.InDelta(t, 38.1, outline.Path[1].X, 1e-9)
	assert.InDelta(t, 0, outline.Path[0].Y, 1e-9)

	top := res.Primitives[1].(models.Ellipse)
	assert.Equal(t, shading.SwatchID("rubber", res.Key), top.Fill)
	assert.InDelta(t, cosE*38.1, top.RY, 1e-9)
}

func TestProjectSealsStep(t *testing.T) {
	o := twoRings(40, 45)

	res := Project(o, 0.3)
	require.Equal(t, []string{"outline", "ellipse", "outline", "ellipse"}, kinds(res.Primitives))

	seal := res.Primitives[1].(models.Ellipse)
	assert.Equal(t, 45.0, seal.RX)
	// крышка стоит на ближней кромке нижнего сегмента
	assert.Equal(t, res.Primitives[0].Translation(), seal.Offset)

	top := res.Primitives[3].(models.Ellipse)
	assert.Equal(t, 40.0, top.RX)
	assert.InDelta(t, 45*math.Sin(0.3), top.Offset.Y, 1e-9)
}

func TestProjectNoSealWhenRadiiMatch(t *testing.T) {
	res := Project(twoRings(40, 40), 0.3)
	assert.Equal(t, []string{"outline", "outline", "ellipse"}, kinds(res.Primitives))
}

func TestProjectSealTolerance(t *testing.T) {
	res := Project(twoRings(40, 40.5), 0.3, WithSealTolerance(1))
	assert.Equal(t, []string{"outline", "outline", "ellipse"}, kinds(res.Primitives))
}

func TestProjectDegenerateFallsBackToCap(t *testing.T) {
	o := models.Object{
		Name:      "flare",
		Materials: map[string]models.Material{"body": {ID: "body"}},
		Segments:  []models.Segment{{Start: 30, End: 60, Height: 0.01, Material: "body"}},
	}

	res := Project(o, 0.5)
	require.Equal(t, []string{"ellipse"}, kinds(res.Primitives))
	assert.Equal(t, 30.0, res.Primitives[0].(models.Ellipse).RX)
}

func TestProjectDegenerateMargin(t *testing.T) {
	o := twoRings(40, 40)
	res := Project(o, 0.3, WithDegenerateMargin(1000))
	assert.Equal(t, []string{"ellipse"}, kinds(res.Primitives))
}

func TestProjectDegenerateSegmentSealsPendingCap(t *testing.T) {
	// вырожденный сегмент сверху, цилиндр под ним
	o := models.Object{
		Name:      "flare on ring",
		Materials: map[string]models.Material{"body": {ID: "body"}},
		Segments: []models.Segment{
			{Start: 30, End: 60, Height: 0.01, Material: "body"},
			{Start: 50, End: 50, Height: 20, Material: "body"},
		},
	}

	res := Project(o, 0.5)
	require.Equal(t, []string{"outline", "ellipse", "ellipse"}, kinds(res.Primitives))
	assert.Equal(t, 50.0, res.Primitives[1].(models.Ellipse).RX)
	assert.Equal(t, 30.0, res.Primitives[2].(models.Ellipse).RX)
}

func TestProjectDegenerateRunInStack(t *testing.T) {
	body := models.Material{ID: "body", Color: models.Color{R: 0.9, G: 0.9, B: 0.9}, Gloss: 0.1}
	window := models.Material{ID: "window", Color: models.Color{B: 0.4}, Gloss: 0.95}
	o := models.Object{
		Name:      "Velodyne VLS-128",
		Materials: map[string]models.Material{"body": body, "window": window},
		Segments: []models.Segment{
			{Start: 30, End: 60, Height: 3.3, Material: "body"},
			{Start: 60, End: 71, Height: 2.3, Material: "body"},
			{Start: 71, End: 74, Height: 2, Material: "body"},
			{Start: 74, End: 76, Height: 2, Material: "body"},
			{Start: 76, End: 78, Height: 4, Material: "body"},
			{Start: 78, End: 80.5, Height: 7, Material: "body"},
			{Start: 80.5, End: 81, Height: 21, Material: "body"},
			{Start: 79, End: 81, Height: 67, Material: "window"},
			{Start: 82, End: 82.5, Height: 33, Material: "body"},
		},
	}

	// при 1.2 рад пять верхних сегментов вырождены; их кромки совпадают,
	// поэтому промежуточных крышек нет, остаётся только верхняя
	res := Project(o, 1.2)
	require.Equal(t,
		[]string{"outline", "ellipse", "outline", "ellipse", "outline", "outline", "ellipse"},
		kinds(res.Primitives))

	var caps []float64
	for _, p := range res.Primitives {
		switch prim := p.(type) {
		case models.Ellipse:
			caps = append(caps, prim.RX)
		case models.Outline:
			assert.NotContains(t, prim.D(), "NaN")
		}
	}
	assert.Equal(t, []float64{82, 79, 30}, caps)
}

func TestProjectNegativeThresholdsClamped(t *testing.T) {
	o := models.Object{
		Name:      "lip",
		Materials: map[string]models.Material{"m": {ID: "m"}},
		Segments:  []models.Segment{{Start: 30, End: 31, Height: 0.5, Material: "m"}},
	}

	res := Project(o, 1.0, WithDegenerateMargin(-1))
	require.Equal(t, []string{"ellipse"}, kinds(res.Primitives))

	res = Project(twoRings(40, 45), 0.3, WithSealTolerance(-5))
	assert.Equal(t, []string{"outline", "ellipse", "outline", "ellipse"}, kinds(res.Primitives))

	res = Project(twoRings(40, 45), 0.3, WithSealTolerance(math.NaN()), WithDegenerateMargin(math.NaN()))
	assert.Equal(t, []string{"outline", "ellipse", "outline", "ellipse"}, kinds(res.Primitives))
}

func TestProjectTaperArcFlags(t *testing.T) {
	o := models.Object{
		Name:      "cone",
		Materials: map[string]models.Material{"m": {ID: "m"}},
		Segments:  []models.Segment{{Start: 35, End: 40, Height: 14, Material: "m"}},
	}

	outline := Project(o, 0.3).Primitives[0].(models.Outline)
	far, near := outline.Path[2], outline.Path[4]
	assert.True(t, far.LargeArc)
	assert.False(t, near.LargeArc)

	o.Segments[0].Start, o.Segments[0].End = 40, 35
	outline = Project(o, 0.3).Primitives[0].(models.Outline)
	assert.False(t, outline.Path[2].LargeArc)
	assert.True(t, outline.Path[4].LargeArc)
}

func TestProjectTangentPointsOnRims(t *testing.T) {
	o := ousterOS1()
	angle := 0.6
	sinE := math.Cos(angle)

	res := Project(o, angle)
	require.Equal(t, []string{"outline", "outline", "outline", "outline", "outline", "ellipse"}, kinds(res.Primitives))

	for i := 0; i < len(o.Segments); i++ {
		seg := o.Segments[len(o.Segments)-1-i]
		path := res.Primitives[i].(models.Outline).Path

		near, far := path[4], path[2]
		assert.Equal(t, seg.Start, near.RX)
		assert.Equal(t, seg.End, far.RX)

		// точки касания лежат на эллипсах своих кромок
		start, end := path[0], path[1]
		assert.InDelta(t, 1, sq(start.X/near.RX)+sq(start.Y/near.RY), 1e-9, "segment %d near", i)
		farY := end.Y - seg.Height*sinE
		assert.InDelta(t, 1, sq(end.X/far.RX)+sq(farY/far.RY), 1e-9, "segment %d far", i)
	}
}

func TestProjectOrderAndKeys(t *testing.T) {
	o := ousterOS1()
	res := Project(o, 0.3)

	require.NotEmpty(t, res.Primitives)
	first := res.Primitives[0].(models.Outline)
	assert.Equal(t, shading.RampID("body", res.Key), first.Fill)

	// смещение уменьшается снизу вверх
	prev := math.Inf(1)
	for _, p := range res.Primitives {
		if _, ok := p.(models.Outline); !ok {
			continue
		}
		assert.Less(t, p.Translation().Y, prev)
		prev = p.Translation().Y
	}

	assert.Len(t, res.Gradients, 2)
	assert.InDelta(t, shading.TiltCenter(0.3), res.Gradients[0].Ramp.Stops[3].Offset, 1e-9)
}

func TestProjectWithKey(t *testing.T) {
	res := Project(ousterOS1(), 0.3, WithKey("fixed"))
	assert.Equal(t, "fixed", res.Key)
	assert.Equal(t, "body-fixed", res.Primitives[0].FillID())
}

func TestFlat(t *testing.T) {
	res := Flat(twoRings(40, 45), "k")
	require.Len(t, res.Primitives, 2)
	assert.Equal(t, 40.0, res.Height)
	assert.Equal(t, 90.0, res.Width)

	second := res.Primitives[1].(models.Outline)
	assert.Equal(t, "M45,19.5 L-45,19.5 L-45,40 L45,40 Z", second.D())
	assert.Equal(t, models.Point{X: 45}, second.Offset)
	assert.Equal(t, shading.DefaultCenter, res.Gradients[0].Ramp.Stops[3].Offset)
}

func sq(v float64) float64 { return v * v }
