package shading

import (
	"math"
	"sort"

	"cylinders/internal/revolve/models"
)

// ============================================================
// Ramp layout
// ============================================================

const (
	DefaultCenter = 70.0 // положение блика по умолчанию, %
	bandHalfWidth = 18.0
	maxSpread     = 10.0
	tiltShift     = 30.0
)

// TiltCenter сдвигает блик в зависимости от угла наклона.
func TiltCenter(angle float64) float64 {
	return DefaultCenter - tiltShift*angle
}

// ============================================================
// Color Shader
// ============================================================

// Shade считает 255*(c*mult+add) по каждому каналу с ограничением сверху.
// Нижней границы нет: вызывающий код гарантирует неотрицательный результат.
func Shade(c models.Color, mult, add float64) models.RGB {
	ch := func(v float64) float64 {
		return math.Min(255, 255*(v*mult+add))
	}
	return models.RGB{R: ch(c.R), G: ch(c.G), B: ch(c.B)}
}

// ============================================================
// Material Gradient Generator
// ============================================================

// Ramp строит 7-точечный градиент блестящей круглой поверхности.
// Чем выше глянец, тем уже полоса блика.
func Ramp(m models.Material, center float64) []models.Stop {
	g := m.Gloss
	spread := maxSpread * (1 - g)

	offsets := []float64{
		0,
		center - bandHalfWidth - spread,
		center - bandHalfWidth + spread,
		center,
		center + bandHalfWidth - spread,
		center + bandHalfWidth + spread,
		100,
	}
	colors := []models.RGB{
		Shade(m.Color, 0.3-0.2*g, 0),
		Shade(m.Color, 0.7, 0),
		Shade(m.Color, 1.0, 0.2*g),
		Shade(m.Color, 1.2, 0.25*g),
		Shade(m.Color, 1.1, 0.2*g),
		Shade(m.Color, 0.8, 0),
		Shade(m.Color, 0.6-0.2*g, 0),
	}

	stops := make([]models.Stop, len(offsets))
	for i := range offsets {
		stops[i] = models.Stop{Offset: clamp(offsets[i], 0, 100), Color: colors[i]}
	}
	return stops
}

// Swatch сплошной цвет материала для торцов.
func Swatch(m models.Material) models.RGB {
	return Shade(m.Color, 1.0, 0)
}

// RampID идентификатор градиента материала в пространстве имён key.
func RampID(material, key string) string {
	return material + "-" + key
}

// SwatchID идентификатор сплошной заливки материала.
func SwatchID(material, key string) string {
	return RampID(material, key) + "-flat"
}

// Generate строит градиент и плашку для каждого материала, отсортировано по ID.
func Generate(materials map[string]models.Material, key string, center float64) []models.Gradient {
	ids := make([]string, 0, len(materials))
	for id := range materials {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]models.Gradient, 0, len(ids))
	for _, id := range ids {
		m := materials[id]
		out = append(out, models.Gradient{
			Material: id,
			Ramp: models.ShadingRamp{
				ID:    RampID(id, key),
				Stops: Ramp(m, center),
			},
			Swatch: models.Swatch{
				ID:    SwatchID(id, key),
				Color: Swatch(m),
			},
		})
	}
	return out
}

func clamp(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
