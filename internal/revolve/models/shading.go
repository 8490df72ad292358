package models

// ============================================================
// Shading
// ============================================================

// RGB затенённый цвет, каналы в [0,255].
type RGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// Stop точка градиента, Offset в процентах.
type Stop struct {
	Offset float64 `json:"offset"`
	Color  RGB     `json:"color"`
}

// ShadingRamp линейный градиент из 7 точек для боковой стенки.
type ShadingRamp struct {
	ID    string `json:"id"`
	Stops []Stop `json:"stops"`
}

// Swatch сплошной цвет для торцевых эллипсов.
type Swatch struct {
	ID    string `json:"id"`
	Color RGB    `json:"color"`
}

// Gradient набор заливок одного материала в пространстве имён объекта.
type Gradient struct {
	Material string      `json:"material"`
	Ramp     ShadingRamp `json:"ramp"`
	Swatch   Swatch      `json:"swatch"`
}
