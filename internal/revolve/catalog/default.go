package catalog

import "cylinders/internal/revolve/models"

// ============================================================
// Built-in catalog
// ============================================================

func mat(id string, r, g, b, gloss float64) models.Material {
	return models.Material{ID: id, Color: models.Color{R: r, G: g, B: b}, Gloss: gloss}
}

func materials(ms ...models.Material) map[string]models.Material {
	out := make(map[string]models.Material, len(ms))
	for _, m := range ms {
		out[m.ID] = m
	}
	return out
}

func seg(start, end, height float64, material string) models.Segment {
	return models.Segment{Start: start, End: end, Height: height, Material: material}
}

var builtin = []models.Object{
	{
		Name:      "Hockey Puck",
		Weight:    165,
		Materials: materials(mat("rubber", 0.15, 0.15, 0.15, 0)),
		Segments:  []models.Segment{seg(38.1, 38.1, 25.4, "rubber")},
	},
	{
		Name:      "Ouster OS1",
		Materials: materials(mat("body", 0.88, 0.88, 0.88, 0.3), mat("window", 0.1, 0.1, 0.1, 0.9)),
		Segments: []models.Segment{
			seg(38, 38, 18, "body"),
			seg(38, 35, 3, "body"),
			seg(35, 35, 31, "window"),
			seg(35, 40, 14, "body"),
			seg(40, 40, 6, "body"),
		},
	},
	{
		Name:      "Velodyne VLP-16",
		Weight:    830,
		Materials: materials(mat("body", 0.8, 0.8, 0.83, 0.1), mat("window", 0.1, 0.5, 0, 0.9)),
		Segments: []models.Segment{
			seg(49.5, 50, 14.8, "body"),
			seg(49.5, 51, 38.1, "window"),
			seg(51.5, 51.65, 18.8, "body"),
		},
	},
	{
		Name:      "Velodyne VLP-32C",
		Weight:    925,
		Materials: materials(mat("body", 0.8, 0.8, 0.83, 0.1), mat("window", 0.1, 0.5, 0, 0.9)),
		Segments: []models.Segment{
			seg(50, 50, 27.4, "body"),
			seg(49.5, 51, 44.5, "window"),
			seg(51.5, 51.65, 15.0, "body"),
		},
	},
	{
		Name: "Quanergy M8",
		Materials: materials(
			mat("body", 0.1, 0.1, 0.1, 0.7),
			mat("window", 0.1, 0.1, 0.1, 0.95),
			mat("base", 0.2, 0.2, 0.2, 0.3),
		),
		Segments: []models.Segment{
			seg(43, 45, 2, "window"),
			seg(45, 47, 67, "window"),
			seg(48, 50, 1, "body"),
			seg(50, 51, 1, "body"),
			seg(51, 51, 10, "body"),
			seg(51.5, 51.5, 8, "base"),
		},
	},
	{
		Name:      "Surestar RFans-32",
		Materials: materials(mat("body", 0.7, 0.7, 0.75, 0.0), mat("window", 0.85, 0.87, 0.8, 0.95)),
		Segments: []models.Segment{
			seg(56.5, 56.5, 10, "body"),
			seg(56.5, 56.5, 44, "window"),
			seg(56.5, 56.5, 16, "body"),
		},
	},
	{
		Name:      "Ouster OS2",
		Materials: materials(mat("body", 0.88, 0.88, 0.88, 0.3), mat("window", 0.1, 0.1, 0.1, 0.9)),
		Segments: []models.Segment{
			seg(46, 46, 6, "body"),
			seg(46, 49, 66, "window"),
			seg(50, 55, 20, "body"),
			seg(55, 55, 8, "body"),
		},
	},
	{
		Name:      "Robosense RS-LiDAR-32B",
		Materials: materials(mat("body", 0.4, 0.4, 0.4, 0.0), mat("window", 0, 0.2, 0.6, 0.95)),
		Segments: []models.Segment{
			seg(57, 57, 33, "body"),
			seg(56, 55, 65, "window"),
			seg(56, 56, 20, "body"),
		},
	},
	{
		Name:      "Hesai Pandar64",
		Materials: materials(mat("body", 0.8, 0.83, 0.8, 0.7), mat("window", 0, 0.2, 0.6, 0.95)),
		Segments: []models.Segment{
			seg(54, 58, 4, "body"),
			seg(58, 58, 30, "body"),
			seg(57.5, 57, 62, "window"),
			seg(57.5, 57.5, 20, "body"),
		},
	},
	{
		Name:      "Velodyne VLS-128",
		Materials: materials(mat("body", 0.9, 0.9, 0.9, 0.1), mat("window", 0.0, 0.0, 0.4, 0.95)),
		Segments: []models.Segment{
			seg(30, 60, 3.3, "body"),
			seg(60, 71, 2.3, "body"),
			seg(71, 74, 2, "body"),
			seg(74, 76, 2, "body"),
			seg(76, 78, 4, "body"),
			seg(78, 80.5, 7, "body"),
			seg(80.5, 81, 21, "body"),
			seg(79, 81, 67.0, "window"),
			seg(82, 82.5, 33.0, "body"),
		},
	},
}

// Default встроенный каталог лидаров.
func Default() *Catalog {
	c, err := New(builtin...)
	if err != nil {
		panic("catalog: built-in catalog is invalid: " + err.Error())
	}
	return c
}
