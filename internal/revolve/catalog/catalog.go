package catalog

import (
	"errors"
	"fmt"
	"log"
	"os"

	"cylinders/internal/revolve/models"
	"cylinders/internal/revolve/shading"

	"gopkg.in/yaml.v3"
)

var ErrDuplicate = errors.New("duplicate object name")

// ============================================================
// Catalog
// ============================================================

// Catalog таблица именованных объектов в порядке объявления.
type Catalog struct {
	names   []string
	objects map[string]models.Object
}

// New проверяет объекты и собирает из них каталог.
func New(objects ...models.Object) (*Catalog, error) {
	c := &Catalog{objects: make(map[string]models.Object, len(objects))}
	for _, o := range objects {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		if _, ok := c.objects[o.Name]; ok {
			return nil, fmt.Errorf("%q: %w", o.Name, ErrDuplicate)
		}
		c.names = append(c.names, o.Name)
		c.objects[o.Name] = o
	}
	return c, nil
}

func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

func (c *Catalog) Get(name string) (models.Object, bool) {
	o, ok := c.objects[name]
	return o, ok
}

// Objects возвращает объекты в порядке объявления.
func (c *Catalog) Objects() []models.Object {
	out := make([]models.Object, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, c.objects[name])
	}
	return out
}

func (c *Catalog) Len() int { return len(c.names) }

// ============================================================
// YAML loading
// ============================================================

type fileSpec struct {
	Objects []objectSpec `yaml:"objects"`
}

type objectSpec struct {
	Name      string                  `yaml:"name"`
	Weight    float64                 `yaml:"weight"`
	Materials map[string]materialSpec `yaml:"materials"`
	Segments  []segmentSpec           `yaml:"segments"`
}

type materialSpec struct {
	Color colorSpec `yaml:"color"`
	Gloss float64   `yaml:"gloss"`
}

// colorSpec принимает [r, g, b] в [0,1] или строку #rrggbb.
type colorSpec models.Color

func (c *colorSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		col, err := shading.ParseHex(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: color %q: %w", node.Line, node.Value, err)
		}
		*c = colorSpec(col)
		return nil
	case yaml.SequenceNode:
		var rgb []float64
		if err := node.Decode(&rgb); err != nil {
			return err
		}
		if len(rgb) != 3 {
			return fmt.Errorf("line %d: color wants 3 channels, got %d", node.Line, len(rgb))
		}
		*c = colorSpec{R: rgb[0], G: rgb[1], B: rgb[2]}
		return nil
	}
	return fmt.Errorf("line %d: unsupported color", node.Line)
}

// segmentSpec записывается как [start, end, height, material].
type segmentSpec models.Segment

func (s *segmentSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode || len(node.Content) != 4 {
		return fmt.Errorf("line %d: segment wants [start, end, height, material]", node.Line)
	}
	var out models.Segment
	for i, dst := range []*float64{&out.Start, &out.End, &out.Height} {
		if err := node.Content[i].Decode(dst); err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
	}
	if err := node.Content[3].Decode(&out.Material); err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*s = segmentSpec(out)
	return nil
}

// Parse читает каталог из YAML.
func Parse(data []byte) (*Catalog, error) {
	var file fileSpec
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	objects := make([]models.Object, 0, len(file.Objects))
	for _, obj := range file.Objects {
		o := models.Object{
			Name:      obj.Name,
			Weight:    obj.Weight,
			Materials: make(map[string]models.Material, len(obj.Materials)),
		}
		for id, m := range obj.Materials {
			o.Materials[id] = models.Material{ID: id, Color: models.Color(m.Color), Gloss: m.Gloss}
		}
		for _, s := range obj.Segments {
			o.Segments = append(o.Segments, models.Segment(s))
		}
		objects = append(objects, o)
	}
	return New(objects...)
}

// Load читает каталог из файла; пустой путь означает встроенный каталог.
func Load(path string) (*Catalog, error) {
	if path == "" {
		log.Printf("[CATALOG] Using built-in catalog")
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("[CATALOG] Loaded %d objects from %s", c.Len(), path)
	return c, nil
}
