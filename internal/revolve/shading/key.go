package shading

import (
	"sort"
	"strconv"
	"strings"

	"cylinders/internal/revolve/models"

	"github.com/google/uuid"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ============================================================
// Namespace keys
// ============================================================

var keySpace = uuid.MustParse("6f1c8a52-3b0e-4d7a-9c51-2a6d0e4b7f13")

const keyLength = 12

// NamespaceKey выводит стабильный ключ из содержимого объекта и угла,
// чтобы идентификаторы градиентов разных объектов в одном документе не совпадали.
func NamespaceKey(o models.Object, angle float64) string {
	var b strings.Builder
	b.WriteString(o.Name)
	b.WriteByte('|')

	ids := make([]string, 0, len(o.Materials))
	for id := range o.Materials {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		m := o.Materials[id]
		b.WriteString(id)
		writeFloats(&b, m.Color.R, m.Color.G, m.Color.B, m.Gloss)
		b.WriteByte(';')
	}
	b.WriteByte('|')

	for _, s := range o.Segments {
		writeFloats(&b, s.Start, s.End, s.Height)
		b.WriteString(s.Material)
		b.WriteByte(';')
	}
	b.WriteByte('|')
	writeFloats(&b, angle)

	id := uuid.NewSHA1(keySpace, []byte(b.String()))
	return strings.ReplaceAll(id.String(), "-", "")[:keyLength]
}

func writeFloats(b *strings.Builder, vals ...float64) {
	for _, v := range vals {
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		b.WriteByte(',')
	}
}

// ============================================================
// Color formatting
// ============================================================

// Hex переводит затенённый цвет в #rrggbb.
func Hex(c models.RGB) string {
	return colorful.Color{R: c.R / 255, G: c.G / 255, B: c.B / 255}.Clamped().Hex()
}

// ParseHex разбирает #rrggbb в базовый цвет материала.
func ParseHex(s string) (models.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return models.Color{}, err
	}
	return models.Color{R: c.R, G: c.G, B: c.B}, nil
}
