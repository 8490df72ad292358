package svgpath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"cylinders/internal/revolve/models"
)

// ============================================================
// Path Parser
// ============================================================

var commandRe = regexp.MustCompile(`([MmLlHhVvAaZz])([^MmLlHhVvAaZz]*)`)

// Parse разбирает SVG path data в абсолютные команды контура.
// Поддерживаются M, L, H, V, A, Z в абсолютной и относительной форме.
func Parse(d string) ([]models.PathCommand, error) {
	d = strings.TrimSpace(d)
	if d == "" {
		return nil, fmt.Errorf("empty path")
	}

	var cmds []models.PathCommand
	var currentX, currentY float64
	var startX, startY float64

	for _, match := range commandRe.FindAllStringSubmatch(d, -1) {
		cmd := match[1]
		coords, err := parseCoords(match[2])
		if err != nil {
			return nil, fmt.Errorf("command %s: %w", cmd, err)
		}
		relative := cmd == strings.ToLower(cmd) && cmd != "z"

		switch strings.ToUpper(cmd) {
		case "M", "L":
			if len(coords) < 2 {
				return nil, fmt.Errorf("command %s: want 2 coords, got %d", cmd, len(coords))
			}
			x, y := coords[0], coords[1]
			if relative {
				x += currentX
				y += currentY
			}
			currentX, currentY = x, y
			op := models.LineTo
			if strings.ToUpper(cmd) == "M" {
				op = models.MoveTo
				startX, startY = x, y
			}
			cmds = append(cmds, models.PathCommand{Op: op, X: x, Y: y})

		case "H":
			if len(coords) < 1 {
				return nil, fmt.Errorf("command %s: want 1 coord", cmd)
			}
			if relative {
				currentX += coords[0]
			} else {
				currentX = coords[0]
			}
			cmds = append(cmds, models.PathCommand{Op: models.LineTo, X: currentX, Y: currentY})

		case "V":
			if len(coords) < 1 {
				return nil, fmt.Errorf("command %s: want 1 coord", cmd)
			}
			if relative {
				currentY += coords[0]
			} else {
				currentY = coords[0]
			}
			cmds = append(cmds, models.PathCommand{Op: models.LineTo, X: currentX, Y: currentY})

		case "A":
			if len(coords) < 7 {
				return nil, fmt.Errorf("command %s: want 7 coords, got %d", cmd, len(coords))
			}
			x, y := coords[5], coords[6]
			if relative {
				x += currentX
				y += currentY
			}
			currentX, currentY = x, y
			cmds = append(cmds, models.PathCommand{
				Op:       models.ArcTo,
				X:        x,
				Y:        y,
				RX:       coords[0],
				RY:       coords[1],
				LargeArc: coords[3] != 0,
				Sweep:    coords[4] != 0,
			})

		case "Z":
			// замыкаем путь, возвращаясь к первой точке
			currentX, currentY = startX, startY
			cmds = append(cmds, models.PathCommand{Op: models.Close})
		}
	}

	if len(cmds) == 0 {
		return nil, fmt.Errorf("no commands in %q", d)
	}
	return cmds, nil
}

func parseCoords(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	// Разделитель: запятая или пробел
	s = strings.ReplaceAll(s, ",", " ")
	parts := strings.Fields(s)

	coords := make([]float64, 0, len(parts))
	for _, part := range parts {
		val, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, err
		}
		coords = append(coords, val)
	}
	return coords, nil
}
