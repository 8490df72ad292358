package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"cylinders/internal/revolve/catalog"
	"cylinders/internal/revolve/layout"
	"cylinders/internal/revolve/models"
	"cylinders/internal/revolve/projector"
	"cylinders/internal/revolve/repository"
	"cylinders/internal/revolve/svgpath"

	"github.com/gofiber/fiber/v3"
)

// Store архив отрендеренных документов.
type Store interface {
	Save(ctx context.Context, rd repository.Render) (string, error)
	Get(ctx context.Context, id string) (*repository.Render, error)
	List(ctx context.Context, limit int) ([]repository.Render, error)
}

// ============================================================
// Render Handler
// ============================================================

type RenderHandler struct {
	catalog      *catalog.Catalog
	store        Store
	layout       layout.Options
	defaultAngle float64
}

func NewRenderHandler(c *catalog.Catalog, store Store, opts layout.Options, defaultAngle float64) *RenderHandler {
	return &RenderHandler{
		catalog:      c,
		store:        store,
		layout:       opts,
		defaultAngle: defaultAngle,
	}
}

type renderRequest struct {
	Object models.Object `json:"object"`
	Angle  *float64      `json:"angle"`
}

// Catalog отдаёт объекты каталога.
func (h *RenderHandler) Catalog(c fiber.Ctx) error {
	return c.JSON(h.catalog.Objects())
}

// RenderCatalog рисует все объекты каталога в одном документе.
func (h *RenderHandler) RenderCatalog(c fiber.Ctx) error {
	angle, err := h.parseAngle(c.Query("angle"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	log.Printf("[RENDER] Catalog: %d objects, angle %v", h.catalog.Len(), angle)
	doc := layout.Render(h.catalog.Objects(), angle, h.layout)
	return h.sendSVG(c, doc)
}

// RenderObject рисует один объект каталога.
func (h *RenderHandler) RenderObject(c fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid name"})
	}

	obj, ok := h.catalog.Get(name)
	if !ok {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "object not found"})
	}

	angle, err := h.parseAngle(c.Query("angle"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	doc := layout.Render([]models.Object{obj}, angle, h.layout)
	return h.sendSVG(c, doc)
}

// RenderCustom рисует объект из тела запроса и сохраняет документ в архив.
func (h *RenderHandler) RenderCustom(c fiber.Ctx) error {
	obj, angle, err := h.decodeRequest(c.Body())
	if err != nil {
		log.Printf("[RENDER] Invalid request: %v", err)
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	doc := layout.Render([]models.Object{obj}, angle, h.layout)
	var buf bytes.Buffer
	if err := layout.WriteSVG(&buf, doc); err != nil {
		log.Printf("[RENDER] Write error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "render failed"})
	}

	// в архив попадает только документ, который читается обратно
	if err := verifySVG(buf.Bytes()); err != nil {
		log.Printf("[RENDER] Verify error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "render failed"})
	}

	res := doc.Items[0].Result
	id, err := h.store.Save(c.Context(), repository.Render{
		Object:    obj.Name,
		Angle:     angle,
		Namespace: res.Key,
		Width:     doc.Width,
		Height:    doc.Height,
		SVG:       buf.String(),
	})
	if err != nil {
		log.Printf("[RENDER] Save error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save render"})
	}

	log.Printf("[RENDER] Saved %q as %s", obj.Name, id)
	c.Set("X-Render-ID", id)
	c.Set("Content-Type", "image/svg+xml")
	return c.Status(http.StatusCreated).Send(buf.Bytes())
}

func verifySVG(data []byte) error {
	doc, err := svgpath.ParseDocument(bytes.NewReader(data))
	if err != nil {
		return err
	}
	return doc.Verify()
}

// Project отдаёт примитивы проектора в JSON.
func (h *RenderHandler) Project(c fiber.Ctx) error {
	obj, angle, err := h.decodeRequest(c.Body())
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(projector.Project(obj, angle))
}

// ListRenders отдаёт последние сохранённые рендеры.
func (h *RenderHandler) ListRenders(c fiber.Ctx) error {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid limit"})
		}
		limit = n
	}

	renders, err := h.store.List(c.Context(), limit)
	if err != nil {
		log.Printf("[RENDER] List error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list renders"})
	}
	return c.JSON(renders)
}

// GetRender отдаёт сохранённый svg.
func (h *RenderHandler) GetRender(c fiber.Ctx) error {
	rd, err := h.store.Get(c.Context(), c.Params("id"))
	if errors.Is(err, repository.ErrNotFound) {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "render not found"})
	}
	if err != nil {
		log.Printf("[RENDER] Get error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load render"})
	}

	c.Set("Content-Type", "image/svg+xml")
	return c.SendString(rd.SVG)
}

// ============================================================
// Helpers
// ============================================================

func (h *RenderHandler) parseAngle(raw string) (float64, error) {
	if raw == "" {
		return h.defaultAngle, nil
	}
	angle, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid angle %q", raw)
	}
	if err := models.ValidateAngle(angle); err != nil {
		return 0, err
	}
	return angle, nil
}

func (h *RenderHandler) decodeRequest(body []byte) (models.Object, float64, error) {
	if len(body) == 0 {
		return models.Object{}, 0, errors.New("body required")
	}

	var req renderRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return models.Object{}, 0, errors.New("invalid JSON payload")
	}

	obj := req.Object
	for id, m := range obj.Materials {
		m.ID = id
		obj.Materials[id] = m
	}
	if err := obj.Validate(); err != nil {
		return models.Object{}, 0, err
	}

	angle := h.defaultAngle
	if req.Angle != nil {
		angle = *req.Angle
	}
	if err := models.ValidateAngle(angle); err != nil {
		return models.Object{}, 0, err
	}
	return obj, angle, nil
}

func (h *RenderHandler) sendSVG(c fiber.Ctx, doc layout.Document) error {
	var buf bytes.Buffer
	if err := layout.WriteSVG(&buf, doc); err != nil {
		log.Printf("[RENDER] Write error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "render failed"})
	}

	c.Set("Content-Type", "image/svg+xml")
	return c.Send(buf.Bytes())
}
