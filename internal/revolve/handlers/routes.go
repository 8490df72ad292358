package handlers

import "github.com/gofiber/fiber/v3"

// ============================================================
// Routes
// ============================================================

// Register вешает маршруты рендера на роутер.
func (h *RenderHandler) Register(r fiber.Router) {
	r.Get("/catalog", h.Catalog)
	r.Get("/render", h.RenderCatalog)
	r.Get("/render/:name", h.RenderObject)
	r.Post("/render", h.RenderCustom)
	r.Post("/project", h.Project)
	r.Get("/renders", h.ListRenders)
	r.Get("/renders/:id", h.GetRender)
}
