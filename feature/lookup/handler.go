package lookup

import (
	"errors"

	"element-attributes/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for attribute lookups.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the lookup routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/attributes")
	group.Get("/", h.HandleGetTable)
	group.Get("/:element", h.HandleGetElement)
}

// HandleGetTable returns the whole table.
// @Summary Get Attribute Table
// @Description Returns every element with its allowed attributes; "*" holds the global attributes.
// @Tags attributes
// @Produce json
// @Success 200 {object} map[string][]string "Table"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /attributes [get]
func (h *Handler) HandleGetTable(c *fiber.Ctx) error {
	table, err := h.service.Table(c.Context())
	if err != nil {
		logger.WithRayID(h.service.Logger(), c).Error("Failed to load table", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(table)
}

// HandleGetElement returns the attributes allowed on one element.
// @Summary Get Element Attributes
// @Description Returns the global and element-specific attributes of an element.
// @Tags attributes
// @Produce json
// @Param element path string true "Element name (e.g. 'circle')"
// @Success 200 {object} lookup.ElementReport "Element attributes"
// @Failure 404 {object} map[string]string "Unknown element"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /attributes/{element} [get]
func (h *Handler) HandleGetElement(c *fiber.Ctx) error {
	element := c.Params("element")
	l := logger.WithRayID(h.service.Logger(), c)

	report, err := h.service.Lookup(c.Context(), element)
	if errors.Is(err, ErrUnknownElement) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "unknown element: " + element,
		})
	}
	if err != nil {
		l.Error("Lookup failed", zap.String("element", element), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}
