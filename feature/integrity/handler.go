package integrity

import (
	"errors"

	"element-attributes/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/table", h.HandleTableCheck)
	group.Get("/schema", h.HandleSchemaCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Validates the stored table and, when a database is configured, its schema.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	report := make(map[string]interface{})

	if table, err := h.service.CheckTable(c.Context()); err != nil {
		report["table"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["table"] = map[string]interface{}{"status": status(table.Valid()), "report": table}
	}

	if schema, err := h.service.CheckSchema(); errors.Is(err, ErrNoDatabase) {
		report["schema"] = map[string]interface{}{"status": "skipped"}
	} else if err != nil {
		report["schema"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["schema"] = map[string]interface{}{"status": status(schema.Valid()), "missing": schema.Missing}
	}

	return c.JSON(report)
}

// HandleTableCheck validates the stored table.
// @Summary Check Table
// @Description Validates the stored table and returns its counts and violations.
// @Tags integrity
// @Produce json
// @Success 200 {object} integrity.TableReport "Table report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/table [get]
func (h *Handler) HandleTableCheck(c *fiber.Ctx) error {
	report, err := h.service.CheckTable(c.Context())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Table check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleSchemaCheck verifies the attribute table columns.
// @Summary Check Schema
// @Description Lists the columns missing from the element_attributes table.
// @Tags integrity
// @Produce json
// @Success 200 {object} integrity.SchemaReport "Schema report"
// @Failure 404 {object} map[string]string "Database not configured"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	report, err := h.service.CheckSchema()
	if errors.Is(err, ErrNoDatabase) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

func status(valid bool) string {
	if valid {
		return "ok"
	}
	return "failed"
}
