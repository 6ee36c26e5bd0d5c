package diff

import (
	"errors"

	"checkatron/core/diffsql"
	"checkatron/core/logger"
	"checkatron/core/schema"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for diff generation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the diff routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/diff")
	group.Post("/", h.HandleGenerate)
	group.Get("/codes", h.HandleCodes)
}

// HandleGenerate renders the diff statement for two schema listings.
// @Summary Generate Diff SQL
// @Description Reconciles two schema listings and returns one CREATE TABLE ... AS statement whose result holds a status code per column and per row.
// @Tags diff
// @Accept json
// @Produce json
// @Param request body Input true "Listings, keys and options"
// @Success 200 {object} Result
// @Failure 400 {object} map[string]string "Invalid listings, keys or filters"
// @Failure 401 {object} map[string]string "Missing or invalid API key"
// @Router /diff [post]
func (h *Handler) HandleGenerate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var in Input
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body: " + err.Error()})
	}

	res, err := h.service.Generate(c.UserContext(), in)
	if err != nil {
		if isInputError(err) {
			l.Info("Diff request rejected", zap.Error(err))
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Diff generation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Diff generated",
		zap.String("dialect", res.Dialect),
		zap.Int("columns", len(res.Columns)),
		zap.Int("warnings", len(res.Warnings)),
	)
	return c.JSON(res)
}

// HandleCodes returns the status code legend.
// @Summary Status Code Legend
// @Description Lists the integer codes stored in the generated result table.
// @Tags diff
// @Produce json
// @Success 200 {array} diffsql.LegendEntry
// @Router /diff/codes [get]
func (h *Handler) HandleCodes(c *fiber.Ctx) error {
	return c.JSON(diffsql.Legend)
}

func isInputError(err error) bool {
	return errors.Is(err, schema.ErrSchema) || errors.Is(err, diffsql.ErrRender) || errors.Is(err, ErrInvalidInput)
}
