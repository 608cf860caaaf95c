package integrity

import (
	"garment-stock/core/logger"
	"garment-stock/core/reconcile"

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
	group.Get("/", h.HandleScan)
	group.Post("/repair", h.HandleRepair)
}

// HandleScan runs the inventory scan.
// @Summary Scan Inventory
// @Description Reports records whose key, quantity or size break the inventory rules, plus missing SQL columns. Never mutates.
// @Tags integrity
// @Produce json
// @Param purge query boolean false "Plan deletion of non-positive records"
// @Param rekey query boolean false "Plan moving records to their derived key"
// @Success 200 {object} Report
// @Failure 502 {object} map[string]string "Store unavailable"
// @Router /integrity [get]
func (h *Handler) HandleScan(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering integrity scan")

	report, err := h.service.Scan(c.Context(), options(c))
	if err != nil {
		l.Error("Integrity scan failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}

	status := "ok"
	if len(report.Plan.Results) > 0 || len(report.MissingColumns) > 0 {
		status = "problems"
	}
	return c.JSON(fiber.Map{
		"status": status,
		"report": report,
	})
}

// HandleRepair executes the planned repairs.
// @Summary Repair Inventory
// @Description Plans with the given options and executes the purge and rekey actions.
// @Tags integrity
// @Produce json
// @Param purge query boolean false "Delete non-positive records"
// @Param rekey query boolean false "Move records to their derived key"
// @Param dry_run query boolean false "Plan only"
// @Success 200 {object} map[string]interface{} "Executed count and plan"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 502 {object} map[string]string "Store unavailable"
// @Router /integrity/repair [post]
func (h *Handler) HandleRepair(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	opts := options(c)
	if !opts.DoPurge && !opts.DoRekey {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nothing to repair: set purge and/or rekey"})
	}
	opts.DryRun = c.QueryBool("dry_run", false)
	opts.Confirmed = true

	plan, executed, err := h.service.Repair(c.Context(), opts)
	if err != nil {
		l.Error("Integrity repair failed", zap.Error(err), zap.Int("executed", executed))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":    err.Error(),
			"executed": executed,
		})
	}

	l.Info("Integrity repair finished", zap.Int("executed", executed), zap.Bool("dry_run", opts.DryRun))
	return c.JSON(fiber.Map{
		"executed": executed,
		"dry_run":  opts.DryRun,
		"plan":     plan,
	})
}

func options(c *fiber.Ctx) reconcile.ReconcileOptions {
	return reconcile.ReconcileOptions{
		DoPurge: c.QueryBool("purge", false),
		DoRekey: c.QueryBool("rekey", false),
	}
}
