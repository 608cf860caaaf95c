package inventory

import (
	"errors"

	"garment-stock/core/catalog"
	"garment-stock/core/logger"
	"garment-stock/core/query"
	"garment-stock/core/reconcile"
	"garment-stock/core/server"
	"garment-stock/core/validator"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ClearPinHeader carries the confirmation PIN for DELETE /inventory.
const ClearPinHeader = "X-Clear-Pin"

// AdjustRequest is the body of POST /inventory/adjust.
type AdjustRequest struct {
	Key    string `json:"key" validate:"required"`
	Action string `json:"action" validate:"required,oneof=inc dec del"`
	Qty    int    `json:"qty" validate:"gte=0"`
}

// Handler handles HTTP requests for the inventory.
type Handler struct {
	service *Service
	server  server.Config
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, serverCfg server.Config) *Handler {
	return &Handler{service: service, server: serverCfg}
}

// RegisterRoutes registers the inventory and catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/inventory")
	group.Get("/", h.HandleList)
	group.Delete("/", h.HandleClear)
	group.Post("/import", h.HandleImport)
	group.Post("/export", h.HandleExport)
	group.Post("/adjust", h.HandleAdjust)
	group.Get("/csv", h.HandleCSV)
	group.Post("/csv/publish", h.HandlePublishCSV)
	group.Get("/csv/exports", h.HandleListExports)

	cat := app.Group("/catalog")
	cat.Get("/", h.HandleTypes)
	cat.Get("/:type/sizes", h.HandleSizes)
}

// HandleList returns the inventory view.
// @Summary List Inventory
// @Description Returns the stored records, optionally filtered by type and fabric and sorted.
// @Tags inventory
// @Produce json
// @Param type query string false "Garment type"
// @Param fabric query string false "Fabric (case-insensitive)"
// @Param sort query string false "date, type or size"
// @Success 200 {object} map[string]interface{} "Records"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 502 {object} map[string]string "Store unavailable"
// @Router /inventory [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	opts, err := viewOptions(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	records, err := h.service.List(c.Context(), opts)
	if err != nil {
		return h.fail(c, l, err)
	}

	resp := fiber.Map{"items": records, "count": len(records)}
	if len(records) == 0 {
		resp["message"] = query.EmptyMessage(opts)
	}
	return c.JSON(resp)
}

// HandleImport adds stock.
// @Summary Import Stock
// @Description Adds qty units of a garment variant, merging with the existing line.
// @Tags inventory
// @Accept json
// @Produce json
// @Param body body reconcile.Item true "Item"
// @Success 201 {object} reconcile.Record
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 502 {object} map[string]string "Store unavailable"
// @Router /inventory/import [post]
func (h *Handler) HandleImport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var item reconcile.Item
	if err := c.BodyParser(&item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	rec, err := h.service.Import(c.Context(), item)
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rec)
}

// HandleExport removes stock.
// @Summary Export Stock
// @Description Removes qty units of a garment variant. The line is deleted when it reaches zero.
// @Tags inventory
// @Accept json
// @Produce json
// @Param body body reconcile.Item true "Item"
// @Success 200 {object} map[string]interface{} "Remaining record or deleted flag"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 409 {object} map[string]interface{} "Insufficient quantity"
// @Failure 502 {object} map[string]string "Store unavailable"
// @Router /inventory/export [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var item reconcile.Item
	if err := c.BodyParser(&item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	rec, err := h.service.Export(c.Context(), item)
	if err != nil {
		return h.fail(c, l, err)
	}
	if rec == nil {
		return c.JSON(fiber.Map{"deleted": true})
	}
	return c.JSON(rec)
}

// HandleAdjust applies a row action.
// @Summary Adjust Row
// @Description Increments, decrements or deletes the record stored under key.
// @Tags inventory
// @Accept json
// @Produce json
// @Param body body AdjustRequest true "Adjustment"
// @Success 200 {object} map[string]interface{} "Updated record or deleted flag"
// @Failure 400 {object} map[string]interface{} "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 409 {object} map[string]interface{} "Insufficient quantity"
// @Router /inventory/adjust [post]
func (h *Handler) HandleAdjust(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req AdjustRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if errs := validator.ValidateStruct(&req); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed", "details": errs})
	}

	rec, err := h.service.Adjust(c.Context(), req.Key, req.Action, req.Qty)
	if err != nil {
		return h.fail(c, l, err)
	}
	if rec == nil {
		return c.JSON(fiber.Map{"deleted": true})
	}
	return c.JSON(rec)
}

// HandleClear deletes every record.
// @Summary Clear Inventory
// @Description Deletes all records. Requires the configured clear PIN in the X-Clear-Pin header.
// @Tags inventory
// @Produce json
// @Param X-Clear-Pin header string true "Clear PIN"
// @Success 200 {object} map[string]int "Cleared count"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 502 {object} map[string]string "Store unavailable"
// @Router /inventory [delete]
func (h *Handler) HandleClear(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if !h.server.ClearEnabled() {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Clearing is disabled"})
	}
	if !h.server.PinMatches(c.Get(ClearPinHeader)) {
		l.Warn("Rejected clear request with wrong PIN")
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Invalid clear PIN"})
	}

	n, err := h.service.Clear(c.Context())
	if err != nil {
		return h.fail(c, l, err)
	}
	l.Info("Inventory cleared over HTTP", zap.Int("count", n))
	return c.JSON(fiber.Map{"cleared": n})
}

// HandleCSV downloads the inventory as CSV.
// @Summary Download CSV
// @Description Renders the inventory as CSV. Responds 204 when there is nothing to export.
// @Tags inventory
// @Produce text/csv
// @Param type query string false "Garment type"
// @Param fabric query string false "Fabric"
// @Param sort query string false "date, type or size"
// @Success 200 {string} string "CSV"
// @Success 204 "No data to export"
// @Router /inventory/csv [get]
func (h *Handler) HandleCSV(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	opts, err := viewOptions(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	data, err := h.service.CSV(c.Context(), opts)
	if errors.Is(err, query.ErrNoData) {
		return c.SendStatus(fiber.StatusNoContent)
	}
	if err != nil {
		return h.fail(c, l, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventory_export.csv"`)
	return c.SendString(data)
}

// HandlePublishCSV uploads the CSV export to object storage.
// @Summary Publish CSV
// @Description Uploads the full inventory CSV to the export bucket.
// @Tags inventory
// @Produce json
// @Success 201 {object} map[string]string "Object name"
// @Success 204 "No data to export"
// @Failure 502 {object} map[string]string "Storage error"
// @Failure 503 {object} map[string]string "Storage not configured"
// @Router /inventory/csv/publish [post]
func (h *Handler) HandlePublishCSV(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	name, err := h.service.PublishCSV(c.Context())
	switch {
	case errors.Is(err, query.ErrNoData):
		return c.SendStatus(fiber.StatusNoContent)
	case errors.Is(err, ErrPublishDisabled):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		if reconcile.IsStore(err) {
			return h.fail(c, l, err)
		}
		l.Error("Failed to publish export", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"object": name})
}

// HandleListExports lists published exports.
// @Summary List Exports
// @Description Lists the CSV files published to the export bucket, newest first.
// @Tags inventory
// @Produce json
// @Success 200 {array} storage.Object
// @Failure 502 {object} map[string]string "Storage error"
// @Failure 503 {object} map[string]string "Storage not configured"
// @Router /inventory/csv/exports [get]
func (h *Handler) HandleListExports(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	objects, err := h.service.Exports(c.Context())
	switch {
	case errors.Is(err, ErrPublishDisabled):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		l.Error("Failed to list exports", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(objects)
}

// HandleTypes lists the garment types.
// @Summary List Types
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /catalog [get]
func (h *Handler) HandleTypes(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"types": catalog.Types()})
}

// HandleSizes lists the sizes offered for a type. Unknown types have none.
// @Summary List Sizes
// @Tags catalog
// @Produce json
// @Param type path string true "Garment type"
// @Success 200 {object} map[string]interface{}
// @Router /catalog/{type}/sizes [get]
func (h *Handler) HandleSizes(c *fiber.Ctx) error {
	garmentType, ok := catalog.CanonicalType(c.Params("type"))
	if !ok {
		return c.JSON(fiber.Map{"type": c.Params("type"), "sizes": []string{}})
	}
	return c.JSON(fiber.Map{"type": garmentType, "sizes": catalog.SizesFor(garmentType)})
}

// fail maps engine errors to HTTP responses.
func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, err error) error {
	var insufficient *reconcile.InsufficientQuantityError
	switch {
	case reconcile.IsValidation(err):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case reconcile.IsNotFound(err):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &insufficient):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":     err.Error(),
			"available": insufficient.Available,
			"requested": insufficient.Requested,
		})
	case reconcile.IsStore(err):
		l.Error("Inventory store failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	default:
		l.Error("Unexpected inventory error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}

// viewOptions reads type, fabric and sort from the query string.
func viewOptions(c *fiber.Ctx) (query.Options, error) {
	sortBy, err := query.ParseCriterion(c.Query("sort"))
	if err != nil {
		return query.Options{}, err
	}

	garmentType := c.Query("type")
	if canonical, ok := catalog.CanonicalType(garmentType); ok {
		garmentType = canonical
	}
	return query.Options{
		TypeFilter:   garmentType,
		FabricFilter: c.Query("fabric"),
		SortBy:       sortBy,
	}, nil
}
