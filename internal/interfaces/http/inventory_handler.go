package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-local/internal/application/dto"
	"github.com/jhoicas/Inventario-local/internal/application/inventory"
	"github.com/jhoicas/Inventario-local/internal/domain"
	"github.com/jhoicas/Inventario-local/internal/domain/entity"
)

// InventoryHandler maneja las peticiones HTTP sobre el documento de inventario (protegido).
type InventoryHandler struct {
	store *inventory.Store
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(store *inventory.Store) *InventoryHandler {
	return &InventoryHandler{store: store}
}

// Get godoc
// @Summary      Documento de inventario vigente
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  entity.InventoryData
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) Get(c *fiber.Ctx) error {
	data, err := h.store.Load(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(data)
}

// Reset godoc
// @Summary      Borrar el documento persistido (irreversible)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  entity.InventoryData
// @Router       /api/inventory [delete]
func (h *InventoryHandler) Reset(c *fiber.Ctx) error {
	data, err := h.store.Reset(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(data)
}

// UpdateStock godoc
// @Summary      Registrar movimiento de stock (RECEIVED, USAGE, TRANSFER)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateStockRequest  true  "item_number, action, qty, location (o from/to para TRANSFER)"
// @Success      200   {object}  dto.MutationResponse
// @Failure      400   {object}  dto.RejectionResponse
// @Failure      404   {object}  dto.RejectionResponse
// @Failure      409   {object}  dto.RejectionResponse
// @Router       /api/inventory/stock [post]
func (h *InventoryHandler) UpdateStock(c *fiber.Ctx) error {
	var in dto.UpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	res, err := h.store.UpdateStock(c.Context(), in.ItemNumber, in.Action, inventory.StockParams{
		Qty:          in.Qty,
		Location:     in.Location,
		FromLocation: in.FromLocation,
		ToLocation:   in.ToLocation,
		Notes:        in.Notes,
	})
	return respondResult(c, res, err, fiber.StatusOK)
}

// CreateItem godoc
// @Summary      Alta de ítem en el catálogo
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "item_number, description, category, uom, notes"
// @Success      201   {object}  dto.MutationResponse
// @Failure      400   {object}  dto.RejectionResponse
// @Failure      409   {object}  dto.RejectionResponse
// @Router       /api/inventory/items [post]
func (h *InventoryHandler) CreateItem(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	res, err := h.store.AddItem(c.Context(), toNewItem(in))
	return respondResult(c, res, err, fiber.StatusCreated)
}

// UpdateItem godoc
// @Summary      Editar un ítem del catálogo
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID interno del ítem"
// @Param        body  body  dto.UpdateItemRequest  true  "campos a modificar"
// @Success      200   {object}  dto.MutationResponse
// @Failure      404   {object}  dto.RejectionResponse
// @Router       /api/inventory/items/{id} [put]
func (h *InventoryHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	res, err := h.store.UpdateItem(c.Context(), c.Params("id"), inventory.ItemPatch{
		Description:   in.Description,
		Category:      in.Category,
		UnitOfMeasure: in.UnitOfMeasure,
		Notes:         in.Notes,
	})
	return respondResult(c, res, err, fiber.StatusOK)
}

// DeleteItem godoc
// @Summary      Eliminar un ítem y todas sus ubicaciones
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID interno del ítem"
// @Success      200  {object}  dto.MutationResponse
// @Failure      404  {object}  dto.RejectionResponse
// @Router       /api/inventory/items/{id} [delete]
func (h *InventoryHandler) DeleteItem(c *fiber.Ctx) error {
	res, err := h.store.DeleteItem(c.Context(), c.Params("id"))
	return respondResult(c, res, err, fiber.StatusOK)
}

// ImportItems godoc
// @Summary      Importación masiva de ítems (upsert por item_number)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportItemsRequest  true  "items, notes"
// @Success      200   {object}  dto.ImportItemsResponse
// @Failure      400   {object}  dto.RejectionResponse
// @Router       /api/inventory/items/import [post]
func (h *InventoryHandler) ImportItems(c *fiber.Ctx) error {
	var in dto.ImportItemsRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	items := make([]inventory.NewItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, toNewItem(it))
	}
	out, err := h.store.ImportItems(c.Context(), items, in.Notes)
	if err != nil {
		return internalError(c, err)
	}
	if out.Created+out.Updated == 0 {
		return rejection(c, domain.ReasonInvalidRequest, out.Data)
	}
	return c.JSON(dto.ImportItemsResponse{
		Created: out.Created,
		Updated: out.Updated,
		Skipped: out.Skipped,
		Data:    out.Data,
	})
}

// AddLocation godoc
// @Summary      Agregar ubicación maestra
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VocabularyRequest  true  "name"
// @Success      201   {object}  dto.MutationResponse
// @Failure      409   {object}  dto.RejectionResponse
// @Router       /api/inventory/locations [post]
func (h *InventoryHandler) AddLocation(c *fiber.Ctx) error {
	var in dto.VocabularyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	res, err := h.store.AddMasterLocation(c.Context(), in.Name)
	return respondResult(c, res, err, fiber.StatusCreated)
}

// AddCategory godoc
// @Summary      Agregar categoría
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VocabularyRequest  true  "name"
// @Success      201   {object}  dto.MutationResponse
// @Failure      409   {object}  dto.RejectionResponse
// @Router       /api/inventory/categories [post]
func (h *InventoryHandler) AddCategory(c *fiber.Ctx) error {
	var in dto.VocabularyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	res, err := h.store.AddCategory(c.Context(), in.Name)
	return respondResult(c, res, err, fiber.StatusCreated)
}

// ListAuditLogs godoc
// @Summary      Bitácora de auditoría (más reciente primero)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        type         query  string  false  "ADD, REMOVE, MOVE, UPDATE, IMPORT, RECEIVED, TRANSFER, USAGE"
// @Param        item_number  query  string  false  "filtrar por ítem"
// @Param        limit        query  int     false  "tamaño de página (máx. 100)"
// @Param        offset       query  int     false  "desplazamiento"
// @Success      200  {object}  dto.AuditLogListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/audit-logs [get]
func (h *InventoryHandler) ListAuditLogs(c *fiber.Ctx) error {
	var q dto.AuditLogQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "limit y offset deben ser numéricos"})
	}
	q.Normalize()
	typ := entity.AuditType(q.Type)
	if typ != "" && !typ.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo de auditoría desconocido"})
	}

	data, err := h.store.Load(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	logs, total := inventory.FilterAuditLogs(data, inventory.AuditFilter{
		Type:       typ,
		ItemNumber: q.ItemNumber,
		Limit:      q.Limit,
		Offset:     q.Offset,
	})
	return c.JSON(dto.AuditLogListResponse{
		Items: logs,
		Page:  dto.PageResponse{Limit: q.Limit, Offset: q.Offset, Total: total},
	})
}

// LastImport godoc
// @Summary      Fecha de la última importación
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.LastImportResponse
// @Router       /api/inventory/audit-logs/last-import [get]
func (h *InventoryHandler) LastImport(c *fiber.Ctx) error {
	data, err := h.store.Load(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	out := dto.LastImportResponse{}
	if last := inventory.LastImport(data); last != nil {
		ts := last.Timestamp
		out.LastImport = &ts
		out.Entry = last
	}
	return c.JSON(out)
}

func toNewItem(in dto.CreateItemRequest) inventory.NewItem {
	return inventory.NewItem{
		ItemNumber:    in.ItemNumber,
		Description:   in.Description,
		Category:      in.Category,
		UnitOfMeasure: in.UnitOfMeasure,
		Notes:         in.Notes,
	}
}

// respondResult traduce el resultado del store: aplicado → okStatus, rechazado → status según el motivo.
func respondResult(c *fiber.Ctx, res *inventory.Result, err error, okStatus int) error {
	if err != nil {
		return internalError(c, err)
	}
	if !res.Applied {
		return rejection(c, res.Reason, res.Data)
	}
	return c.Status(okStatus).JSON(dto.MutationResponse{Applied: true, Data: res.Data})
}

func rejection(c *fiber.Ctx, reason domain.RejectReason, data *entity.InventoryData) error {
	status, code := fiber.StatusBadRequest, "VALIDATION"
	err := reason.Err()
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status, code = fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrUnknownLocation):
		status, code = fiber.StatusNotFound, "UNKNOWN_LOCATION"
	case errors.Is(err, domain.ErrInsufficientStock):
		status, code = fiber.StatusConflict, "INSUFFICIENT_STOCK"
	case errors.Is(err, domain.ErrDuplicate):
		status, code = fiber.StatusConflict, "DUPLICATE"
	}
	return c.Status(status).JSON(dto.RejectionResponse{
		Code:    code,
		Message: err.Error(),
		Reason:  string(reason),
		Data:    data,
	})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
