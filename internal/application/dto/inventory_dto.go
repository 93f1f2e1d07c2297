package dto

import (
	"time"

	"github.com/jhoicas/Inventario-local/internal/domain/entity"
)

// UpdateStockRequest body para POST /api/inventory/stock.
// RECEIVED/USAGE usan location; TRANSFER usa from_location y to_location.
type UpdateStockRequest struct {
	ItemNumber   string `json:"item_number"`
	Action       string `json:"action"`
	Qty          int    `json:"qty"`
	Location     string `json:"location,omitempty"`
	FromLocation string `json:"from_location,omitempty"`
	ToLocation   string `json:"to_location,omitempty"`
	Notes        string `json:"notes"`
}

// CreateItemRequest body para POST /api/inventory/items.
type CreateItemRequest struct {
	ItemNumber    string `json:"item_number"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	UnitOfMeasure string `json:"uom"`
	Notes         string `json:"notes"`
}

// UpdateItemRequest body para PUT /api/inventory/items/:id. Campos nil no cambian.
type UpdateItemRequest struct {
	Description   *string `json:"description"`
	Category      *string `json:"category"`
	UnitOfMeasure *string `json:"uom"`
	Notes         *string `json:"notes"`
}

// ImportItemsRequest body para POST /api/inventory/items/import.
type ImportItemsRequest struct {
	Items []CreateItemRequest `json:"items"`
	Notes string              `json:"notes"`
}

// ImportItemsResponse resumen de la importación.
type ImportItemsResponse struct {
	Created int                   `json:"created"`
	Updated int                   `json:"updated"`
	Skipped int                   `json:"skipped"`
	Data    *entity.InventoryData `json:"data"`
}

// VocabularyRequest body para agregar una ubicación maestra o una categoría.
type VocabularyRequest struct {
	Name string `json:"name"`
}

// MutationResponse salida de toda operación de inventario aplicada o rechazada.
type MutationResponse struct {
	Applied bool                  `json:"applied"`
	Reason  string                `json:"reason,omitempty"`
	Data    *entity.InventoryData `json:"data"`
}

// RejectionResponse cuerpo de error de un rechazo de negocio; incluye el documento vigente.
type RejectionResponse struct {
	Code    string                `json:"code"`
	Message string                `json:"message"`
	Reason  string                `json:"reason"`
	Data    *entity.InventoryData `json:"data"`
}

// AuditLogListResponse lista paginada de la bitácora.
type AuditLogListResponse struct {
	Items []entity.AuditLog `json:"items"`
	Page  PageResponse      `json:"page"`
}

// LastImportResponse fecha de la última importación (nil si nunca hubo).
type LastImportResponse struct {
	LastImport *time.Time       `json:"last_import"`
	Entry      *entity.AuditLog `json:"entry,omitempty"`
}
