package dto

const (
	// DefaultPageSize se usa cuando el cliente no envía limit.
	DefaultPageSize = 20
	// MaxPageSize tope de registros de auditoría por página.
	MaxPageSize = 100
)

// AuditLogQuery filtros y paginación de GET /api/inventory/audit-logs.
type AuditLogQuery struct {
	Type       string `query:"type"`
	ItemNumber string `query:"item_number"`
	Limit      int    `query:"limit"`
	Offset     int    `query:"offset"`
}

// Normalize lleva Limit a [1, MaxPageSize] y Offset a un valor no negativo.
func (q *AuditLogQuery) Normalize() {
	switch {
	case q.Limit <= 0:
		q.Limit = DefaultPageSize
	case q.Limit > MaxPageSize:
		q.Limit = MaxPageSize
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
}

// PageResponse metadatos de la página devuelta. Total cuenta los registros
// que cumplen el filtro antes de paginar.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// ErrorResponse cuerpo de error HTTP. Code es estable para los clientes
// (NOT_FOUND, UNKNOWN_LOCATION, INSUFFICIENT_STOCK, VALIDATION...).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
