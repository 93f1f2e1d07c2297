package entity

import "time"

// AuditType clasifica un evento de la bitácora de auditoría.
type AuditType string

// Tipos de evento de auditoría.
const (
	AuditTypeAdd      AuditType = "ADD"
	AuditTypeRemove   AuditType = "REMOVE"
	AuditTypeMove     AuditType = "MOVE"
	AuditTypeUpdate   AuditType = "UPDATE"
	AuditTypeImport   AuditType = "IMPORT"
	AuditTypeReceived AuditType = "RECEIVED"
	AuditTypeTransfer AuditType = "TRANSFER"
	AuditTypeUsage    AuditType = "USAGE"
)

// Valid indica si el tipo pertenece a la taxonomía conocida.
func (t AuditType) Valid() bool {
	switch t {
	case AuditTypeAdd, AuditTypeRemove, AuditTypeMove, AuditTypeUpdate,
		AuditTypeImport, AuditTypeReceived, AuditTypeTransfer, AuditTypeUsage:
		return true
	}
	return false
}

// AuditLog registro inmutable de un evento de stock.
// Quantity es el delta movido; su semántica depende de Type (0 en eliminaciones).
type AuditLog struct {
	ID           string    `json:"id"`
	Timestamp    time.Time `json:"timestamp"` // ISO-8601, UTC con milisegundos
	ItemNumber   string    `json:"itemNumber"`
	Type         AuditType `json:"type"`
	FromLocation string    `json:"fromLocation,omitempty"`
	ToLocation   string    `json:"toLocation,omitempty"`
	Quantity     int       `json:"quantity"`
	Notes        string    `json:"notes"`
}
