package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrUnknownLocation   = errors.New("ubicación sin stock registrado para el ítem")
)

// RejectReason motivo por el que una operación de negocio no modificó el documento.
// El valor vacío significa que la operación se aplicó.
type RejectReason string

// Motivos de rechazo de una operación de inventario.
const (
	ReasonNone                 RejectReason = ""
	ReasonUnknownItem          RejectReason = "unknown-item"
	ReasonUnknownLocation      RejectReason = "unknown-location"
	ReasonInsufficientQuantity RejectReason = "insufficient-quantity"
	ReasonInvalidRequest       RejectReason = "invalid-request"
	ReasonDuplicateItem        RejectReason = "duplicate-item"
)

// Err devuelve el error centinela equivalente al motivo (nil si no hubo rechazo).
func (r RejectReason) Err() error {
	switch r {
	case ReasonNone:
		return nil
	case ReasonUnknownItem:
		return ErrNotFound
	case ReasonUnknownLocation:
		return ErrUnknownLocation
	case ReasonInsufficientQuantity:
		return ErrInsufficientStock
	case ReasonDuplicateItem:
		return ErrDuplicate
	default:
		return ErrInvalidInput
	}
}
