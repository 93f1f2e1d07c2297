package repository

import "context"

// DocumentRepository define el puerto de persistencia para el documento de inventario (DIP).
// Cada key identifica un slot independiente que guarda un único documento JSON completo.
type DocumentRepository interface {
	// Get devuelve el contenido crudo del slot; found=false si el slot no existe.
	Get(ctx context.Context, key string) (raw []byte, found bool, err error)
	// Put sobrescribe el slot completo en una sola escritura.
	Put(ctx context.Context, key string, raw []byte) error
	// Delete elimina el slot. No falla si el slot no existe.
	Delete(ctx context.Context, key string) error
}
