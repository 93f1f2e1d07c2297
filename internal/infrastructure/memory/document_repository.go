// Package memory implementa el slot de documentos en memoria del proceso.
// Se usa en tests y con STORAGE_DRIVER=memory (los datos se pierden al reiniciar).
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Inventario-local/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implementación en memoria de DocumentRepository.
type DocumentRepo struct {
	mu    sync.RWMutex
	slots map[string][]byte
	puts  int
}

// NewDocumentRepository construye un repositorio vacío.
func NewDocumentRepository() *DocumentRepo {
	return &DocumentRepo{slots: make(map[string][]byte)}
}

// Get devuelve una copia del contenido del slot.
func (r *DocumentRepo) Get(_ context.Context, key string) ([]byte, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	raw, ok := r.slots[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), raw...), true, nil
}

// Put guarda una copia del contenido en el slot.
func (r *DocumentRepo) Put(_ context.Context, key string, raw []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots[key] = append([]byte(nil), raw...)
	r.puts++
	return nil
}

// Delete elimina el slot.
func (r *DocumentRepo) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.slots, key)
	return nil
}

// Puts cantidad de escrituras realizadas (para verificar que toda operación persiste).
func (r *DocumentRepo) Puts() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.puts
}
