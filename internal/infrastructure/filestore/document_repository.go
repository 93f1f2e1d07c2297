// Package filestore guarda cada slot como un archivo JSON en un directorio, el equivalente en disco
// del almacenamiento local del navegador. Usa afero para poder probarlo sobre un FS en memoria.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/jhoicas/Inventario-local/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implementación de DocumentRepository sobre archivos.
type DocumentRepo struct {
	fs  afero.Fs
	dir string
}

// NewDocumentRepository construye el adaptador sobre fs y crea dir si no existe.
func NewDocumentRepository(fs afero.Fs, dir string) (*DocumentRepo, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio %q: %w", dir, err)
	}
	return &DocumentRepo{fs: fs, dir: dir}, nil
}

// NewOSDocumentRepository atajo sobre el sistema de archivos real.
func NewOSDocumentRepository(dir string) (*DocumentRepo, error) {
	return NewDocumentRepository(afero.NewOsFs(), dir)
}

func (r *DocumentRepo) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("nombre de slot inválido %q", key)
	}
	return filepath.Join(r.dir, key+".json"), nil
}

// Get lee el archivo del slot.
func (r *DocumentRepo) Get(_ context.Context, key string) ([]byte, bool, error) {
	p, err := r.path(key)
	if err != nil {
		return nil, false, err
	}
	raw, err := afero.ReadFile(r.fs, p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("leer %q: %w", p, err)
	}
	return raw, true, nil
}

// Put escribe en un archivo temporal y lo renombra sobre el definitivo, para que un lector
// nunca vea un documento a medio escribir.
func (r *DocumentRepo) Put(_ context.Context, key string, raw []byte) error {
	p, err := r.path(key)
	if err != nil {
		return err
	}
	tmp := p + ".tmp"
	if err := afero.WriteFile(r.fs, tmp, raw, 0o644); err != nil {
		return fmt.Errorf("escribir %q: %w", tmp, err)
	}
	if err := r.fs.Rename(tmp, p); err != nil {
		_ = r.fs.Remove(tmp)
		return fmt.Errorf("renombrar %q: %w", tmp, err)
	}
	return nil
}

// Delete elimina el archivo del slot.
func (r *DocumentRepo) Delete(_ context.Context, key string) error {
	p, err := r.path(key)
	if err != nil {
		return err
	}
	if err := r.fs.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("eliminar %q: %w", p, err)
	}
	return nil
}
