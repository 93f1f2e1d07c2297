package inventory

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/Inventario-local/internal/domain"
	"github.com/jhoicas/Inventario-local/internal/domain/entity"
)

// ImportNote nota por defecto de las entradas IMPORT.
const ImportNote = "Catalog import"

// NewItem datos de alta de un ítem del catálogo.
type NewItem struct {
	ItemNumber    string
	Description   string
	Category      string
	UnitOfMeasure string
	Notes         string
}

// ItemPatch campos editables de un ítem; nil = sin cambio. ItemNumber no es editable
// porque las filas de ubicación y la auditoría lo usan como clave.
type ItemPatch struct {
	Description   *string
	Category      *string
	UnitOfMeasure *string
	Notes         *string
}

// ImportResult resumen de una importación masiva.
type ImportResult struct {
	Data    *entity.InventoryData
	Created int
	Updated int
	Skipped int
}

// AddItem da de alta un ítem y registra una entrada ADD.
// Rechaza ItemNumber vacío (invalid-request) o ya existente (duplicate-item).
func (s *Store) AddItem(ctx context.Context, in NewItem) (*Result, error) {
	itemNumber := strings.TrimSpace(in.ItemNumber)
	return s.mutate(ctx, "add_item", func(data *entity.InventoryData) domain.RejectReason {
		if itemNumber == "" {
			return domain.ReasonInvalidRequest
		}
		if data.FindItemByNumber(itemNumber) >= 0 {
			return domain.ReasonDuplicateItem
		}
		data.Items = append(data.Items, newInventoryItem(itemNumber, in))
		data.PrependAudit(s.CreateAuditEntry(itemNumber, entity.AuditTypeAdd, 0, "Part added to catalog", "", ""))
		return domain.ReasonNone
	})
}

// UpdateItem aplica un patch sobre el ítem con ese ID y registra una entrada UPDATE.
func (s *Store) UpdateItem(ctx context.Context, id string, patch ItemPatch) (*Result, error) {
	return s.mutate(ctx, "update_item", func(data *entity.InventoryData) domain.RejectReason {
		idx := data.FindItemByID(id)
		if idx < 0 {
			return domain.ReasonUnknownItem
		}
		item := &data.Items[idx]
		if patch.Description != nil {
			item.Description = *patch.Description
		}
		if patch.Category != nil {
			item.Category = *patch.Category
		}
		if patch.UnitOfMeasure != nil {
			item.UnitOfMeasure = *patch.UnitOfMeasure
		}
		if patch.Notes != nil {
			item.Notes = *patch.Notes
		}
		data.PrependAudit(s.CreateAuditEntry(item.ItemNumber, entity.AuditTypeUpdate, 0, "Part details updated", "", ""))
		return domain.ReasonNone
	})
}

// ImportItems hace upsert por ItemNumber de un lote de ítems y registra una entrada IMPORT por ítem importado.
// Las filas sin ItemNumber se omiten. Todo el lote se guarda en una sola escritura.
func (s *Store) ImportItems(ctx context.Context, in []NewItem, notes string) (*ImportResult, error) {
	if notes == "" {
		notes = ImportNote
	}
	out := &ImportResult{}
	res, err := s.mutate(ctx, "import_items", func(data *entity.InventoryData) domain.RejectReason {
		for _, ni := range in {
			itemNumber := strings.TrimSpace(ni.ItemNumber)
			if itemNumber == "" {
				out.Skipped++
				continue
			}
			if idx := data.FindItemByNumber(itemNumber); idx >= 0 {
				item := &data.Items[idx]
				item.Description = ni.Description
				item.Category = ni.Category
				item.UnitOfMeasure = ni.UnitOfMeasure
				item.Notes = ni.Notes
				out.Updated++
			} else {
				data.Items = append(data.Items, newInventoryItem(itemNumber, ni))
				out.Created++
			}
			data.PrependAudit(s.CreateAuditEntry(itemNumber, entity.AuditTypeImport, 0, notes, "", ""))
		}
		if out.Created+out.Updated == 0 {
			return domain.ReasonInvalidRequest
		}
		return domain.ReasonNone
	})
	if err != nil {
		return nil, err
	}
	out.Data = res.Data
	return out, nil
}

// AddMasterLocation agrega una ubicación al vocabulario si no existe.
func (s *Store) AddMasterLocation(ctx context.Context, name string) (*Result, error) {
	return s.addVocabulary(ctx, "add_location", name, func(d *entity.InventoryData) *[]string { return &d.MasterLocations })
}

// AddCategory agrega una categoría al vocabulario si no existe.
func (s *Store) AddCategory(ctx context.Context, name string) (*Result, error) {
	return s.addVocabulary(ctx, "add_category", name, func(d *entity.InventoryData) *[]string { return &d.Categories })
}

func (s *Store) addVocabulary(ctx context.Context, op, name string, field func(*entity.InventoryData) *[]string) (*Result, error) {
	name = strings.TrimSpace(name)
	return s.mutate(ctx, op, func(data *entity.InventoryData) domain.RejectReason {
		if name == "" {
			return domain.ReasonInvalidRequest
		}
		list := field(data)
		for _, v := range *list {
			if strings.EqualFold(v, name) {
				return domain.ReasonDuplicateItem
			}
		}
		*list = append(*list, name)
		return domain.ReasonNone
	})
}

func newInventoryItem(itemNumber string, in NewItem) entity.InventoryItem {
	return entity.InventoryItem{
		ID:            uuid.New().String(),
		ItemNumber:    itemNumber,
		Description:   in.Description,
		Category:      in.Category,
		UnitOfMeasure: in.UnitOfMeasure,
		Notes:         in.Notes,
	}
}
