package inventory

import "github.com/jhoicas/Inventario-local/internal/domain/entity"

// AuditFilter criterios de consulta sobre la bitácora. Campos vacíos no filtran.
type AuditFilter struct {
	Type       entity.AuditType
	ItemNumber string
	Limit      int
	Offset     int
}

// LastImport devuelve la entrada IMPORT más reciente o nil si nunca hubo importación.
func LastImport(data *entity.InventoryData) *entity.AuditLog {
	for i := range data.AuditLogs {
		if data.AuditLogs[i].Type == entity.AuditTypeImport {
			entry := data.AuditLogs[i]
			return &entry
		}
	}
	return nil
}

// FilterAuditLogs filtra la bitácora conservando el orden (más reciente primero) y pagina.
// Devuelve la página y el total de coincidencias.
func FilterAuditLogs(data *entity.InventoryData, f AuditFilter) ([]entity.AuditLog, int) {
	matched := make([]entity.AuditLog, 0, len(data.AuditLogs))
	for _, e := range data.AuditLogs {
		if f.Type != "" && e.Type != f.Type {
			continue
		}
		if f.ItemNumber != "" && e.ItemNumber != f.ItemNumber {
			continue
		}
		matched = append(matched, e)
	}
	total := len(matched)
	if f.Offset < 0 {
		f.Offset = 0
	}
	if f.Offset >= total {
		return []entity.AuditLog{}, total
	}
	end := total
	if f.Limit > 0 && f.Limit < total-f.Offset {
		end = f.Offset + f.Limit
	}
	return matched[f.Offset:end], total
}

// OnHand devuelve el QOH total del ítem sumando todas sus ubicaciones.
func OnHand(data *entity.InventoryData, itemNumber string) int {
	total := 0
	for _, l := range data.Locations {
		if l.ItemNumber == itemNumber {
			total += l.QuantityOnHand
		}
	}
	return total
}
