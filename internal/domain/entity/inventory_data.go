package entity

// InventoryData es el documento completo persistido en un único slot.
// AuditLogs se mantiene ordenado del más reciente (índice 0) al más antiguo.
type InventoryData struct {
	Items           []InventoryItem `json:"items"`
	Locations       []ItemLocation  `json:"locations"`
	AuditLogs       []AuditLog      `json:"auditLogs"`
	Categories      []string        `json:"categories"`
	MasterLocations []string        `json:"masterLocations"`
}

// Vocabularios iniciales del documento por defecto.
var (
	DefaultCategories = []string{
		"FISH MEAL/OIL", "PLT", "FROZENPOLY", "MISC", "CANNERY", "FRESH", "VACPAC", "TOTE", "SALT",
	}
	DefaultMasterLocations = []string{
		"MAIN-WH", "COLD-STORAGE", "DOCK-1", "DOCK-2", "PLANT-A",
	}
)

// NewDefaultInventoryData construye el documento por defecto: listas vacías y vocabularios iniciales.
// Devuelve siempre copias nuevas para que ningún llamador comparta slices.
func NewDefaultInventoryData() *InventoryData {
	return &InventoryData{
		Items:           []InventoryItem{},
		Locations:       []ItemLocation{},
		AuditLogs:       []AuditLog{},
		Categories:      append([]string(nil), DefaultCategories...),
		MasterLocations: append([]string(nil), DefaultMasterLocations...),
	}
}

// FindItemByID devuelve el índice del ítem con ese ID o -1.
func (d *InventoryData) FindItemByID(id string) int {
	for i := range d.Items {
		if d.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// FindItemByNumber devuelve el índice del ítem con esa clave de negocio o -1.
func (d *InventoryData) FindItemByNumber(itemNumber string) int {
	for i := range d.Items {
		if d.Items[i].ItemNumber == itemNumber {
			return i
		}
	}
	return -1
}

// FindLocation devuelve un puntero a la fila (itemNumber, location) o nil si no existe.
func (d *InventoryData) FindLocation(itemNumber, location string) *ItemLocation {
	for i := range d.Locations {
		if d.Locations[i].ItemNumber == itemNumber && d.Locations[i].Location == location {
			return &d.Locations[i]
		}
	}
	return nil
}

// PrependAudit inserta la entrada al inicio de la bitácora (más reciente primero).
func (d *InventoryData) PrependAudit(entry AuditLog) {
	d.AuditLogs = append([]AuditLog{entry}, d.AuditLogs...)
}
