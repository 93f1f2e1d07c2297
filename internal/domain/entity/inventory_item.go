package entity

// InventoryItem representa una entrada del catálogo (parte/SKU).
// ItemNumber es la clave de negocio; las ubicaciones y la auditoría lo referencian a él, no al ID.
type InventoryItem struct {
	ID            string `json:"id"`
	ItemNumber    string `json:"itemNumber"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	UnitOfMeasure string `json:"uom"`
	Notes         string `json:"notes"`
}
