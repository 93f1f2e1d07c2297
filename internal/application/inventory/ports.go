package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/Inventario-local/internal/domain/entity"
)

// ReportGenerator genera la representación imprimible (PDF) del documento de inventario.
type ReportGenerator interface {
	GenerateStockReport(ctx context.Context, data *entity.InventoryData, generatedAt time.Time) ([]byte, error)
}
