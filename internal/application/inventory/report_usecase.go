package inventory

import (
	"context"
	"fmt"
	"time"
)

// ReportUseCase arma el reporte PDF de existencias y movimientos a partir del documento vigente.
type ReportUseCase struct {
	store     *Store
	generator ReportGenerator
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(store *Store, generator ReportGenerator) *ReportUseCase {
	return &ReportUseCase{store: store, generator: generator}
}

// StockReportPDF carga el documento y devuelve el PDF generado.
func (uc *ReportUseCase) StockReportPDF(ctx context.Context) ([]byte, error) {
	data, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	out, err := uc.generator.GenerateStockReport(ctx, data, time.Now())
	if err != nil {
		return nil, fmt.Errorf("generar reporte de stock: %w", err)
	}
	return out, nil
}
